package http

import (
	"time"

	"personal-dashboard/internal/reminder"
)

type notificationResp struct {
	EventID               string    `json:"event_id"`
	Title                 string    `json:"title"`
	Date                  time.Time `json:"date"`
	CalendarID            string    `json:"calendar_id"`
	ReminderMinutesBefore int       `json:"reminder_minutes_before"`
	SurfacedAt            time.Time `json:"surfaced_at"`
	Text                  string    `json:"text"`
}

type listResp struct {
	Notifications []notificationResp `json:"notifications"`
}

func (h *handler) newListResp(items []reminder.Notification) listResp {
	out := make([]notificationResp, len(items))
	for i, n := range items {
		out[i] = notificationResp{
			EventID:               n.EventID,
			Title:                 n.Title,
			Date:                  n.Date,
			CalendarID:            n.CalendarID,
			ReminderMinutesBefore: n.ReminderMinutesBefore,
			SurfacedAt:            n.SurfacedAt,
			Text:                  n.Text,
		}
	}
	return listResp{Notifications: out}
}
