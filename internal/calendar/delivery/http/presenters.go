package http

import (
	"time"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/datemath"
)

// --- Request DTOs ---

type submitReq struct {
	Text string `json:"text"`
}

func (r submitReq) toInput() calendar.SubmitInput {
	return calendar.SubmitInput{Text: r.Text}
}

type listEventsReq struct {
	View string `form:"view"`
	Date string `form:"date"`

	anchor time.Time
}

func (r listEventsReq) toInput() calendar.ListEventsInput {
	return calendar.ListEventsInput{
		View:   datemath.View(r.View),
		Anchor: r.anchor,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID                    string    `json:"id"`
	Title                 string    `json:"title"`
	Date                  time.Time `json:"date"`
	Description           string    `json:"description"`
	CalendarID            string    `json:"calendar_id"`
	ReminderMinutesBefore *int      `json:"reminder_minutes_before,omitempty"`
}

func newEventResp(e model.CalendarEvent) eventResp {
	return eventResp{
		ID:                    e.ID,
		Title:                 e.Title,
		Date:                  e.Date,
		Description:           e.Description,
		CalendarID:            e.CalendarID,
		ReminderMinutesBefore: e.ReminderMinutesBefore,
	}
}

type submitResp struct {
	Reply       string     `json:"reply"`
	Action      string     `json:"action,omitempty"`
	ErrorKind   string     `json:"error_kind,omitempty"`
	Error       string     `json:"error,omitempty"`
	Created     *eventResp `json:"created,omitempty"`
	AffectedIDs []string   `json:"affected_ids,omitempty"`
}

func (h *handler) newSubmitResp(out calendar.SubmitOutput) submitResp {
	resp := submitResp{
		Reply:       out.Reply,
		Action:      string(out.Action),
		ErrorKind:   out.ErrorKind,
		Error:       out.Banner,
		AffectedIDs: out.AffectedIDs,
	}
	if out.Created != nil {
		created := newEventResp(*out.Created)
		resp.Created = &created
	}
	return resp
}

type statusResp struct {
	Processing bool   `json:"processing"`
	Error      string `json:"error"`
}

func (h *handler) newStatusResp(out calendar.StatusOutput) statusResp {
	return statusResp{
		Processing: out.Processing,
		Error:      out.Banner,
	}
}

type messageResp struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type messagesResp struct {
	Messages []messageResp `json:"messages"`
}

func (h *handler) newMessagesResp(msgs []model.ChatMessage) messagesResp {
	out := make([]messageResp, len(msgs))
	for i, m := range msgs {
		out[i] = messageResp{Sender: string(m.Sender), Text: m.Text}
	}
	return messagesResp{Messages: out}
}

type windowResp struct {
	View   string    `json:"view"`
	Anchor time.Time `json:"anchor"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Prev   string    `json:"prev"`
	Next   string    `json:"next"`
}

type listEventsResp struct {
	Window windowResp  `json:"window"`
	Events []eventResp `json:"events"`
}

func (h *handler) newListEventsResp(out calendar.ListEventsOutput) listEventsResp {
	events := make([]eventResp, len(out.Events))
	for i, e := range out.Events {
		events[i] = newEventResp(e)
	}
	w := out.Window
	return listEventsResp{
		Window: windowResp{
			View:   string(w.View),
			Anchor: w.Anchor,
			Start:  w.Start,
			End:    w.End,
			Prev:   w.Prev.Format(datemath.DateLayout),
			Next:   w.Next.Format(datemath.DateLayout),
		},
		Events: events,
	}
}

type calendarResp struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type calendarsResp struct {
	Calendars []calendarResp `json:"calendars"`
}

func (h *handler) newCalendarsResp(infos []model.CalendarInfo) calendarsResp {
	out := make([]calendarResp, len(infos))
	for i, c := range infos {
		out[i] = calendarResp{ID: c.ID, Name: c.Name, Color: c.Color}
	}
	return calendarsResp{Calendars: out}
}
