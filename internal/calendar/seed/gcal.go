package seed

import (
	"context"
	"fmt"
	"time"

	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/gcalendar"
)

// IDPrefix marks events imported from Google Calendar.
const IDPrefix = "gcal-"

// EventLister is the part of the Google Calendar client used for import.
type EventLister interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest, loc *time.Location) ([]gcalendar.Event, error)
}

// ImportOptions selects the calendar and the range to import around now.
type ImportOptions struct {
	CalendarID    string
	LookbackDays  int
	LookaheadDays int
}

// FromGoogleCalendar loads events from Google Calendar into the personal
// calendar. Reminders are not imported.
func FromGoogleCalendar(ctx context.Context, client EventLister, opts ImportOptions, now time.Time, loc *time.Location) ([]model.CalendarEvent, error) {
	items, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: opts.CalendarID,
		TimeMin:    now.AddDate(0, 0, -opts.LookbackDays),
		TimeMax:    now.AddDate(0, 0, opts.LookaheadDays),
	}, loc)
	if err != nil {
		return nil, fmt.Errorf("seed.FromGoogleCalendar: %w", err)
	}

	events := make([]model.CalendarEvent, 0, len(items))
	for _, item := range items {
		if item.ID == "" || item.StartTime.IsZero() {
			continue
		}
		events = append(events, model.CalendarEvent{
			ID:          IDPrefix + item.ID,
			Title:       item.Summary,
			Date:        item.StartTime,
			Description: item.Description,
			CalendarID:  model.CalendarPersonal,
		})
	}
	return events, nil
}
