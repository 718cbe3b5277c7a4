package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"personal-dashboard/internal/model"
	"personal-dashboard/internal/reminder"
)

// Tick surfaces every event whose reminder time has passed while the event has
// not started yet. An event id is surfaced at most once.
func (uc *implUseCase) Tick(ctx context.Context, now time.Time) ([]reminder.Notification, error) {
	events, err := uc.events.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.reminder.usecase.Tick: events.ListEvents: %v", err)
		return nil, err
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.pruneSurfaced(events)

	var surfaced []reminder.Notification
	for _, e := range events {
		at, ok := e.ReminderTime()
		if !ok || !at.Before(now) || !e.Date.After(now) {
			continue
		}
		if _, seen := uc.surfaced[e.ID]; seen {
			continue
		}

		uc.surfaced[e.ID] = struct{}{}
		entry := pendingEntry{event: e, surfacedAt: now}
		uc.pending = append(uc.pending, entry)
		surfaced = append(surfaced, toNotification(entry, now))
	}

	if len(surfaced) > 0 {
		uc.l.Infof(ctx, "internal.reminder.usecase.Tick: surfaced %d reminders", len(surfaced))
	}
	uc.metrics.RecordRemindersSurfaced(len(surfaced))
	uc.metrics.SetNotificationsPending(len(uc.pending))
	return surfaced, nil
}

// pruneSurfaced forgets ids of events that are gone from the store.
func (uc *implUseCase) pruneSurfaced(events []model.CalendarEvent) {
	if len(uc.surfaced) == 0 {
		return
	}
	live := make(map[string]struct{}, len(events))
	for _, e := range events {
		live[e.ID] = struct{}{}
	}
	for id := range uc.surfaced {
		if _, ok := live[id]; !ok {
			delete(uc.surfaced, id)
		}
	}
}

func (uc *implUseCase) Pending(ctx context.Context) []reminder.Notification {
	now := uc.clock()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]reminder.Notification, len(uc.pending))
	for i, entry := range uc.pending {
		out[i] = toNotification(entry, now)
	}
	return out
}

func (uc *implUseCase) Dismiss(ctx context.Context, eventID string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i, entry := range uc.pending {
		if entry.event.ID == eventID {
			uc.pending = append(uc.pending[:i], uc.pending[i+1:]...)
			uc.metrics.SetNotificationsPending(len(uc.pending))
			return nil
		}
	}
	return fmt.Errorf("%w: %s", reminder.ErrNotificationNotFound, eventID)
}

func toNotification(entry pendingEntry, now time.Time) reminder.Notification {
	e := entry.event
	n := reminder.Notification{
		EventID:    e.ID,
		Title:      e.Title,
		Date:       e.Date,
		CalendarID: e.CalendarID,
		SurfacedAt: entry.surfacedAt,
		Text:       startsText(e.Date, now),
	}
	if e.ReminderMinutesBefore != nil {
		n.ReminderMinutesBefore = *e.ReminderMinutesBefore
	}
	return n
}

func startsText(start, now time.Time) string {
	if start.After(now) {
		return "Starting " + humanize.RelTime(start, now, "ago", "from now")
	}
	return "Started " + humanize.RelTime(start, now, "ago", "from now")
}
