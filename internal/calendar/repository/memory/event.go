package memory

import (
	"context"
	"fmt"
	"sort"

	"personal-dashboard/internal/calendar/repository"
	"personal-dashboard/internal/model"
)

func (r *implRepository) ListEvents(ctx context.Context) ([]model.CalendarEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToList, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneEvents(r.events), nil
}

func (r *implRepository) ApplyEvents(ctx context.Context, fn func(current []model.CalendarEvent) []model.CalendarEvent) ([]model.CalendarEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	next := cloneEvents(fn(cloneEvents(r.events)))
	sortByDate(next)
	r.events = next
	return cloneEvents(next), nil
}

func (r *implRepository) ReplaceEvents(ctx context.Context, events []model.CalendarEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrFailedToUpdate, err)
	}

	next := cloneEvents(events)
	sortByDate(next)

	r.mu.Lock()
	r.events = next
	r.mu.Unlock()

	r.l.Infof(ctx, "calendar.repository.memory.ReplaceEvents: %d events loaded", len(next))
	return nil
}

// sortByDate keeps insertion order among events that share a date.
func sortByDate(events []model.CalendarEvent) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Date.Before(events[j].Date)
	})
}

func cloneEvents(events []model.CalendarEvent) []model.CalendarEvent {
	out := make([]model.CalendarEvent, len(events))
	for i, e := range events {
		if e.ReminderMinutesBefore != nil {
			e.ReminderMinutesBefore = model.Minutes(*e.ReminderMinutesBefore)
		}
		out[i] = e
	}
	return out
}
