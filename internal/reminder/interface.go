package reminder

import (
	"context"
	"time"

	"personal-dashboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Tick runs one sweep at now and returns the notifications it surfaced.
	Tick(ctx context.Context, now time.Time) ([]Notification, error)
	// Pending lists surfaced notifications that were not dismissed, oldest first.
	Pending(ctx context.Context) []Notification
	// Dismiss removes a pending notification. The event itself is untouched.
	Dismiss(ctx context.Context, eventID string) error
	// Start sweeps on the configured interval until ctx is done.
	Start(ctx context.Context) error
}

// EventSource provides a consistent snapshot of the event store.
type EventSource interface {
	ListEvents(ctx context.Context) ([]model.CalendarEvent, error)
}
