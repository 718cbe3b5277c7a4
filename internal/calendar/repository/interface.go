package repository

import (
	"context"

	"personal-dashboard/internal/model"
)

// Repository is the composed interface for the calendar domain data store.
type Repository interface {
	EventRepository
	ChatRepository
}

// EventRepository holds the event store. Every read returns a copy sorted by date.
type EventRepository interface {
	ListEvents(ctx context.Context) ([]model.CalendarEvent, error)
	// ApplyEvents runs fn on a copy of the store and replaces the store with its
	// result, as one step. The stored result is re-sorted by date.
	ApplyEvents(ctx context.Context, fn func(current []model.CalendarEvent) []model.CalendarEvent) ([]model.CalendarEvent, error)
	ReplaceEvents(ctx context.Context, events []model.CalendarEvent) error
}

// ChatRepository holds the append-only assistant transcript.
type ChatRepository interface {
	AppendMessage(ctx context.Context, msg model.ChatMessage) error
	ListMessages(ctx context.Context) ([]model.ChatMessage, error)
}
