package calendar

import (
	"context"
	"time"

	"personal-dashboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Assistant
	Submit(ctx context.Context, input SubmitInput) (SubmitOutput, error)
	Status(ctx context.Context) StatusOutput
	Messages(ctx context.Context) []model.ChatMessage

	// Calendar
	ListEvents(ctx context.Context, input ListEventsInput) (ListEventsOutput, error)
	Calendars(ctx context.Context) []model.CalendarInfo
	ExportICS(ctx context.Context) ([]byte, error)
}

// Interpreter turns free text into a Command. Errors wrap ErrInterpreterUnavailable.
type Interpreter interface {
	Interpret(ctx context.Context, text string, now time.Time) (Command, error)
}
