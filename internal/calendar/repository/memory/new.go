package memory

import (
	"sync"

	"personal-dashboard/internal/calendar/repository"
	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/log"
)

// GreetingMessage opens every transcript.
const GreetingMessage = "Hello! How can I help you organize your day?"

type implRepository struct {
	l log.Logger

	mu     sync.RWMutex
	events []model.CalendarEvent

	chatMu   sync.RWMutex
	messages []model.ChatMessage
}

var _ repository.Repository = (*implRepository)(nil)

// New returns an empty in-memory store whose transcript starts with the greeting.
func New(l log.Logger) *implRepository {
	return &implRepository{
		l:        l,
		messages: []model.ChatMessage{{Sender: model.SenderAI, Text: GreetingMessage}},
	}
}
