package http

import (
	"personal-dashboard/internal/reminder"
	"personal-dashboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc reminder.UseCase
}

// New creates a new HTTP handler for reminder notifications.
func New(l log.Logger, uc reminder.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
