package http

import (
	"time"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/pkg/datemath"
	"personal-dashboard/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     calendar.UseCase
	parser *datemath.Parser
	clock  func() time.Time
}

// New creates a new HTTP handler for the calendar and assistant endpoints.
func New(l log.Logger, uc calendar.UseCase, parser *datemath.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
		clock:  time.Now,
	}
}
