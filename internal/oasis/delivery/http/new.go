package http

import (
	"personal-dashboard/internal/oasis"
	"personal-dashboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc oasis.UseCase
}

// New creates a new HTTP handler for the oasis plant.
func New(l log.Logger, uc oasis.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
