package http

import (
	"personal-dashboard/internal/todo"
	"personal-dashboard/pkg/log"
)

type handler struct {
	l  log.Logger
	uc todo.UseCase
}

// New creates a new HTTP handler for the to-do list.
func New(l log.Logger, uc todo.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
