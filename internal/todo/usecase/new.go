package usecase

import (
	"sync"

	"github.com/google/uuid"

	"personal-dashboard/internal/model"
	"personal-dashboard/internal/todo"
	pkgLog "personal-dashboard/pkg/log"
)

// DefaultItems is the list a new session starts with.
func DefaultItems() []model.TodoItem {
	return []model.TodoItem{
		{ID: "t1", Text: "Finalize Q3 report"},
		{ID: "t2", Text: "Book flight to New York"},
		{ID: "t3", Text: "Call the vet for appointment", Completed: true},
	}
}

type implUseCase struct {
	l     pkgLog.Logger
	newID func() string

	mu    sync.RWMutex
	items []model.TodoItem
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates a to-do list holding a copy of seed, in order.
func New(l pkgLog.Logger, seed []model.TodoItem) *implUseCase {
	items := make([]model.TodoItem, len(seed))
	copy(items, seed)
	return &implUseCase{
		l:     l,
		newID: uuid.NewString,
		items: items,
	}
}
