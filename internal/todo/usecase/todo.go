package usecase

import (
	"context"
	"fmt"
	"strings"

	"personal-dashboard/internal/model"
	"personal-dashboard/internal/todo"
)

// List returns the items in insertion order.
func (uc *implUseCase) List(ctx context.Context) []model.TodoItem {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	out := make([]model.TodoItem, len(uc.items))
	copy(out, uc.items)
	return out
}

// Add appends an open item with the trimmed text.
func (uc *implUseCase) Add(ctx context.Context, input todo.AddInput) (model.TodoItem, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return model.TodoItem{}, todo.ErrEmptyText
	}

	item := model.TodoItem{ID: uc.newID(), Text: text}

	uc.mu.Lock()
	uc.items = append(uc.items, item)
	uc.mu.Unlock()

	return item, nil
}

func (uc *implUseCase) Toggle(ctx context.Context, id string) (model.TodoItem, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.items {
		if uc.items[i].ID == id {
			uc.items[i].Completed = !uc.items[i].Completed
			return uc.items[i], nil
		}
	}
	return model.TodoItem{}, fmt.Errorf("%w: %s", todo.ErrTodoNotFound, id)
}

func (uc *implUseCase) Remove(ctx context.Context, id string) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	for i := range uc.items {
		if uc.items[i].ID == id {
			uc.items = append(uc.items[:i], uc.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", todo.ErrTodoNotFound, id)
}
