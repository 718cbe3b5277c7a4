package todo

import (
	"context"

	"personal-dashboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context) []model.TodoItem
	Add(ctx context.Context, input AddInput) (model.TodoItem, error)
	Toggle(ctx context.Context, id string) (model.TodoItem, error)
	Remove(ctx context.Context, id string) error
}
