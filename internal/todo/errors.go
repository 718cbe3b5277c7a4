package todo

import "errors"

var (
	ErrEmptyText    = errors.New("todo text is empty")
	ErrTodoNotFound = errors.New("todo not found")
)
