package http

import (
	"errors"
	"net/http"

	"personal-dashboard/internal/todo"
	pkgErrors "personal-dashboard/pkg/errors"
)

var (
	errEmptyText    = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errTodoNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "todo not found")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, todo.ErrEmptyText):
		return errEmptyText
	case errors.Is(err, todo.ErrTodoNotFound):
		return errTodoNotFound
	default:
		return pkgErrors.ErrInternalServerError
	}
}
