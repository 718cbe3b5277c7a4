package http

import (
	"errors"
	"net/http"

	"personal-dashboard/internal/oasis"
	pkgErrors "personal-dashboard/pkg/errors"
)

var (
	errAlreadyWatered  = pkgErrors.NewHTTPError(http.StatusConflict, "already watered today")
	errAlreadyNurtured = pkgErrors.NewHTTPError(http.StatusConflict, "already nurtured today")
	errEmptyMessage    = pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, oasis.ErrAlreadyWatered):
		return errAlreadyWatered
	case errors.Is(err, oasis.ErrAlreadyNurtured):
		return errAlreadyNurtured
	case errors.Is(err, oasis.ErrEmptyMessage):
		return errEmptyMessage
	default:
		return pkgErrors.ErrInternalServerError
	}
}
