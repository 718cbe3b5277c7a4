package http

import (
	"errors"
	"net/http"

	"personal-dashboard/internal/calendar"
	pkgErrors "personal-dashboard/pkg/errors"
)

var (
	errEmptyText   = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is required")
	errInFlight    = pkgErrors.NewHTTPError(http.StatusConflict, "a command is already being processed")
	errInvalidView = pkgErrors.NewHTTPError(http.StatusBadRequest, "view must be one of month, week, day")
	errInvalidDate = pkgErrors.NewHTTPError(http.StatusBadRequest, "date must be yyyy-MM-dd or a relative date")
)

// mapError translates use case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrEmptyCommand):
		return errEmptyText
	case errors.Is(err, calendar.ErrCommandInFlight):
		return errInFlight
	case errors.Is(err, calendar.ErrInvalidView):
		return errInvalidView
	default:
		return pkgErrors.ErrInternalServerError
	}
}
