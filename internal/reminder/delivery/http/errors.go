package http

import (
	"errors"
	"net/http"

	"personal-dashboard/internal/reminder"
	pkgErrors "personal-dashboard/pkg/errors"
)

var errNotificationNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "notification not found")

func (h *handler) mapError(err error) error {
	if errors.Is(err, reminder.ErrNotificationNotFound) {
		return errNotificationNotFound
	}
	return pkgErrors.ErrInternalServerError
}
