package http

import (
	"github.com/gin-gonic/gin"

	"personal-dashboard/pkg/response"
)

// List returns the pending reminder notifications.
func (h *handler) List(c *gin.Context) {
	response.OK(c, h.newListResp(h.uc.Pending(c.Request.Context())))
}

// Dismiss hides a notification. The event stays in the calendar.
func (h *handler) Dismiss(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Dismiss(ctx, c.Param("eventID")); err != nil {
		h.l.Warnf(ctx, "reminder.delivery.http.Dismiss: uc.Dismiss: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
