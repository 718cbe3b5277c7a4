package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"personal-dashboard/pkg/response"
)

const icsFilename = "calendar.ics"

// Submit sends free text to the assistant and returns its reply.
// Command failures still answer 200: the reply and error describe them.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "calendar.delivery.http.Submit: uc.Submit: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

func (h *handler) Status(c *gin.Context) {
	response.OK(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}

func (h *handler) Messages(c *gin.Context) {
	response.OK(c, h.newMessagesResp(h.uc.Messages(c.Request.Context())))
}

// ListEvents returns the events in the requested view window.
func (h *handler) ListEvents(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListEventsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListEvents(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.http.ListEvents: uc.ListEvents: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListEventsResp(output))
}

// ExportICS streams the whole calendar as an iCalendar attachment.
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	data, err := h.uc.ExportICS(ctx)
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.http.ExportICS: uc.ExportICS: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+icsFilename)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", data)
}

func (h *handler) Calendars(c *gin.Context) {
	response.OK(c, h.newCalendarsResp(h.uc.Calendars(c.Request.Context())))
}
