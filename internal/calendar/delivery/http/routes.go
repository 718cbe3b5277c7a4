package http

import (
	"github.com/gin-gonic/gin"

	"personal-dashboard/internal/middleware"
)

// RegisterRoutes maps the assistant and calendar endpoints. Only command
// submission is rate limited.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	assistant := rg.Group("/assistant")
	{
		assistant.POST("/commands", mw.RateLimit(), h.Submit)
		assistant.GET("/status", h.Status)
		assistant.GET("/messages", h.Messages)
	}

	events := rg.Group("/events")
	{
		events.GET("", h.ListEvents)
		events.GET("/export.ics", h.ExportICS)
	}

	rg.GET("/calendars", h.Calendars)
}
