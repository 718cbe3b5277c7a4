package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the notification endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.DELETE("/:eventID", h.Dismiss)
	}
}
