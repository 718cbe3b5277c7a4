package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the to-do endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	todos := rg.Group("/todos")
	{
		todos.GET("", h.List)
		todos.POST("", h.Add)
		todos.PATCH("/:id/toggle", h.Toggle)
		todos.DELETE("/:id", h.Remove)
	}
}
