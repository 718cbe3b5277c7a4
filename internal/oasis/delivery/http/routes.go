package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the oasis endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	o := rg.Group("/oasis")
	{
		o.GET("", h.State)
		o.POST("/water", h.Water)
		o.POST("/nurture", h.Nurture)
	}
}
