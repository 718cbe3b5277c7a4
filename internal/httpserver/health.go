package httpserver

import (
	"github.com/gin-gonic/gin"

	"personal-dashboard/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "personal-dashboard"
)

func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready once the server is up; it also reports whether the
// assistant is busy with a command.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":     "ready",
		"version":    HealthVersion,
		"service":    ServiceName,
		"processing": srv.calendarUC.Status(c.Request.Context()).Processing,
	})
}

func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
