package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	calendarHTTP "personal-dashboard/internal/calendar/delivery/http"
	"personal-dashboard/internal/middleware"
	"personal-dashboard/internal/model"
	oasisHTTP "personal-dashboard/internal/oasis/delivery/http"
	reminderHTTP "personal-dashboard/internal/reminder/delivery/http"
	todoHTTP "personal-dashboard/internal/todo/delivery/http"
	"personal-dashboard/pkg/response"
)

func (srv HTTPServer) mapHandlers() {
	mw := middleware.New(srv.l, srv.metrics, srv.assistantRateLimitPerMin)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	if srv.metrics != nil {
		srv.gin.Use(mw.Metrics())
	}

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.NoRoute(response.NotFound)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	calendarHTTP.RegisterRoutes(api, calendarHTTP.New(srv.l, srv.calendarUC, srv.parser), mw)
	reminderHTTP.RegisterRoutes(api, reminderHTTP.New(srv.l, srv.reminderUC))
	todoHTTP.RegisterRoutes(api, todoHTTP.New(srv.l, srv.todoUC))
	oasisHTTP.RegisterRoutes(api, oasisHTTP.New(srv.l, srv.oasisUC))

	srv.l.Infof(ctx, "Domain routes registered under /api/v1")
}
