package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/oasis"
	"personal-dashboard/internal/reminder"
	"personal-dashboard/internal/todo"
	"personal-dashboard/pkg/datemath"
	"personal-dashboard/pkg/log"
	"personal-dashboard/pkg/metrics"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	metrics     *metrics.Manager

	// Assistant
	assistantRateLimitPerMin int
	parser                   *datemath.Parser

	// Domains
	calendarUC calendar.UseCase
	reminderUC reminder.UseCase
	todoUC     todo.UseCase
	oasisUC    oasis.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Metrics     *metrics.Manager

	AssistantRateLimitPerMin int
	Parser                   *datemath.Parser

	CalendarUseCase calendar.UseCase
	ReminderUseCase reminder.UseCase
	TodoUseCase     todo.UseCase
	OasisUseCase    oasis.UseCase
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                        logger,
		gin:                      gin.New(),
		port:                     cfg.Port,
		mode:                     cfg.Mode,
		environment:              cfg.Environment,
		metrics:                  cfg.Metrics,
		assistantRateLimitPerMin: cfg.AssistantRateLimitPerMin,
		parser:                   cfg.Parser,
		calendarUC:               cfg.CalendarUseCase,
		reminderUC:               cfg.ReminderUseCase,
		todoUC:                   cfg.TodoUseCase,
		oasisUC:                  cfg.OasisUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.calendarUC == nil || srv.parser == nil {
		return errors.New("calendar use case and date parser are required")
	}
	if srv.reminderUC == nil || srv.todoUC == nil || srv.oasisUC == nil {
		return errors.New("reminder, todo and oasis use cases are required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
