package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"personal-dashboard/config"
	calendarMemory "personal-dashboard/internal/calendar/repository/memory"
	"personal-dashboard/internal/calendar/seed"
	calendarUC "personal-dashboard/internal/calendar/usecase"
	"personal-dashboard/internal/httpserver"
	"personal-dashboard/internal/interpreter"
	"personal-dashboard/internal/model"
	oasisUC "personal-dashboard/internal/oasis/usecase"
	reminderUC "personal-dashboard/internal/reminder/usecase"
	todoUC "personal-dashboard/internal/todo/usecase"
	"personal-dashboard/pkg/datemath"
	"personal-dashboard/pkg/gcalendar"
	"personal-dashboard/pkg/llmprovider"
	"personal-dashboard/pkg/log"
	"personal-dashboard/pkg/metrics"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Personal Dashboard...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "Service stopped with error: ", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Server stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	// 3. Metrics
	metricsManager := metrics.NewManager()

	// 4. LLM providers → interpreter
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, logger)
	if err != nil {
		return fmt.Errorf("initialize LLM providers: %w", err)
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return err
	}
	llmManager := llmprovider.NewManager(providers, managerCfg, logger).WithMetrics(metricsManager)
	commandInterpreter := interpreter.New(logger, llmManager)
	logger.Infof(ctx, "LLM providers ready: %d (timeout %s)", len(providers), managerCfg.MaxTotalTimeout)

	// 5. Date math
	parser, err := datemath.NewParser(cfg.Calendar.Timezone)
	if err != nil {
		return err
	}

	// 6. Calendar store
	calendarRepo := calendarMemory.New(logger)
	if err := seedCalendar(ctx, cfg, logger, parser, calendarRepo); err != nil {
		return err
	}

	// 7. Use cases
	calendarUseCase := calendarUC.New(logger, calendarRepo, commandInterpreter, parser, metricsManager)
	reminderUseCase := reminderUC.New(logger, calendarRepo, cfg.Reminder.Interval, metricsManager)
	todoUseCase := todoUC.New(logger, todoUC.DefaultItems())
	oasisUseCase := oasisUC.New(logger, parser.Location())

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:                     cfg.HTTPServer.Port,
		Mode:                     cfg.HTTPServer.Mode,
		Environment:              cfg.Environment.Name,
		Metrics:                  metricsManager,
		AssistantRateLimitPerMin: cfg.Assistant.RateLimitPerMin,
		Parser:                   parser,
		CalendarUseCase:          calendarUseCase,
		ReminderUseCase:          reminderUseCase,
		TodoUseCase:              todoUseCase,
		OasisUseCase:             oasisUseCase,
	})
	if err != nil {
		return fmt.Errorf("initialize HTTP server: %w", err)
	}

	// 9. Run the reminder sweep and the server until a signal arrives.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return reminderUseCase.Start(gctx) })
	g.Go(func() error { return httpServer.Run(gctx) })
	return g.Wait()
}

type eventReplacer interface {
	ReplaceEvents(ctx context.Context, events []model.CalendarEvent) error
}

// seedCalendar loads Google Calendar events when configured, otherwise the
// demo fixtures. An import failure falls back to the fixtures.
func seedCalendar(ctx context.Context, cfg *config.Config, logger log.Logger, parser *datemath.Parser, repo eventReplacer) error {
	now := time.Now().In(parser.Location())

	if cfg.GoogleCalendar.Enabled() {
		events, err := importGoogleCalendar(ctx, cfg.GoogleCalendar, parser, now)
		if err == nil {
			logger.Infof(ctx, "Imported %d events from Google Calendar", len(events))
			return repo.ReplaceEvents(ctx, events)
		}
		logger.Warnf(ctx, "Google Calendar import failed, using fixtures: %v", err)
		logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
	}

	if !cfg.Calendar.SeedFixtures {
		return nil
	}
	return repo.ReplaceEvents(ctx, seed.Fixtures(now, parser.Location()))
}

func importGoogleCalendar(ctx context.Context, gcfg config.GoogleCalendarConfig, parser *datemath.Parser, now time.Time) ([]model.CalendarEvent, error) {
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, gcfg.CredentialsPath)
	if err != nil {
		return nil, err
	}
	return seed.FromGoogleCalendar(ctx, client, seed.ImportOptions{
		CalendarID:    gcfg.CalendarID,
		LookbackDays:  gcfg.LookbackDays,
		LookaheadDays: gcfg.LookaheadDays,
	}, now, parser.Location())
}
