package usecase

import (
	"sync"
	"time"

	"personal-dashboard/internal/model"
	"personal-dashboard/internal/reminder"
	pkgLog "personal-dashboard/pkg/log"
	"personal-dashboard/pkg/metrics"
)

type pendingEntry struct {
	event      model.CalendarEvent
	surfacedAt time.Time
}

type implUseCase struct {
	l        pkgLog.Logger
	events   reminder.EventSource
	metrics  *metrics.Manager
	interval time.Duration
	clock    func() time.Time

	mu       sync.Mutex
	pending  []pendingEntry
	surfaced map[string]struct{}
}

var _ reminder.UseCase = (*implUseCase)(nil)

// New creates the reminder scanner. metrics may be nil.
func New(l pkgLog.Logger, events reminder.EventSource, interval time.Duration, m *metrics.Manager) *implUseCase {
	return &implUseCase{
		l:        l,
		events:   events,
		metrics:  m,
		interval: interval,
		clock:    time.Now,
		surfaced: make(map[string]struct{}),
	}
}
