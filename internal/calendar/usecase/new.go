package usecase

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/calendar/repository"
	"personal-dashboard/pkg/datemath"
	pkgLog "personal-dashboard/pkg/log"
	"personal-dashboard/pkg/metrics"
)

// implUseCase coordinates the assistant session: the event store, the
// transcript, the error banner and the single in-flight interpreter call.
type implUseCase struct {
	l           pkgLog.Logger
	repo        repository.Repository
	interpreter calendar.Interpreter
	parser      *datemath.Parser
	reconciler  Reconciler
	metrics     *metrics.Manager
	clock       func() time.Time

	inFlight atomic.Bool

	bannerMu sync.RWMutex
	banner   string
}

var _ calendar.UseCase = (*implUseCase)(nil)

// New creates a new calendar UseCase instance. metrics may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	interpreter calendar.Interpreter,
	parser *datemath.Parser,
	m *metrics.Manager,
) *implUseCase {
	return &implUseCase{
		l:           l,
		repo:        repo,
		interpreter: interpreter,
		parser:      parser,
		reconciler:  NewReconciler(parser, uuid.NewString),
		metrics:     m,
		clock:       time.Now,
	}
}

func (uc *implUseCase) setBanner(msg string) {
	uc.bannerMu.Lock()
	uc.banner = msg
	uc.bannerMu.Unlock()
}

func (uc *implUseCase) currentBanner() string {
	uc.bannerMu.RLock()
	defer uc.bannerMu.RUnlock()
	return uc.banner
}
