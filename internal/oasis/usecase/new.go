package usecase

import (
	"sync"
	"time"

	"personal-dashboard/internal/model"
	"personal-dashboard/internal/oasis"
	pkgLog "personal-dashboard/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	loc   *time.Location
	clock func() time.Time

	mu    sync.Mutex
	plant model.Plant
}

var _ oasis.UseCase = (*implUseCase)(nil)

// New creates a seedling. Calendar days are compared in loc.
func New(l pkgLog.Logger, loc *time.Location) *implUseCase {
	return &implUseCase{
		l:     l,
		loc:   loc,
		clock: time.Now,
	}
}
