package usecase

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"

	"personal-dashboard/config"
	"personal-dashboard/internal/reminder"
)

// Start runs Tick every interval until ctx is done. Overlapping ticks are skipped.
func (uc *implUseCase) Start(ctx context.Context) error {
	if uc.interval < config.MinReminderInterval || uc.interval > config.MaxReminderInterval {
		return fmt.Errorf("%w: %s", reminder.ErrInvalidInterval, uc.interval)
	}

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	_, err := c.AddFunc("@every "+uc.interval.String(), func() {
		if _, err := uc.Tick(ctx, uc.clock()); err != nil {
			uc.l.Warnf(ctx, "internal.reminder.usecase.Start: Tick: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("internal.reminder.usecase.Start: cron.AddFunc: %w", err)
	}

	uc.l.Infof(ctx, "internal.reminder.usecase.Start: sweeping every %s", uc.interval)
	c.Start()
	<-ctx.Done()
	<-c.Stop().Done()
	uc.l.Infof(ctx, "internal.reminder.usecase.Start: stopped")
	return nil
}
