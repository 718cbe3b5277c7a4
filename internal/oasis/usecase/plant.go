package usecase

import (
	"context"
	"strings"
	"time"

	"personal-dashboard/internal/model"
	"personal-dashboard/internal/oasis"
)

func (uc *implUseCase) State(ctx context.Context) oasis.StateOutput {
	now := uc.clock()

	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.stateAt(now)
}

// Water records today's watering. The plant grows when it was also nurtured today.
func (uc *implUseCase) Water(ctx context.Context) (oasis.StateOutput, error) {
	now := uc.clock()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.sameDay(uc.plant.LastWatered, now) {
		return uc.stateAt(now), oasis.ErrAlreadyWatered
	}
	uc.plant.LastWatered = &now
	if uc.sameDay(uc.plant.LastNurtured, now) {
		uc.grow(ctx)
	}
	return uc.stateAt(now), nil
}

// Nurture records today's kind word. The plant grows when it was also watered today.
func (uc *implUseCase) Nurture(ctx context.Context, input oasis.NurtureInput) (oasis.StateOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return oasis.StateOutput{}, oasis.ErrEmptyMessage
	}
	now := uc.clock()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.sameDay(uc.plant.LastNurtured, now) {
		return uc.stateAt(now), oasis.ErrAlreadyNurtured
	}
	uc.plant.LastNurtured = &now
	if uc.sameDay(uc.plant.LastWatered, now) {
		uc.grow(ctx)
	}
	return uc.stateAt(now), nil
}

func (uc *implUseCase) grow(ctx context.Context) {
	if uc.plant.Growth < model.MaxPlantGrowth {
		uc.plant.Growth++
		uc.l.Infof(ctx, "internal.oasis.usecase: plant grew to level %d", uc.plant.Growth)
	}
}

func (uc *implUseCase) stateAt(now time.Time) oasis.StateOutput {
	out := oasis.StateOutput{
		Plant:         copyPlant(uc.plant),
		WateredToday:  uc.sameDay(uc.plant.LastWatered, now),
		NurturedToday: uc.sameDay(uc.plant.LastNurtured, now),
		Bloomed:       uc.plant.Growth == model.MaxPlantGrowth,
		Affirmation:   affirmationFor(now.In(uc.loc)),
	}

	switch {
	case out.Bloomed:
		out.Status = StatusBloomed
	case out.WateredToday && out.NurturedToday:
		out.Status = StatusLoved
	case out.WateredToday:
		out.Status = StatusWatered
	case out.NurturedToday:
		out.Status = StatusNurtured
	default:
		out.Status = StatusIdle
	}
	return out
}

func (uc *implUseCase) sameDay(t *time.Time, now time.Time) bool {
	if t == nil {
		return false
	}
	y1, m1, d1 := t.In(uc.loc).Date()
	y2, m2, d2 := now.In(uc.loc).Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// affirmationFor rotates through the affirmations by day of year.
func affirmationFor(day time.Time) string {
	return affirmations[day.YearDay()%len(affirmations)]
}

func copyPlant(p model.Plant) model.Plant {
	if p.LastWatered != nil {
		t := *p.LastWatered
		p.LastWatered = &t
	}
	if p.LastNurtured != nil {
		t := *p.LastNurtured
		p.LastNurtured = &t
	}
	return p
}
