package usecase

import (
	"context"
	"fmt"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/datemath"
)

// ListEvents returns the events inside the view window around the anchor.
// An empty view means month and a zero anchor means now.
func (uc *implUseCase) ListEvents(ctx context.Context, input calendar.ListEventsInput) (calendar.ListEventsOutput, error) {
	view := input.View
	if view == "" {
		view = datemath.ViewMonth
	}
	if !view.Valid() {
		return calendar.ListEventsOutput{}, fmt.Errorf("%w: %q", calendar.ErrInvalidView, view)
	}

	anchor := input.Anchor
	if anchor.IsZero() {
		anchor = uc.clock()
	}

	window, err := uc.parser.Window(view, anchor)
	if err != nil {
		return calendar.ListEventsOutput{}, fmt.Errorf("%w: %w", calendar.ErrInvalidView, err)
	}

	events, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.calendar.usecase.ListEvents: repo.ListEvents: %v", err)
		return calendar.ListEventsOutput{}, err
	}

	inWindow := make([]model.CalendarEvent, 0, len(events))
	for _, e := range events {
		if window.Contains(e.Date) {
			inWindow = append(inWindow, e)
		}
	}

	return calendar.ListEventsOutput{
		Window: window,
		Events: inWindow,
	}, nil
}

// Calendars returns the known calendars.
func (uc *implUseCase) Calendars(ctx context.Context) []model.CalendarInfo {
	return model.Calendars()
}
