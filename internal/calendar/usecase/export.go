package usecase

import (
	"context"
	"fmt"

	ics "github.com/arran4/golang-ical"

	"personal-dashboard/internal/model"
)

const icsProductID = "-//personal-dashboard//calendar export//EN"

// ExportICS renders the whole store as an iCalendar document. Reminders become
// DISPLAY alarms and the calendar name is carried as a category.
func (uc *implUseCase) ExportICS(ctx context.Context) ([]byte, error) {
	events, err := uc.repo.ListEvents(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.ListEvents: %v", LogPrefixExportICS, err)
		return nil, err
	}

	now := uc.clock()
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)

	for _, e := range events {
		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now)
		ev.SetStartAt(e.Date)
		ev.SetSummary(e.Title)
		if e.Description != "" {
			ev.SetDescription(e.Description)
		}
		if info, ok := model.LookupCalendar(e.CalendarID); ok {
			ev.AddProperty(ics.ComponentPropertyCategories, info.Name)
		} else if e.CalendarID != "" {
			ev.AddProperty(ics.ComponentPropertyCategories, e.CalendarID)
		}

		if e.ReminderMinutesBefore != nil {
			alarm := ev.AddAlarm()
			alarm.SetAction(ics.ActionDisplay)
			alarm.SetTrigger(fmt.Sprintf("-PT%dM", *e.ReminderMinutesBefore))
			alarm.SetProperty(ics.ComponentPropertyDescription, e.Title)
		}
	}

	return []byte(cal.Serialize()), nil
}
