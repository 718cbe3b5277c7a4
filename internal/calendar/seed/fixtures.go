package seed

import (
	"time"

	"personal-dashboard/internal/model"
)

// Fixtures returns the demo events, placed relative to now. Each event keeps
// now's minutes and seconds and only moves the day and the hour.
func Fixtures(now time.Time, loc *time.Location) []model.CalendarEvent {
	now = now.In(loc)
	at := func(days, hour int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day()+days, hour, now.Minute(), now.Second(), now.Nanosecond(), loc)
	}

	return []model.CalendarEvent{
		{
			ID:                    "1",
			Title:                 "Project Apollo Kick-off",
			Date:                  at(0, 10),
			CalendarID:            model.CalendarWork,
			Description:           "Initial meeting to discuss the scope and timeline for Project Apollo.",
			ReminderMinutesBefore: model.Minutes(15),
		},
		{
			ID:                    "2",
			Title:                 "Dentist Appointment",
			Date:                  at(2, 14),
			CalendarID:            model.CalendarPersonal,
			Description:           "Annual check-up and cleaning.",
			ReminderMinutesBefore: model.Minutes(30),
		},
		{
			ID:          "3",
			Title:       "Team Sync - Sprint Planning",
			Date:        at(-1, 9),
			CalendarID:  model.CalendarTeam,
			Description: "Plan tasks for the upcoming sprint.",
		},
		{
			ID:          "4",
			Title:       "Lunch with Sarah",
			Date:        at(0, 12),
			CalendarID:  model.CalendarPersonal,
			Description: "Catch up at The Daily Grind cafe.",
		},
		{
			ID:          "5",
			Title:       "Q3 Financial Review",
			Date:        at(5, 15),
			CalendarID:  model.CalendarWork,
			Description: "Review performance and plan for Q4.",
		},
		{
			ID:                    "6",
			Title:                 "Yoga Class",
			Date:                  at(1, 18),
			CalendarID:            model.CalendarPersonal,
			ReminderMinutesBefore: model.Minutes(10),
		},
	}
}
