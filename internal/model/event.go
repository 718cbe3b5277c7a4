package model

import "time"

// CalendarEvent is a single timed entry in the calendar store.
type CalendarEvent struct {
	ID          string
	Title       string
	Date        time.Time
	Description string
	CalendarID  string
	// ReminderMinutesBefore is nil when the event has no reminder.
	ReminderMinutesBefore *int
}

// ReminderTime returns when the reminder for e fires, and false when e has none.
func (e CalendarEvent) ReminderTime() (time.Time, bool) {
	if e.ReminderMinutesBefore == nil {
		return time.Time{}, false
	}
	return e.Date.Add(-time.Duration(*e.ReminderMinutesBefore) * time.Minute), true
}

// Minutes returns a pointer to n, for building events with a reminder.
func Minutes(n int) *int {
	return &n
}
