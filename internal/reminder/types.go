package reminder

import "time"

// Notification is a surfaced reminder for one event.
type Notification struct {
	EventID               string
	Title                 string
	Date                  time.Time
	CalendarID            string
	ReminderMinutesBefore int
	SurfacedAt            time.Time
	// Text is a human readable distance to the event start, e.g. "Starting 9 minutes from now".
	Text string
}
