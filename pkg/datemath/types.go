package datemath

import (
	"errors"
	"time"
)

// Layouts shared by callers that format or parse calendar values.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var ErrInvalidDateTime = errors.New("invalid date or time")

// ParseResult holds the result of parsing a relative date string.
type ParseResult struct {
	AbsoluteTime time.Time
	IsAllDay     bool
}

// View is a calendar granularity.
type View string

const (
	ViewMonth View = "month"
	ViewWeek  View = "week"
	ViewDay   View = "day"
)

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewMonth, ViewWeek, ViewDay:
		return true
	}
	return false
}

// Window is the half-open range [Start, End) covered by a view around an anchor,
// plus the anchors one step back and forward.
type Window struct {
	View   View
	Anchor time.Time
	Start  time.Time
	End    time.Time
	Prev   time.Time
	Next   time.Time
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}
