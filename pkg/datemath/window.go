package datemath

import (
	"fmt"
	"time"
)

// Window computes the range shown by view for the given anchor. Weeks start on Monday.
func (p *Parser) Window(view View, anchor time.Time) (Window, error) {
	anchor = anchor.In(p.location)
	day := p.startOfDay(anchor)

	w := Window{View: view, Anchor: anchor}
	switch view {
	case ViewMonth:
		w.Start = p.StartOfMonth(day)
		w.End = w.Start.AddDate(0, 1, 0)
		w.Prev = addMonthsClamped(anchor, -1)
		w.Next = addMonthsClamped(anchor, 1)
	case ViewWeek:
		w.Start = p.StartOfWeek(day)
		w.End = w.Start.AddDate(0, 0, 7)
		w.Prev = anchor.AddDate(0, 0, -7)
		w.Next = anchor.AddDate(0, 0, 7)
	case ViewDay:
		w.Start = day
		w.End = day.AddDate(0, 0, 1)
		w.Prev = anchor.AddDate(0, 0, -1)
		w.Next = anchor.AddDate(0, 0, 1)
	default:
		return Window{}, fmt.Errorf("unknown view: %q", view)
	}
	return w, nil
}

// StartOfWeek returns Monday 00:00 of the week containing t.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	day := p.startOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// StartOfMonth returns the first day of t's month at 00:00.
func (p *Parser) StartOfMonth(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, p.location)
}

// addMonthsClamped moves t by n months, pinning the day to the target month's
// last day instead of overflowing (Jan 31 + 1 month = Feb 28/29).
func addMonthsClamped(t time.Time, n int) time.Time {
	first := time.Date(t.Year(), t.Month(), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	target := first.AddDate(0, n, 0)
	lastDay := target.AddDate(0, 1, -1).Day()
	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(target.Year(), target.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
