package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/datemath"
)

func newTestReconciler(t *testing.T) Reconciler {
	t.Helper()
	parser, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	n := 0
	return NewReconciler(parser, func() string {
		n++
		return fmt.Sprintf("new-%d", n)
	})
}

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 5, day, hour, minute, 0, 0, time.UTC)
}

func seedEvents() []model.CalendarEvent {
	return []model.CalendarEvent{
		{ID: "3", Title: "Team Sync - Sprint Planning", Date: at(1, 9, 0), CalendarID: "team"},
		{ID: "1", Title: "Project Apollo Kick-off", Date: at(2, 10, 0), CalendarID: "work", ReminderMinutesBefore: model.Minutes(15)},
		{ID: "4", Title: "Lunch with Sarah", Date: at(2, 12, 0), CalendarID: "personal", Description: "Catch up"},
		{ID: "6", Title: "Yoga Class", Date: at(3, 18, 0), CalendarID: "personal", ReminderMinutesBefore: model.Minutes(10)},
		{ID: "2", Title: "Dentist Appointment", Date: at(4, 14, 0), CalendarID: "personal"},
	}
}

func assertSorted(t *testing.T, events []model.CalendarEvent) {
	t.Helper()
	for i := 1; i < len(events); i++ {
		if events[i].Date.Before(events[i-1].Date) {
			t.Fatalf("events not sorted at index %d: %v before %v", i, events[i].Date, events[i-1].Date)
		}
	}
}

func findByID(events []model.CalendarEvent, id string) (model.CalendarEvent, bool) {
	for _, e := range events {
		if e.ID == id {
			return e, true
		}
	}
	return model.CalendarEvent{}, false
}

func TestReconcileKeepsStoreSorted(t *testing.T) {
	r := newTestReconciler(t)

	commands := []calendar.Command{
		{Action: calendar.ActionCreate, Event: &calendar.EventFields{Title: "Early", Date: "2024-04-30", Time: "07:00"}},
		{Action: calendar.ActionCreate, Event: &calendar.EventFields{Title: "Late", Date: "2024-05-30"}},
		{Action: calendar.ActionUpdate, TargetEventTitle: "dentist", Event: &calendar.EventFields{Date: "2024-04-01"}},
		{Action: calendar.ActionDelete, TargetEventTitle: "yoga"},
		{Action: calendar.ActionRead},
	}

	events := seedEvents()
	for _, cmd := range commands {
		events = r.Reconcile(cmd, events).Events
		assertSorted(t, events)
	}
	if events[0].Title != "Dentist Appointment" {
		t.Errorf("expected moved dentist event first, got %q", events[0].Title)
	}
}

func TestReconcileRead(t *testing.T) {
	r := newTestReconciler(t)
	events := seedEvents()

	tests := []struct {
		name      string
		cmd       calendar.Command
		wantReply string
	}{
		{"with message", calendar.Command{Action: calendar.ActionRead, ResponseMessage: "You have 5 events."}, "You have 5 events."},
		{"without message", calendar.Command{Action: calendar.ActionRead}, ReplyFallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := r.Reconcile(tt.cmd, events)
			if out.Err != nil {
				t.Fatalf("unexpected error: %v", out.Err)
			}
			if out.Reply != tt.wantReply {
				t.Errorf("reply = %q, want %q", out.Reply, tt.wantReply)
			}
			if len(out.Events) != len(events) {
				t.Fatalf("READ changed store size")
			}
			for i := range events {
				if out.Events[i].ID != events[i].ID || !out.Events[i].Date.Equal(events[i].Date) {
					t.Errorf("READ changed event %d", i)
				}
			}
		})
	}
}

func TestReconcileCreate(t *testing.T) {
	r := newTestReconciler(t)
	events := seedEvents()

	out := r.Reconcile(calendar.Command{
		Action: calendar.ActionCreate,
		Event: &calendar.EventFields{
			Title:                 "Call Mom",
			Date:                  "2024-05-02",
			Time:                  "11:15",
			ReminderMinutesBefore: model.Minutes(5),
		},
	}, events)

	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Reply != `Okay, I've added "Call Mom" to your calendar.` {
		t.Errorf("unexpected reply: %q", out.Reply)
	}
	if out.Created == nil || out.Created.ID != "new-1" {
		t.Fatalf("expected created event with new id, got %+v", out.Created)
	}
	if len(out.Events) != len(events)+1 {
		t.Fatalf("expected %d events, got %d", len(events)+1, len(out.Events))
	}

	got, ok := findByID(out.Events, "new-1")
	if !ok {
		t.Fatal("created event missing from store")
	}
	if got.Title != "Call Mom" || !got.Date.Equal(at(2, 11, 15)) {
		t.Errorf("unexpected created event: %+v", got)
	}
	if got.CalendarID != "personal" || got.Description != "" {
		t.Errorf("expected defaults personal/empty description, got %q/%q", got.CalendarID, got.Description)
	}
	if got.ReminderMinutesBefore == nil || *got.ReminderMinutesBefore != 5 {
		t.Errorf("expected reminder 5, got %v", got.ReminderMinutesBefore)
	}
	if len(events) != 5 {
		t.Error("input slice must not be modified")
	}
}

func TestReconcileCreateDefaults(t *testing.T) {
	r := newTestReconciler(t)

	out := r.Reconcile(calendar.Command{
		Action:          calendar.ActionCreate,
		Event:           &calendar.EventFields{Title: "Holiday", Date: "2024-05-20", CalendarID: "work", Description: "Off"},
		ResponseMessage: "Enjoy!",
	}, nil)

	if out.Reply != "Enjoy!" {
		t.Errorf("expected response message to win, got %q", out.Reply)
	}
	if !out.Created.Date.Equal(at(20, 0, 0)) {
		t.Errorf("expected midnight default, got %v", out.Created.Date)
	}
	if out.Created.CalendarID != "work" || out.Created.Description != "Off" {
		t.Errorf("unexpected fields: %+v", out.Created)
	}
	if out.Created.ReminderMinutesBefore != nil {
		t.Error("expected no reminder")
	}
}

func TestReconcileCreateInvalidDate(t *testing.T) {
	r := newTestReconciler(t)

	tests := []struct {
		name       string
		date       string
		clock      string
		wantBanner string
	}{
		{"month 13", "2024-13-01", "10:00", "AI returned an invalid date format: 2024-13-01 10:00"},
		{"hour 25", "2024-05-01", "25:00", "AI returned an invalid date format: 2024-05-01 25:00"},
		{"day 40", "2024-05-40", "", "AI returned an invalid date format: 2024-05-40 00:00"},
		{"words", "next friday", "", "AI returned an invalid date format: next friday 00:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := seedEvents()
			out := r.Reconcile(calendar.Command{
				Action:          calendar.ActionCreate,
				Event:           &calendar.EventFields{Title: "Bad", Date: tt.date, Time: tt.clock},
				ResponseMessage: "Added!",
			}, events)

			if out.Err == nil || !errors.Is(out.Err, calendar.ErrInvalidDate) {
				t.Fatalf("expected ErrInvalidDate, got %v", out.Err)
			}
			if out.Err.Message != tt.wantBanner {
				t.Errorf("banner = %q, want %q", out.Err.Message, tt.wantBanner)
			}
			if out.Reply != ReplyInvalidDate {
				t.Errorf("reply = %q, want apology", out.Reply)
			}
			if len(out.Events) != len(events) || out.Created != nil {
				t.Error("invalid date must not mutate the store")
			}
		})
	}
}

func TestReconcileIncomplete(t *testing.T) {
	r := newTestReconciler(t)

	tests := []struct {
		name       string
		cmd        calendar.Command
		wantBanner string
		wantReply  string
	}{
		{"create without event", calendar.Command{Action: calendar.ActionCreate}, BannerCreateIncomplete, ReplyCreateIncomplete},
		{"create without date", calendar.Command{Action: calendar.ActionCreate, Event: &calendar.EventFields{Title: "x"}}, BannerCreateIncomplete, ReplyCreateIncomplete},
		{"create without title", calendar.Command{Action: calendar.ActionCreate, Event: &calendar.EventFields{Date: "2024-05-01"}}, BannerCreateIncomplete, ReplyCreateIncomplete},
		{"delete without target", calendar.Command{Action: calendar.ActionDelete, ResponseMessage: "Done"}, BannerDeleteIncomplete, ReplyDeleteIncomplete},
		{"update without target", calendar.Command{Action: calendar.ActionUpdate, Event: &calendar.EventFields{Title: "x"}}, BannerUpdateIncomplete, ReplyUpdateIncomplete},
		{"update without event", calendar.Command{Action: calendar.ActionUpdate, TargetEventTitle: "yoga"}, BannerUpdateIncomplete, ReplyUpdateIncomplete},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := seedEvents()
			out := r.Reconcile(tt.cmd, events)

			if out.Err == nil || !errors.Is(out.Err, calendar.ErrIncompleteCommand) {
				t.Fatalf("expected ErrIncompleteCommand, got %v", out.Err)
			}
			if out.Err.Message != tt.wantBanner || out.Reply != tt.wantReply {
				t.Errorf("got banner %q reply %q", out.Err.Message, out.Reply)
			}
			if len(out.Events) != len(events) {
				t.Error("incomplete command must not mutate the store")
			}
		})
	}
}

func TestReconcileDeleteSubstring(t *testing.T) {
	r := newTestReconciler(t)

	tests := []struct {
		name        string
		target      string
		wantRemoved []string
	}{
		{"case insensitive substring", "SYNC", []string{"3"}},
		{"matches several", "a", []string{"3", "1", "4", "6", "2"}},
		{"no match is success", "Birthday", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := seedEvents()
			out := r.Reconcile(calendar.Command{Action: calendar.ActionDelete, TargetEventTitle: tt.target}, events)

			if out.Err != nil {
				t.Fatalf("unexpected error: %v", out.Err)
			}
			if want := fmt.Sprintf(`I've removed "%s" from your calendar.`, tt.target); out.Reply != want {
				t.Errorf("reply = %q, want %q", out.Reply, want)
			}
			if len(out.Affected) != len(tt.wantRemoved) {
				t.Fatalf("removed %v, want %v", out.Affected, tt.wantRemoved)
			}
			if len(out.Events) != len(events)-len(tt.wantRemoved) {
				t.Errorf("expected %d events left, got %d", len(events)-len(tt.wantRemoved), len(out.Events))
			}
			for _, id := range tt.wantRemoved {
				if _, ok := findByID(out.Events, id); ok {
					t.Errorf("event %s should have been removed", id)
				}
			}
		})
	}
}

func TestReconcileUpdatePartialMerge(t *testing.T) {
	r := newTestReconciler(t)
	events := seedEvents()

	out := r.Reconcile(calendar.Command{
		Action:           calendar.ActionUpdate,
		TargetEventTitle: "lunch",
		Event:            &calendar.EventFields{Time: "13:30", ReminderMinutesBefore: model.Minutes(20)},
	}, events)

	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if out.Reply != `I've updated the event "lunch".` {
		t.Errorf("unexpected reply %q", out.Reply)
	}

	got, _ := findByID(out.Events, "4")
	if !got.Date.Equal(at(2, 13, 30)) {
		t.Errorf("expected only the time to change, got %v", got.Date)
	}
	if got.Title != "Lunch with Sarah" || got.Description != "Catch up" || got.CalendarID != "personal" {
		t.Errorf("unsupplied fields changed: %+v", got)
	}
	if got.ReminderMinutesBefore == nil || *got.ReminderMinutesBefore != 20 {
		t.Errorf("expected reminder 20, got %v", got.ReminderMinutesBefore)
	}

	orig, _ := findByID(events, "4")
	if orig.ReminderMinutesBefore != nil || !orig.Date.Equal(at(2, 12, 0)) {
		t.Error("input event was modified")
	}
}

func TestReconcileUpdateEdgeCases(t *testing.T) {
	r := newTestReconciler(t)

	t.Run("invalid date keeps old date", func(t *testing.T) {
		out := r.Reconcile(calendar.Command{
			Action:           calendar.ActionUpdate,
			TargetEventTitle: "yoga",
			Event:            &calendar.EventFields{Date: "2024-02-30", Title: "Hot Yoga"},
		}, seedEvents())

		got, _ := findByID(out.Events, "6")
		if !got.Date.Equal(at(3, 18, 0)) || got.Title != "Hot Yoga" {
			t.Errorf("unexpected event: %+v", got)
		}
	})

	t.Run("zero reminder does not override", func(t *testing.T) {
		out := r.Reconcile(calendar.Command{
			Action:           calendar.ActionUpdate,
			TargetEventTitle: "apollo",
			Event:            &calendar.EventFields{ReminderMinutesBefore: model.Minutes(0)},
		}, seedEvents())

		got, _ := findByID(out.Events, "1")
		if got.ReminderMinutesBefore == nil || *got.ReminderMinutesBefore != 15 {
			t.Errorf("expected reminder to stay 15, got %v", got.ReminderMinutesBefore)
		}
	})

	t.Run("every match is updated", func(t *testing.T) {
		out := r.Reconcile(calendar.Command{
			Action:           calendar.ActionUpdate,
			TargetEventTitle: "a",
			Event:            &calendar.EventFields{CalendarID: "team"},
		}, seedEvents())

		if len(out.Affected) != 5 {
			t.Fatalf("expected 5 updated events, got %v", out.Affected)
		}
		for _, e := range out.Events {
			if e.CalendarID != "team" {
				t.Errorf("event %s not updated", e.ID)
			}
		}
	})

	t.Run("no match still replies", func(t *testing.T) {
		out := r.Reconcile(calendar.Command{
			Action:           calendar.ActionUpdate,
			TargetEventTitle: "nothing",
			Event:            &calendar.EventFields{Title: "x"},
			ResponseMessage:  "Updated.",
		}, seedEvents())

		if out.Err != nil || out.Reply != "Updated." || len(out.Affected) != 0 {
			t.Errorf("unexpected outcome: %+v", out)
		}
	})
}

func TestReconcileUnknownAction(t *testing.T) {
	r := newTestReconciler(t)

	for _, action := range []calendar.Action{calendar.ActionUnknown, "FLY", ""} {
		t.Run(string(action), func(t *testing.T) {
			events := seedEvents()
			out := r.Reconcile(calendar.Command{Action: action, ResponseMessage: "ignored"}, events)

			if out.Err == nil || !errors.Is(out.Err, calendar.ErrUnrecognizedAction) {
				t.Fatalf("expected ErrUnrecognizedAction, got %v", out.Err)
			}
			if want := "Unknown action from AI: " + string(action); out.Err.Message != want {
				t.Errorf("banner = %q, want %q", out.Err.Message, want)
			}
			if out.Reply != ReplyUnrecognized {
				t.Errorf("reply = %q", out.Reply)
			}
			if len(out.Events) != len(events) {
				t.Error("unknown action must not mutate the store")
			}
		})
	}
}
