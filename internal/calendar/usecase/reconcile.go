package usecase

import (
	"fmt"
	"strings"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/datemath"
)

// Reconciler applies Commands to a snapshot of the event store. It has no side
// effects: the caller decides whether to commit Outcome.Events.
type Reconciler struct {
	parser *datemath.Parser
	newID  func() string
}

// NewReconciler parses dates in parser's timezone and assigns ids with newID.
func NewReconciler(parser *datemath.Parser, newID func() string) Reconciler {
	return Reconciler{parser: parser, newID: newID}
}

// Reconcile returns the store after cmd, the assistant reply and, on failure, the
// handled error. On failure Outcome.Events is the unchanged input.
func (r Reconciler) Reconcile(cmd calendar.Command, events []model.CalendarEvent) calendar.Outcome {
	switch cmd.Action {
	case calendar.ActionCreate:
		return r.create(cmd, events)
	case calendar.ActionDelete:
		return r.delete(cmd, events)
	case calendar.ActionUpdate:
		return r.update(cmd, events)
	case calendar.ActionRead:
		return calendar.Outcome{Events: events, Reply: orDefault(cmd.ResponseMessage, ReplyFallback)}
	default:
		return failed(events, calendar.ErrUnrecognizedAction, fmt.Sprintf(BannerUnknownAction, cmd.Action), ReplyUnrecognized)
	}
}

func (r Reconciler) create(cmd calendar.Command, events []model.CalendarEvent) calendar.Outcome {
	if cmd.Event == nil || cmd.Event.Title == "" || cmd.Event.Date == "" {
		return failed(events, calendar.ErrIncompleteCommand, BannerCreateIncomplete, ReplyCreateIncomplete)
	}

	clock := orDefault(cmd.Event.Time, defaultClock)
	date, err := r.parser.ParseDateTime(cmd.Event.Date, clock)
	if err != nil {
		return failed(events, calendar.ErrInvalidDate,
			fmt.Sprintf(BannerInvalidDate, cmd.Event.Date+" "+clock), ReplyInvalidDate)
	}

	created := model.CalendarEvent{
		ID:          r.newID(),
		Title:       cmd.Event.Title,
		Date:        date,
		Description: cmd.Event.Description,
		CalendarID:  orDefault(cmd.Event.CalendarID, defaultCalendarID),
	}
	if cmd.Event.ReminderMinutesBefore != nil {
		created.ReminderMinutesBefore = model.Minutes(*cmd.Event.ReminderMinutesBefore)
	}

	next := append(events[:len(events):len(events)], created)
	sortEvents(next)

	return calendar.Outcome{
		Events:   next,
		Reply:    orDefault(cmd.ResponseMessage, fmt.Sprintf(ReplyCreated, created.Title)),
		Created:  &created,
		Affected: []string{created.ID},
	}
}

func (r Reconciler) delete(cmd calendar.Command, events []model.CalendarEvent) calendar.Outcome {
	if cmd.TargetEventTitle == "" {
		return failed(events, calendar.ErrIncompleteCommand, BannerDeleteIncomplete, ReplyDeleteIncomplete)
	}

	next := make([]model.CalendarEvent, 0, len(events))
	var removed []string
	for _, e := range events {
		if titleMatches(e.Title, cmd.TargetEventTitle) {
			removed = append(removed, e.ID)
			continue
		}
		next = append(next, e)
	}

	return calendar.Outcome{
		Events:   next,
		Reply:    orDefault(cmd.ResponseMessage, fmt.Sprintf(ReplyDeleted, cmd.TargetEventTitle)),
		Affected: removed,
	}
}

func (r Reconciler) update(cmd calendar.Command, events []model.CalendarEvent) calendar.Outcome {
	if cmd.TargetEventTitle == "" || cmd.Event == nil {
		return failed(events, calendar.ErrIncompleteCommand, BannerUpdateIncomplete, ReplyUpdateIncomplete)
	}

	next := make([]model.CalendarEvent, len(events))
	var updated []string
	for i, e := range events {
		if titleMatches(e.Title, cmd.TargetEventTitle) {
			e = r.merge(e, *cmd.Event)
			updated = append(updated, e.ID)
		}
		next[i] = e
	}
	sortEvents(next)

	return calendar.Outcome{
		Events:   next,
		Reply:    orDefault(cmd.ResponseMessage, fmt.Sprintf(ReplyUpdated, cmd.TargetEventTitle)),
		Affected: updated,
	}
}

// merge overlays the supplied fields onto e. A zero reminder counts as not
// supplied, so an UPDATE cannot clear or zero an existing reminder.
func (r Reconciler) merge(e model.CalendarEvent, f calendar.EventFields) model.CalendarEvent {
	local := e.Date.In(r.parser.Location())
	date := orDefault(f.Date, local.Format(datemath.DateLayout))
	clock := orDefault(f.Time, local.Format(datemath.ClockLayout))
	if parsed, err := r.parser.ParseDateTime(date, clock); err == nil {
		e.Date = parsed
	}

	e.Title = orDefault(f.Title, e.Title)
	e.Description = orDefault(f.Description, e.Description)
	e.CalendarID = orDefault(f.CalendarID, e.CalendarID)
	if f.ReminderMinutesBefore != nil && *f.ReminderMinutesBefore != 0 {
		e.ReminderMinutesBefore = model.Minutes(*f.ReminderMinutesBefore)
	}
	return e
}

func failed(events []model.CalendarEvent, kind error, banner, reply string) calendar.Outcome {
	return calendar.Outcome{
		Events: events,
		Reply:  reply,
		Err:    &calendar.CommandError{Kind: kind, Message: banner},
	}
}

func titleMatches(title, target string) bool {
	return strings.Contains(strings.ToLower(title), strings.ToLower(target))
}
