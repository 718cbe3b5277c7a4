package calendar

import (
	"time"

	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/datemath"
)

// Action is the operation a Command asks for. Values outside the known set are
// kept verbatim so they can be reported back.
type Action string

const (
	ActionCreate  Action = "CREATE"
	ActionRead    Action = "READ"
	ActionUpdate  Action = "UPDATE"
	ActionDelete  Action = "DELETE"
	ActionUnknown Action = "UNKNOWN"
)

// EventFields are the partial event details carried by a Command. Empty strings
// mean "not supplied".
type EventFields struct {
	Title                 string
	Date                  string // yyyy-MM-dd
	Time                  string // HH:mm
	Description           string
	CalendarID            string
	ReminderMinutesBefore *int
}

// Command is the structured form of a natural-language request.
type Command struct {
	Action           Action
	Event            *EventFields
	TargetEventTitle string
	ResponseMessage  string
}

// Outcome is the result of reconciling one Command against the store.
type Outcome struct {
	Events   []model.CalendarEvent
	Reply    string
	Err      *CommandError
	Created  *model.CalendarEvent
	Affected []string
}

// --- UseCase Inputs ---

type SubmitInput struct {
	Text string
}

type ListEventsInput struct {
	View   datemath.View
	Anchor time.Time
}

// --- UseCase Outputs ---

type SubmitOutput struct {
	Reply       string
	Action      Action
	ErrorKind   string
	Banner      string
	Created     *model.CalendarEvent
	AffectedIDs []string
}

type StatusOutput struct {
	Processing bool
	Banner     string
}

type ListEventsOutput struct {
	Window datemath.Window
	Events []model.CalendarEvent
}
