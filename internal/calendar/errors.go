package calendar

import (
	"errors"
	"fmt"
)

// Command failure kinds. A *CommandError always wraps exactly one of the first four.
var (
	ErrInvalidDate            = errors.New("invalid date")
	ErrIncompleteCommand      = errors.New("incomplete command")
	ErrUnrecognizedAction     = errors.New("unrecognized action")
	ErrInterpreterUnavailable = errors.New("interpreter unavailable")
)

var (
	// ErrMalformedCommand marks an interpreter payload that was not a usable command.
	// It is always wrapped together with ErrInterpreterUnavailable.
	ErrMalformedCommand = errors.New("malformed command payload")

	ErrEmptyCommand    = errors.New("command text is empty")
	ErrCommandInFlight = errors.New("a command is already being processed")
	ErrInvalidView     = errors.New("invalid calendar view")
)

// CommandError is a handled command failure. Message is the banner text shown to the user.
type CommandError struct {
	Kind    error
	Message string
}

func (e *CommandError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

// KindName returns a stable label for err's failure kind, or "ok" for nil
// (including a nil *CommandError).
func KindName(err error) string {
	var cmdErr *CommandError
	switch {
	case err == nil, errors.As(err, &cmdErr) && cmdErr == nil:
		return "ok"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrIncompleteCommand):
		return "incomplete_command"
	case errors.Is(err, ErrUnrecognizedAction):
		return "unrecognized_action"
	case errors.Is(err, ErrInterpreterUnavailable):
		return "interpreter_unavailable"
	default:
		return "unknown"
	}
}
