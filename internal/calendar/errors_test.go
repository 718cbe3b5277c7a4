package calendar

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindName(t *testing.T) {
	var nilCmdErr *CommandError

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: "ok"},
		{name: "nil command error", err: nilCmdErr, want: "ok"},
		{name: "invalid date", err: &CommandError{Kind: ErrInvalidDate, Message: "bad"}, want: "invalid_date"},
		{name: "incomplete", err: &CommandError{Kind: ErrIncompleteCommand}, want: "incomplete_command"},
		{name: "unrecognized", err: &CommandError{Kind: ErrUnrecognizedAction}, want: "unrecognized_action"},
		{name: "interpreter", err: fmt.Errorf("%w: down", ErrInterpreterUnavailable), want: "interpreter_unavailable"},
		{name: "other", err: errors.New("boom"), want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindName(tt.err); got != tt.want {
				t.Errorf("KindName = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNilCommandErrorIsSafe(t *testing.T) {
	var e *CommandError
	if e.Unwrap() != nil {
		t.Error("Unwrap on nil must be nil")
	}
	if e.Error() == "" {
		t.Error("Error on nil must not be empty")
	}
	if errors.Is(e, ErrInvalidDate) {
		t.Error("nil command error must not match a kind")
	}
}
