package interpreter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/pkg/llmprovider"
	"personal-dashboard/pkg/log"
)

type mockGenerator struct {
	text string
	err  error
	req  *llmprovider.Request
}

func (m *mockGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.req = req
	if m.err != nil {
		return nil, m.err
	}
	return &llmprovider.Response{
		Content:      llmprovider.Message{Role: "assistant", Parts: []llmprovider.Part{{Text: m.text}}},
		ProviderName: "mock",
		ModelName:    "mock-1",
	}, nil
}

func TestInterpretBuildsRequest(t *testing.T) {
	gen := &mockGenerator{text: `{"action":"READ","responseMessage":"You have 2 events."}`}
	interp := New(log.NewNop(), gen)

	loc := time.FixedZone("ICT", 7*3600)
	now := time.Date(2024, 5, 1, 15, 4, 5, 0, loc)

	cmd, err := interp.Interpret(context.Background(), "what's on today?", now)
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if cmd.Action != calendar.ActionRead || cmd.ResponseMessage != "You have 2 events." {
		t.Errorf("unexpected command %+v", cmd)
	}

	if gen.req.ResponseMIMEType != "application/json" || gen.req.ResponseSchema == nil {
		t.Error("expected structured JSON output to be requested")
	}
	instruction := gen.req.SystemInstruction.Parts[0].Text
	if !strings.Contains(instruction, "The current date is 2024-05-01T08:04:05.000Z.") {
		t.Errorf("system instruction lacks the UTC timestamp: %q", instruction)
	}
	if len(gen.req.Messages) != 1 || gen.req.Messages[0].Parts[0].Text != "what's on today?" {
		t.Errorf("unexpected messages %+v", gen.req.Messages)
	}
}

func TestInterpretErrors(t *testing.T) {
	tests := []struct {
		name          string
		gen           *mockGenerator
		wantMalformed bool
	}{
		{name: "transport", gen: &mockGenerator{err: errors.New("all providers failed")}},
		{name: "not json", gen: &mockGenerator{text: "I can't help with that"}, wantMalformed: true},
		{name: "missing action", gen: &mockGenerator{text: `{"responseMessage":"hi"}`}, wantMalformed: true},
		{name: "empty action", gen: &mockGenerator{text: `{"action":""}`}, wantMalformed: true},
		{name: "action not a string", gen: &mockGenerator{text: `{"action":3}`}, wantMalformed: true},
		{name: "null", gen: &mockGenerator{text: `null`}, wantMalformed: true},
		{name: "array", gen: &mockGenerator{text: `[{"action":"READ"}]`}, wantMalformed: true},
		{name: "fenced array", gen: &mockGenerator{text: "```json\n[{\"action\":\"READ\"}]\n```"}, wantMalformed: true},
		{name: "prose around object", gen: &mockGenerator{text: `Sure! {"action":"READ"} Hope that helps.`}, wantMalformed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(log.NewNop(), tt.gen).Interpret(context.Background(), "x", time.Now())
			if !errors.Is(err, calendar.ErrInterpreterUnavailable) {
				t.Fatalf("expected ErrInterpreterUnavailable, got %v", err)
			}
			if got := errors.Is(err, calendar.ErrMalformedCommand); got != tt.wantMalformed {
				t.Errorf("malformed = %v, want %v (err %v)", got, tt.wantMalformed, err)
			}
		})
	}
}

func TestDecodeCommand(t *testing.T) {
	tests := []struct {
		name  string
		raw   string
		check func(t *testing.T, cmd calendar.Command)
	}{
		{
			name: "full create",
			raw: `{"action":"CREATE","event":{"title":"Dentist","date":"2024-05-03","time":"14:00",
				"description":"check-up","calendarId":"personal","reminderMinutesBefore":30},
				"responseMessage":"Added."}`,
			check: func(t *testing.T, cmd calendar.Command) {
				e := cmd.Event
				if e == nil || e.Title != "Dentist" || e.Date != "2024-05-03" || e.Time != "14:00" ||
					e.Description != "check-up" || e.CalendarID != "personal" {
					t.Fatalf("unexpected event %+v", e)
				}
				if e.ReminderMinutesBefore == nil || *e.ReminderMinutesBefore != 30 {
					t.Errorf("reminder = %v", e.ReminderMinutesBefore)
				}
			},
		},
		{
			name: "code fence",
			raw:  "```json\n{\"action\":\"DELETE\",\"targetEventTitle\":\"yoga\"}\n```",
			check: func(t *testing.T, cmd calendar.Command) {
				if cmd.Action != calendar.ActionDelete || cmd.TargetEventTitle != "yoga" || cmd.Event != nil {
					t.Errorf("unexpected command %+v", cmd)
				}
			},
		},
		{
			name: "surrounding whitespace",
			raw:  "\n  {\"action\":\"READ\"}  \n",
			check: func(t *testing.T, cmd calendar.Command) {
				if cmd.Action != calendar.ActionRead {
					t.Errorf("unexpected command %+v", cmd)
				}
			},
		},
		{
			name: "wrong typed fields dropped",
			raw:  `{"action":"UPDATE","targetEventTitle":42,"event":{"title":["x"],"date":"2024-05-03","reminderMinutesBefore":"15"}}`,
			check: func(t *testing.T, cmd calendar.Command) {
				if cmd.TargetEventTitle != "" {
					t.Errorf("target should be dropped, got %q", cmd.TargetEventTitle)
				}
				if cmd.Event == nil || cmd.Event.Title != "" || cmd.Event.Date != "2024-05-03" || cmd.Event.ReminderMinutesBefore != nil {
					t.Errorf("unexpected event %+v", cmd.Event)
				}
			},
		},
		{
			name: "event not an object",
			raw:  `{"action":"CREATE","event":"tomorrow"}`,
			check: func(t *testing.T, cmd calendar.Command) {
				if cmd.Event != nil {
					t.Errorf("expected no event, got %+v", cmd.Event)
				}
			},
		},
		{
			name: "unrecognized action kept verbatim",
			raw:  `{"action":"DANCE"}`,
			check: func(t *testing.T, cmd calendar.Command) {
				if cmd.Action != "DANCE" {
					t.Errorf("action = %q", cmd.Action)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := decodeCommand(tt.raw)
			if err != nil {
				t.Fatalf("decodeCommand: %v", err)
			}
			tt.check(t, cmd)
		})
	}
}

func TestMinutesField(t *testing.T) {
	tests := []struct {
		value any
		want  *int
	}{
		{value: float64(15), want: intPtr(15)},
		{value: float64(0), want: intPtr(0)},
		{value: float64(-5)},
		{value: 2.5},
		{value: "15"},
		{value: nil},
	}

	for _, tt := range tests {
		got := minutesField(map[string]interface{}{"m": tt.value}, "m")
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("%v: expected nil, got %d", tt.value, *got)
		case tt.want != nil && (got == nil || *got != *tt.want):
			t.Errorf("%v: got %v, want %d", tt.value, got, *tt.want)
		}
	}
}

func intPtr(n int) *int { return &n }
