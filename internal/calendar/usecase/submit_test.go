package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/calendar/repository/memory"
	"personal-dashboard/internal/model"
	"personal-dashboard/pkg/metrics"
)

func TestSubmitCreate(t *testing.T) {
	interp := &mockInterpreter{cmd: calendar.Command{
		Action: calendar.ActionCreate,
		Event:  &calendar.EventFields{Title: "Standup", Date: "2024-05-02", Time: "09:15"},
	}}
	uc, _ := newTestUseCase(t, interp)
	ctx := context.Background()

	out, err := uc.Submit(ctx, calendar.SubmitInput{Text: "standup tomorrow at 9:15"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.Reply != `Okay, I've added "Standup" to your calendar.` || out.ErrorKind != "" || out.Banner != "" {
		t.Errorf("unexpected output: %+v", out)
	}
	if out.Created == nil || out.Created.ID != "id-1" {
		t.Fatalf("expected created event, got %+v", out.Created)
	}
	if !interp.lastNow.Equal(testNow) {
		t.Errorf("interpreter got now=%v, want %v", interp.lastNow, testNow)
	}

	msgs := uc.Messages(ctx)
	want := []model.ChatMessage{
		{Sender: model.SenderAI, Text: memory.GreetingMessage},
		{Sender: model.SenderUser, Text: "standup tomorrow at 9:15"},
		{Sender: model.SenderAI, Text: out.Reply},
	}
	if len(msgs) != len(want) {
		t.Fatalf("expected %d messages, got %+v", len(want), msgs)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Errorf("message %d = %+v, want %+v", i, msgs[i], want[i])
		}
	}

	list, err := uc.ListEvents(ctx, calendar.ListEventsInput{})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(list.Events) != 1 || list.Events[0].Title != "Standup" {
		t.Errorf("expected stored event, got %+v", list.Events)
	}
}

func TestSubmitRejectsEmpty(t *testing.T) {
	interp := &mockInterpreter{}
	uc, _ := newTestUseCase(t, interp)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := uc.Submit(context.Background(), calendar.SubmitInput{Text: text})
		if !errors.Is(err, calendar.ErrEmptyCommand) {
			t.Errorf("text %q: expected ErrEmptyCommand, got %v", text, err)
		}
	}
	if interp.calls != 0 {
		t.Error("interpreter must not be called for empty input")
	}
	if msgs := uc.Messages(context.Background()); len(msgs) != 1 {
		t.Errorf("empty input must not touch the transcript, got %d messages", len(msgs))
	}
}

func TestSubmitRejectsWhileInFlight(t *testing.T) {
	interp := &mockInterpreter{
		cmd:     calendar.Command{Action: calendar.ActionRead},
		block:   make(chan struct{}),
		release: make(chan struct{}),
	}
	uc, _ := newTestUseCase(t, interp)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() {
		_, err := uc.Submit(ctx, calendar.SubmitInput{Text: "what's on today?"})
		done <- err
	}()
	<-interp.block

	if !uc.Status(ctx).Processing {
		t.Error("expected processing while the interpreter is busy")
	}
	if _, err := uc.Submit(ctx, calendar.SubmitInput{Text: "second"}); !errors.Is(err, calendar.ErrCommandInFlight) {
		t.Errorf("expected ErrCommandInFlight, got %v", err)
	}

	close(interp.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if uc.Status(ctx).Processing {
		t.Error("expected idle after completion")
	}
	if interp.calls != 1 {
		t.Errorf("expected one interpreter call, got %d", interp.calls)
	}
	// greeting + user + ai; the rejected submission leaves no trace.
	if msgs := uc.Messages(ctx); len(msgs) != 3 {
		t.Errorf("expected 3 messages, got %d", len(msgs))
	}
}

func TestSubmitInterpreterErrors(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantReply string
	}{
		{
			name:      "malformed payload",
			err:       fmt.Errorf("%w: %w", calendar.ErrInterpreterUnavailable, calendar.ErrMalformedCommand),
			wantReply: ReplyMalformed,
		},
		{
			name:      "transport failure",
			err:       fmt.Errorf("%w: connection refused", calendar.ErrInterpreterUnavailable),
			wantReply: ReplyInterpreterError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seed := model.CalendarEvent{ID: "1", Title: "Yoga", Date: testNow}
			uc, l := newTestUseCase(t, &mockInterpreter{err: tt.err}, seed)
			ctx := context.Background()

			out, err := uc.Submit(ctx, calendar.SubmitInput{Text: "do something"})
			if err != nil {
				t.Fatalf("interpreter failures are handled, got %v", err)
			}
			if out.Reply != tt.wantReply || out.Banner != tt.wantReply {
				t.Errorf("unexpected output: %+v", out)
			}
			if out.ErrorKind != "interpreter_unavailable" {
				t.Errorf("error kind = %q", out.ErrorKind)
			}
			if got := uc.Status(ctx).Banner; got != tt.wantReply {
				t.Errorf("banner = %q", got)
			}
			msgs := uc.Messages(ctx)
			if last := msgs[len(msgs)-1]; last.Sender != model.SenderAI || last.Text != tt.wantReply {
				t.Errorf("unexpected last message %+v", last)
			}
			if len(l.warns) == 0 {
				t.Error("expected a warning to be logged")
			}
			list, _ := uc.ListEvents(ctx, calendar.ListEventsInput{})
			if len(list.Events) != 1 {
				t.Error("store must be untouched")
			}
		})
	}
}

func TestSubmitBannerLifecycle(t *testing.T) {
	interp := &mockInterpreter{cmd: calendar.Command{Action: "DANCE"}}
	uc, _ := newTestUseCase(t, interp)
	ctx := context.Background()

	out, err := uc.Submit(ctx, calendar.SubmitInput{Text: "dance"})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if out.ErrorKind != "unrecognized_action" || out.Banner != "Unknown action from AI: DANCE" {
		t.Errorf("unexpected output: %+v", out)
	}
	if uc.Status(ctx).Banner != out.Banner {
		t.Error("banner should be visible in status")
	}

	interp.cmd = calendar.Command{Action: calendar.ActionRead, ResponseMessage: "Nothing today."}
	out, _ = uc.Submit(ctx, calendar.SubmitInput{Text: "what's on?"})
	if out.Banner != "" || uc.Status(ctx).Banner != "" {
		t.Error("next submission should clear the banner")
	}
	if out.Reply != "Nothing today." {
		t.Errorf("unexpected reply %q", out.Reply)
	}

	// Every accepted submission adds exactly one user and one ai message.
	if msgs := uc.Messages(ctx); len(msgs) != 5 {
		t.Errorf("expected 5 messages, got %d", len(msgs))
	}
}

func TestSubmitCommitsAfterCallerCancels(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	interp := &mockInterpreter{
		cmd:     calendar.Command{Action: calendar.ActionCreate, Event: &calendar.EventFields{Title: "Late", Date: "2024-05-03"}},
		block:   make(chan struct{}),
		release: make(chan struct{}),
	}
	uc, _ := newTestUseCase(t, interp)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = uc.Submit(ctx, calendar.SubmitInput{Text: "add late"})
	}()
	<-interp.block
	cancel()
	close(interp.release)
	<-done

	list, _ := uc.ListEvents(context.Background(), calendar.ListEventsInput{})
	if len(list.Events) != 1 {
		t.Errorf("expected the interpreted command to be committed, got %d events", len(list.Events))
	}
}

func TestSubmitReadLeavesStoreUnchanged(t *testing.T) {
	seed := []model.CalendarEvent{
		{ID: "1", Title: "Yoga", Date: testNow.Add(2 * time.Hour), CalendarID: "personal"},
		{ID: "2", Title: "Review", Date: testNow.Add(26 * time.Hour), CalendarID: "work"},
	}
	interp := &mockInterpreter{cmd: calendar.Command{Action: calendar.ActionRead, ResponseMessage: "Yoga at 10."}}
	uc, _ := newTestUseCase(t, interp, seed...)
	ctx := context.Background()

	before, _ := uc.ListEvents(ctx, calendar.ListEventsInput{})
	for i := 0; i < 2; i++ {
		out, err := uc.Submit(ctx, calendar.SubmitInput{Text: "what's on?"})
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		if out.Reply != "Yoga at 10." || out.ErrorKind != "" || out.Created != nil || len(out.AffectedIDs) != 0 {
			t.Errorf("unexpected output: %+v", out)
		}
	}
	after, _ := uc.ListEvents(ctx, calendar.ListEventsInput{})

	if len(after.Events) != len(before.Events) {
		t.Fatalf("READ changed the store: %d -> %d events", len(before.Events), len(after.Events))
	}
	for i := range before.Events {
		if after.Events[i].ID != before.Events[i].ID || !after.Events[i].Date.Equal(before.Events[i].Date) {
			t.Errorf("event %d changed: %+v -> %+v", i, before.Events[i], after.Events[i])
		}
	}
	// greeting + two user/ai pairs
	if msgs := uc.Messages(ctx); len(msgs) != 5 || msgs[4].Sender != model.SenderAI {
		t.Errorf("expected 5 messages ending with the ai reply, got %+v", msgs)
	}
}

func TestSubmitRecordsCommandMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	interp := &mockInterpreter{cmd: calendar.Command{Action: calendar.ActionRead}}
	uc, _ := newTestUseCase(t, interp)
	uc.metrics = metrics.NewManager(metrics.WithRegistry(reg), metrics.WithNamespace("t"))
	ctx := context.Background()

	if _, err := uc.Submit(ctx, calendar.SubmitInput{Text: "what's on?"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	interp.err = fmt.Errorf("%w: timeout", calendar.ErrInterpreterUnavailable)
	if _, err := uc.Submit(ctx, calendar.SubmitInput{Text: "again"}); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	got := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "t_assistant_commands_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			got[labels["action"]+"/"+labels["outcome"]] = m.GetCounter().GetValue()
		}
	}
	if got["READ/ok"] != 1 || got[ActionLabelNone+"/interpreter_unavailable"] != 1 {
		t.Errorf("unexpected command series: %v", got)
	}
}
