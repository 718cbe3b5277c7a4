package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/internal/model"
)

// Submit runs one assistant round-trip. It returns an error only when the
// submission is refused (empty text, another command in flight); command
// failures are reported through the output's banner and reply.
func (uc *implUseCase) Submit(ctx context.Context, input calendar.SubmitInput) (calendar.SubmitOutput, error) {
	if strings.TrimSpace(input.Text) == "" {
		uc.metrics.RecordCommandRejected("empty")
		return calendar.SubmitOutput{}, calendar.ErrEmptyCommand
	}
	if !uc.inFlight.CompareAndSwap(false, true) {
		uc.metrics.RecordCommandRejected("in_flight")
		return calendar.SubmitOutput{}, calendar.ErrCommandInFlight
	}
	defer uc.inFlight.Store(false)

	// Once accepted, the transcript and store are updated even if the caller goes away.
	commitCtx := context.WithoutCancel(ctx)

	uc.setBanner("")
	uc.appendMessage(commitCtx, model.SenderUser, input.Text)

	started := time.Now()
	cmd, err := uc.interpreter.Interpret(ctx, input.Text, uc.clock())
	uc.metrics.ObserveInterpreter(time.Since(started), err)
	if err != nil {
		return uc.interpreterFailed(commitCtx, err), nil
	}

	var outcome calendar.Outcome
	events, err := uc.repo.ApplyEvents(commitCtx, func(current []model.CalendarEvent) []model.CalendarEvent {
		outcome = uc.reconciler.Reconcile(cmd, current)
		return outcome.Events
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: repo.ApplyEvents: %v", LogPrefixSubmit, err)
		return calendar.SubmitOutput{}, err
	}
	uc.metrics.SetEventsStored(len(events))

	out := calendar.SubmitOutput{
		Reply:       outcome.Reply,
		Action:      cmd.Action,
		Created:     outcome.Created,
		AffectedIDs: outcome.Affected,
	}
	kind := "ok"
	if outcome.Err != nil {
		uc.l.Warnf(ctx, "%s: %v", LogPrefixSubmit, outcome.Err)
		kind = calendar.KindName(outcome.Err)
		out.ErrorKind = kind
		out.Banner = outcome.Err.Message
		uc.setBanner(out.Banner)
	}
	uc.metrics.RecordCommand(string(cmd.Action), kind)
	uc.appendMessage(commitCtx, model.SenderAI, outcome.Reply)

	return out, nil
}

func (uc *implUseCase) interpreterFailed(ctx context.Context, err error) calendar.SubmitOutput {
	reply := ReplyInterpreterError
	if errors.Is(err, calendar.ErrMalformedCommand) {
		reply = ReplyMalformed
	}
	uc.l.Warnf(ctx, "%s: interpreter.Interpret: %v", LogPrefixSubmit, err)

	uc.setBanner(reply)
	uc.appendMessage(ctx, model.SenderAI, reply)
	uc.metrics.RecordCommand(ActionLabelNone, calendar.KindName(err))

	return calendar.SubmitOutput{
		Reply:     reply,
		ErrorKind: calendar.KindName(err),
		Banner:    reply,
	}
}

func (uc *implUseCase) appendMessage(ctx context.Context, sender model.Sender, text string) {
	if err := uc.repo.AppendMessage(ctx, model.ChatMessage{Sender: sender, Text: text}); err != nil {
		uc.l.Errorf(ctx, "%s: repo.AppendMessage: %v", LogPrefixSubmit, err)
	}
}

// Status reports whether a command is in flight and the current error banner.
func (uc *implUseCase) Status(ctx context.Context) calendar.StatusOutput {
	return calendar.StatusOutput{
		Processing: uc.inFlight.Load(),
		Banner:     uc.currentBanner(),
	}
}

// Messages returns the transcript, oldest first.
func (uc *implUseCase) Messages(ctx context.Context) []model.ChatMessage {
	msgs, err := uc.repo.ListMessages(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "internal.calendar.usecase.Messages: repo.ListMessages: %v", err)
		return nil
	}
	return msgs
}
