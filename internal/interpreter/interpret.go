package interpreter

import (
	"context"
	"fmt"
	"time"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/pkg/gemini"
	"personal-dashboard/pkg/llmprovider"
)

// Interpret asks the model to turn text into a Command. Every error wraps
// calendar.ErrInterpreterUnavailable; unusable payloads also wrap
// calendar.ErrMalformedCommand.
func (i *implInterpreter) Interpret(ctx context.Context, text string, now time.Time) (calendar.Command, error) {
	instruction := llmprovider.TextMessage(llmprovider.RoleSystem,
		fmt.Sprintf(systemInstructionTemplate, now.UTC().Format(isoTimestampLayout)))
	req := &llmprovider.Request{
		SystemInstruction: &instruction,
		Messages:          []llmprovider.Message{llmprovider.TextMessage(llmprovider.RoleUser, text)},
		ResponseMIMEType:  gemini.MIMETypeJSON,
		ResponseSchema:    responseSchema,
	}

	resp, err := i.llm.GenerateContent(ctx, req)
	if err != nil {
		i.l.Errorf(ctx, "%s: llm.GenerateContent: %v", logPrefix, err)
		return calendar.Command{}, fmt.Errorf("%w: %w", calendar.ErrInterpreterUnavailable, err)
	}

	raw := resp.Text()
	i.l.Debugf(ctx, "%s: raw payload from %s/%s: %s", logPrefix, resp.ProviderName, resp.ModelName, raw)

	cmd, err := decodeCommand(raw)
	if err != nil {
		i.l.Warnf(ctx, "%s: decodeCommand: %v", logPrefix, err)
		return calendar.Command{}, fmt.Errorf("%w: %w", calendar.ErrInterpreterUnavailable, err)
	}
	return cmd, nil
}
