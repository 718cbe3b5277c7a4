package interpreter

import (
	"context"

	"personal-dashboard/internal/calendar"
	"personal-dashboard/pkg/llmprovider"
	"personal-dashboard/pkg/log"
)

// Generator is the LLM surface the interpreter needs. *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

type implInterpreter struct {
	l   log.Logger
	llm Generator
}

var _ calendar.Interpreter = (*implInterpreter)(nil)

// New creates an Interpreter backed by the given LLM generator.
func New(l log.Logger, llm Generator) *implInterpreter {
	return &implInterpreter{
		l:   l,
		llm: llm,
	}
}
