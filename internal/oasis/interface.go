package oasis

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	State(ctx context.Context) StateOutput
	Water(ctx context.Context) (StateOutput, error)
	Nurture(ctx context.Context, input NurtureInput) (StateOutput, error)
}
