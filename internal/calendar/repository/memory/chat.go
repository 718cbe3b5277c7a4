package memory

import (
	"context"

	"personal-dashboard/internal/model"
)

func (r *implRepository) AppendMessage(ctx context.Context, msg model.ChatMessage) error {
	r.chatMu.Lock()
	defer r.chatMu.Unlock()

	r.messages = append(r.messages, msg)
	return nil
}

func (r *implRepository) ListMessages(ctx context.Context) ([]model.ChatMessage, error) {
	r.chatMu.RLock()
	defer r.chatMu.RUnlock()

	out := make([]model.ChatMessage, len(r.messages))
	copy(out, r.messages)
	return out, nil
}
