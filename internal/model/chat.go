package model

// Sender identifies who wrote a chat message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// ChatMessage is one entry in the assistant transcript.
type ChatMessage struct {
	Sender Sender
	Text   string
}
