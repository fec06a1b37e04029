package core

import "time"

// MessageKind distinguishes message payloads. Only text is supported.
type MessageKind string

const (
	// MessageKindText is a plain text message.
	MessageKindText MessageKind = "text"
)

// Message is the domain model for a direct message between two users.
type Message struct {
	ID       string
	Sender   string
	Receiver string
	Content  string
	Kind     MessageKind
	SentAt   time.Time
}
