package proto

import "encoding/json"

// Outbound is the envelope for events sent to the server.
type Outbound struct {
	Type string `json:"type"`
	Data any    `json:"data,omitempty"`
}

// Inbound is the envelope for events coming from the server.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	OutboundTypeRegister        = "register_user"
	OutboundTypeSendMessage     = "send_message"
	OutboundTypeGetConversation = "get_conversation"

	InboundTypeConnectionResponse  = "connection_response"
	InboundTypeUserRegistered      = "user_registered"
	InboundTypeUserJoined          = "user_joined"
	InboundTypeUserLeft            = "user_left"
	InboundTypeReceiveMessage      = "receive_message"
	InboundTypeMessageSent         = "message_sent"
	InboundTypeConversationHistory = "conversation_history"
	InboundTypeError               = "error"
)

// RegisterData submits a display name for registration.
type RegisterData struct {
	Username string `json:"username"`
}

// SendMessageData is an outbound direct message.
type SendMessageData struct {
	Sender   string `json:"sender"`
	Receiver string `json:"receiver"`
	Message  string `json:"message"`
	Type     string `json:"type"`
}

// GetConversationData requests history for a pair of users.
type GetConversationData struct {
	User1 string `json:"user1"`
	User2 string `json:"user2"`
}

// ConnectionResponseData greets a freshly connected client.
type ConnectionResponseData struct {
	Data string `json:"data"`
}

// UserRegisteredData acknowledges a registration attempt.
type UserRegisteredData struct {
	Username    string   `json:"username"`
	Success     bool     `json:"success"`
	ActiveUsers []string `json:"active_users,omitempty"`
}

// UserJoinedData notifies that a user came online.
type UserJoinedData struct {
	Username   string `json:"username"`
	Timestamp  string `json:"timestamp,omitempty"`
	TotalUsers int    `json:"total_users,omitempty"`
}

// UserLeftData notifies that a user went offline.
type UserLeftData struct {
	Username   string `json:"username"`
	Timestamp  string `json:"timestamp,omitempty"`
	TotalUsers int    `json:"total_users,omitempty"`
}

// MessageData is a message on the wire, both for live delivery and inside
// history replies.
type MessageData struct {
	Sender    string `json:"sender"`
	Receiver  string `json:"receiver"`
	Content   string `json:"content"`
	Type      string `json:"type,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
	MessageID string `json:"message_id,omitempty"`
}

// MessageSentData acknowledges a message this client sent.
type MessageSentData struct {
	Success   bool   `json:"success"`
	MessageID string `json:"message_id,omitempty"`
	Timestamp string `json:"timestamp,omitempty"`
}

// ConversationHistoryData is the reply to a get_conversation request.
type ConversationHistoryData struct {
	User1    string        `json:"user1,omitempty"`
	User2    string        `json:"user2,omitempty"`
	Messages []MessageData `json:"messages"`
}

// ErrorData describes a server-reported error.
type ErrorData struct {
	Message string `json:"message"`
}

// RosterResponse is the body of the GET /api/users roster pull.
type RosterResponse struct {
	Users []string `json:"users"`
}
