package core

// UI is the rendering collaborator. The router calls it from its own
// goroutine; implementations must not call back into the router
// synchronously.
type UI interface {
	// ShowLogin switches to the login view (after logout).
	ShowLogin()
	// ShowChat switches to the chat view for the registered identity.
	ShowChat(identity string)
	// RenderRoster redraws the online-user list.
	RenderRoster(users []string)
	// AppendMessage adds one message row to the active view.
	AppendMessage(msg Message, own bool)
	// AppendNotice adds one system notice row to the active view.
	AppendNotice(text string)
	// RenderView redraws the whole active view (history replace).
	RenderView(entries []ViewEntry)
	// ClearView empties the active view.
	ClearView()
	// Notify shows a transient alert.
	Notify(n Notification)
	// ShowError surfaces a validation or server error message.
	ShowError(text string)
	// ClearInput empties the outbound input buffer after a send ack.
	ClearInput()
}

// MessageRecorder receives every message the router records, for durable
// archiving alongside the in-memory store.
type MessageRecorder interface {
	Record(msg Message) error
}
