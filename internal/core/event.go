package core

// EventKind is an inbound notification the router reacts to. Every kind the
// server (or the roster fetcher) can produce has a variant here; the router
// switches over them exhaustively.
type EventKind int

const (
	// EventConnected signals the transport channel is established.
	EventConnected EventKind = iota
	// EventDisconnected signals the transport channel dropped.
	EventDisconnected
	// EventRegistered is the server acknowledgement of a registration attempt.
	EventRegistered
	// EventUserJoined notifies that a user came online.
	EventUserJoined
	// EventUserLeft notifies that a user went offline.
	EventUserLeft
	// EventMessage delivers an inbound direct message.
	EventMessage
	// EventMessageSent acknowledges a message this client sent.
	EventMessageSent
	// EventHistory delivers conversation history for the requested pair.
	EventHistory
	// EventRoster delivers the result of an online-user roster fetch.
	EventRoster
	// EventServerError carries a server-reported error message.
	EventServerError
)

// Event describes something that happened outside the client's control flow.
// Exactly one of the payload fields is meaningful per kind.
type Event struct {
	Kind     EventKind
	Success  bool      // EventRegistered
	Username string    // EventRegistered, EventUserJoined, EventUserLeft
	Message  Message   // EventMessage
	Messages []Message // EventHistory
	Users    []string  // EventRoster
	Err      string    // EventServerError
}
