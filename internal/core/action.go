package core

// ActionKind describes what the user wants to do.
type ActionKind int

const (
	// ActionRegister submits a display name for registration.
	ActionRegister ActionKind = iota
	// ActionLogout tears the session down.
	ActionLogout
	// ActionSelectPartner picks a roster entry to chat with.
	ActionSelectPartner
	// ActionSend sends a text message to the selected partner.
	ActionSend
)

// Action represents a user-initiated request entering the router loop.
type Action struct {
	Kind ActionKind
	Name string // ActionRegister, ActionSelectPartner
	Text string // ActionSend
}
