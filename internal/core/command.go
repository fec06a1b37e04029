package core

// CommandKind describes an outbound request the router asks the transports
// to perform.
type CommandKind int

const (
	// CommandRegister sends a register_user request.
	CommandRegister CommandKind = iota
	// CommandSendMessage sends a direct message.
	CommandSendMessage
	// CommandFetchHistory requests conversation history for a pair.
	CommandFetchHistory
	// CommandFetchRoster pulls the online-user roster.
	CommandFetchRoster
	// CommandDisconnect tears the channel down and schedules a reconnect.
	CommandDisconnect
)

// Command represents an action requested of the transport layer.
type Command struct {
	Kind     CommandKind
	Username string  // CommandRegister
	Message  Message // CommandSendMessage
	User1    string  // CommandFetchHistory
	User2    string  // CommandFetchHistory
}
