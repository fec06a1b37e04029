package core

import (
	"strings"
	"unicode/utf8"
)

// Status is the connection state of the session.
type Status int

const (
	// StatusDisconnected means no usable transport channel.
	StatusDisconnected Status = iota
	// StatusConnected means the transport channel is established.
	StatusConnected
)

// ViewEntryKind distinguishes rows in the active view.
type ViewEntryKind int

const (
	// ViewMessage is a rendered message bubble.
	ViewMessage ViewEntryKind = iota
	// ViewNotice is a system-level notice line.
	ViewNotice
)

// ViewEntry is one row of the active view: either a message (own or
// partner's) or a system notice.
type ViewEntry struct {
	Kind    ViewEntryKind
	Message Message
	Own     bool
	Notice  string
}

// Session owns the client-side chat state: identity, selected partner,
// connection status, and the active view. All mutation goes through its
// methods and happens on the router goroutine.
type Session struct {
	identity string
	partner  string
	status   Status
	view     []ViewEntry
}

// NewSession constructs an unauthenticated, disconnected session.
func NewSession() *Session {
	return &Session{}
}

// Identity returns the registered display name, or "" before registration.
func (s *Session) Identity() string { return s.identity }

// Partner returns the currently selected conversation partner, or "".
func (s *Session) Partner() string { return s.partner }

// Status returns the connection status.
func (s *Session) Status() Status { return s.status }

// View returns a copy of the active view rows.
func (s *Session) View() []ViewEntry {
	out := make([]ViewEntry, len(s.view))
	copy(out, s.view)
	return out
}

func (s *Session) setStatus(st Status) {
	s.status = st
}

func (s *Session) setIdentity(name string) {
	s.identity = name
}

// selectPartner switches the active conversation and clears the view; the
// caller is responsible for issuing the history fetch.
func (s *Session) selectPartner(name string) {
	s.partner = name
	s.view = nil
}

func (s *Session) appendMessage(msg Message, own bool) {
	s.view = append(s.view, ViewEntry{Kind: ViewMessage, Message: msg, Own: own})
}

func (s *Session) appendNotice(text string) {
	s.view = append(s.view, ViewEntry{Kind: ViewNotice, Notice: text})
}

// replaceView rebuilds the active view from a history reply. Full replace:
// replaying the same reply yields the same view.
func (s *Session) replaceView(msgs []Message) {
	view := make([]ViewEntry, 0, len(msgs))
	for _, m := range msgs {
		view = append(view, ViewEntry{
			Kind:    ViewMessage,
			Message: m,
			Own:     m.Sender == s.identity,
		})
	}
	s.view = view
}

// reset returns the session to its pre-login state.
func (s *Session) reset() {
	s.identity = ""
	s.partner = ""
	s.status = StatusDisconnected
	s.view = nil
}

// ValidateUsername trims the candidate name and checks the 3-20 character
// length constraint. Returns the trimmed name on success.
func ValidateUsername(name string) (string, *ValidationError) {
	name = strings.TrimSpace(name)
	// Characters, not bytes: multibyte names count by rune.
	if n := utf8.RuneCountInString(name); n < 3 || n > 20 {
		return "", validationError(ErrCodeUsernameLength, ErrUsernameLength.Error())
	}
	return name, nil
}
