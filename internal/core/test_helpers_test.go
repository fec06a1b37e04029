package core

import (
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// fakeUI records every collaborator call the router makes. The mutex matters
// only for tests that drive the router through Run.
type fakeUI struct {
	mu           sync.Mutex
	loginShown   int
	chatShown    []string
	rosters      [][]string
	appended     []appendedMessage
	notices      []string
	rendered     [][]ViewEntry
	viewCleared  int
	notifs       []Notification
	errs         []string
	inputCleared int
}

type appendedMessage struct {
	msg Message
	own bool
}

func (f *fakeUI) ShowLogin() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginShown++
}

func (f *fakeUI) ShowChat(identity string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.chatShown = append(f.chatShown, identity)
}

func (f *fakeUI) RenderRoster(users []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rosters = append(f.rosters, users)
}

func (f *fakeUI) AppendMessage(msg Message, own bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, appendedMessage{msg: msg, own: own})
}

func (f *fakeUI) AppendNotice(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notices = append(f.notices, text)
}

func (f *fakeUI) RenderView(entries []ViewEntry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rendered = append(f.rendered, entries)
}

func (f *fakeUI) ClearView() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.viewCleared++
}

func (f *fakeUI) Notify(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifs = append(f.notifs, n)
}

func (f *fakeUI) ShowError(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs = append(f.errs, text)
}

func (f *fakeUI) ClearInput() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputCleared++
}

// chatTransitions returns a snapshot of ShowChat calls for tests that run
// the router loop concurrently.
func (f *fakeUI) chatTransitions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.chatShown))
	copy(out, f.chatShown)
	return out
}

func newTestRouter(t *testing.T) (*Router, *fakeUI) {
	t.Helper()
	logger := zerolog.Nop()
	ui := &fakeUI{}
	return NewRouter(ui, 3*time.Second, &logger), ui
}

// mustCommand asserts exactly one pending command of the given kind.
func mustCommand(t *testing.T, r *Router, kind CommandKind) Command {
	t.Helper()
	select {
	case cmd := <-r.Commands:
		if cmd.Kind != kind {
			t.Fatalf("expected command kind %v, got %v", kind, cmd.Kind)
		}
		return cmd
	default:
		t.Fatalf("expected command kind %v, none emitted", kind)
	}
	return Command{}
}

// noCommands asserts the command channel is empty.
func noCommands(t *testing.T, r *Router) {
	t.Helper()
	select {
	case cmd := <-r.Commands:
		t.Fatalf("unexpected command emitted: %+v", cmd)
	default:
	}
}

func drainCommands(r *Router) {
	for {
		select {
		case <-r.Commands:
		default:
			return
		}
	}
}

// login registers the identity via the server acknowledgement path.
func login(t *testing.T, r *Router, identity string) {
	t.Helper()
	r.handleEvent(Event{Kind: EventRegistered, Success: true, Username: identity})
	drainCommands(r)
}

// loginAndSelect registers and selects a conversation partner.
func loginAndSelect(t *testing.T, r *Router, identity, partner string) {
	t.Helper()
	login(t, r, identity)
	r.handleAction(Action{Kind: ActionSelectPartner, Name: partner})
	drainCommands(r)
}
