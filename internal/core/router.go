package core

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Router owns the session, conversation store and roster, and funnels every
// state mutation through a single goroutine: user actions and inbound
// transport events are processed one at a time, never concurrently, so the
// stores need no locking. Outbound work is emitted as Commands for the
// transport layer to perform.
type Router struct {
	session  *Session
	store    *ConversationStore
	roster   *Roster
	notifier *Notifier
	ui       UI
	recorder MessageRecorder
	log      *zerolog.Logger

	// Actions carries user-initiated requests into the loop.
	Actions chan Action
	// Events carries inbound transport events and async fetch completions.
	Events chan Event
	// Commands carries outbound requests to the transport layer.
	Commands chan Command
}

// NewRouter constructs a router with fresh state. notifyTTL is the display
// duration for transient notifications.
func NewRouter(ui UI, notifyTTL time.Duration, logger *zerolog.Logger) *Router {
	r := &Router{
		session:  NewSession(),
		store:    NewConversationStore(),
		roster:   NewRoster(),
		ui:       ui,
		log:      logger,
		Actions:  make(chan Action, 8),
		Events:   make(chan Event, 8),
		Commands: make(chan Command, 8),
	}
	r.notifier = NewNotifier(notifyTTL, ui.Notify)
	return r
}

// SetRecorder attaches a durable archive for recorded messages. Must be
// called before Run.
func (r *Router) SetRecorder(rec MessageRecorder) {
	r.recorder = rec
}

// Session exposes the session state for rendering and tests.
func (r *Router) Session() *Session { return r.session }

// Store exposes the conversation store.
func (r *Router) Store() *ConversationStore { return r.store }

// Roster exposes the presence tracker.
func (r *Router) Roster() *Roster { return r.roster }

// Notifier exposes the notification emitter.
func (r *Router) Notifier() *Notifier { return r.notifier }

// Run processes actions and events until the context is cancelled.
func (r *Router) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case action := <-r.Actions:
			r.handleAction(action)
		case event := <-r.Events:
			r.handleEvent(event)
		}
	}
}

func (r *Router) handleAction(action Action) {
	switch action.Kind {
	case ActionRegister:
		r.register(action.Name)
	case ActionLogout:
		r.logout()
	case ActionSelectPartner:
		r.selectPartner(action.Name)
	case ActionSend:
		r.send(action.Text)
	default:
		r.log.Warn().Int("kind", int(action.Kind)).Msg("unknown action dropped")
	}
}

func (r *Router) handleEvent(event Event) {
	switch event.Kind {
	case EventConnected:
		r.session.setStatus(StatusConnected)
		r.log.Debug().Msg("transport connected")
	case EventDisconnected:
		r.session.setStatus(StatusDisconnected)
		r.log.Warn().Msg("transport disconnected")
	case EventRegistered:
		r.registered(event)
	case EventUserJoined:
		r.presenceChanged(event.Username, "joined the chat")
	case EventUserLeft:
		r.presenceChanged(event.Username, "left the chat")
	case EventMessage:
		r.messageReceived(event.Message)
	case EventMessageSent:
		r.ui.ClearInput()
	case EventHistory:
		r.historyReceived(event.Messages)
	case EventRoster:
		r.roster.Update(event.Users)
		r.ui.RenderRoster(r.roster.Users())
	case EventServerError:
		// Surfaced verbatim, no state mutation.
		r.ui.ShowError(event.Err)
	default:
		r.log.Warn().Int("kind", int(event.Kind)).Msg("unknown event dropped")
	}
}

// register validates the display name and, if valid, sends exactly one
// registration request. The session transitions only on the acknowledgement.
func (r *Router) register(name string) {
	name, verr := ValidateUsername(name)
	if verr != nil {
		r.reportValidation(verr)
		return
	}
	r.Commands <- Command{Kind: CommandRegister, Username: name}
}

func (r *Router) registered(event Event) {
	if !event.Success {
		r.ui.ShowError("registration failed")
		return
	}
	r.session.setIdentity(event.Username)
	r.session.setStatus(StatusConnected)
	r.roster.SetSelf(event.Username)
	r.ui.ShowChat(event.Username)
	r.Commands <- Command{Kind: CommandFetchRoster}
	r.log.Info().Str("user", event.Username).Msg("registered")
}

// logout performs a full reset: identity, selection, view, conversation
// history and roster are all discarded. The transport tears the channel
// down and schedules a reconnect so a new login works without a restart.
func (r *Router) logout() {
	r.Commands <- Command{Kind: CommandDisconnect}
	r.session.reset()
	r.store.Reset()
	r.roster.Reset()
	r.ui.ClearView()
	r.ui.ShowLogin()
	r.log.Info().Msg("logged out")
}

func (r *Router) selectPartner(name string) {
	if r.session.Identity() == "" {
		r.reportValidation(validationError(ErrCodeNotLoggedIn, ErrNotLoggedIn.Error()))
		return
	}
	r.session.selectPartner(name)
	r.ui.ClearView()
	r.Commands <- Command{
		Kind:  CommandFetchHistory,
		User1: r.session.Identity(),
		User2: name,
	}
}

// send checks its three preconditions individually, then sends the message
// and appends an optimistic local echo before any acknowledgement arrives.
// There is no reconciliation if the server later rejects the send.
func (r *Router) send(text string) {
	msg, verr := r.outboundMessage(text)
	if verr != nil {
		r.reportValidation(verr)
		return
	}

	r.Commands <- Command{Kind: CommandSendMessage, Message: msg}

	r.store.Record(msg)
	r.session.appendMessage(msg, true)
	r.ui.AppendMessage(msg, true)
	r.archive(msg)
}

func (r *Router) messageReceived(msg Message) {
	// A message not addressed to this client should not happen with a
	// correct server; drop it without touching any state.
	if msg.Receiver != r.session.Identity() {
		r.log.Debug().
			Str("sender", msg.Sender).
			Str("receiver", msg.Receiver).
			Msg("unaddressed message dropped")
		return
	}

	r.store.Record(msg)
	r.archive(msg)

	if msg.Sender == r.session.Partner() {
		r.session.appendMessage(msg, false)
		r.ui.AppendMessage(msg, false)
		return
	}
	r.notifier.Notify(fmt.Sprintf("New message from %s", msg.Sender))
}

func (r *Router) historyReceived(msgs []Message) {
	partner := r.session.Partner()
	if partner == "" {
		r.log.Debug().Int("count", len(msgs)).Msg("history reply with no selection dropped")
		return
	}

	if len(msgs) == 0 {
		r.session.replaceView(nil)
		r.session.appendNotice(fmt.Sprintf("No previous messages with %s", partner))
	} else {
		r.session.replaceView(msgs)
	}
	r.ui.RenderView(r.session.View())
}

func (r *Router) presenceChanged(user, verb string) {
	r.Commands <- Command{Kind: CommandFetchRoster}
	if r.session.Identity() == "" {
		return
	}
	notice := fmt.Sprintf("%s %s", user, verb)
	r.session.appendNotice(notice)
	r.ui.AppendNotice(notice)
}

func (r *Router) outboundMessage(text string) (Message, *ValidationError) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Message{}, validationError(ErrCodeEmptyMessage, ErrEmptyMessage.Error())
	}
	if r.session.Identity() == "" {
		return Message{}, validationError(ErrCodeNotLoggedIn, ErrNotLoggedIn.Error())
	}
	if r.session.Partner() == "" {
		return Message{}, validationError(ErrCodeNoPartnerSelected, ErrNoPartnerSelected.Error())
	}
	return Message{
		ID:       uuid.NewString(),
		Sender:   r.session.Identity(),
		Receiver: r.session.Partner(),
		Content:  trimmed,
		Kind:     MessageKindText,
		SentAt:   time.Now(),
	}, nil
}

func (r *Router) reportValidation(verr *ValidationError) {
	r.log.Debug().Str("code", verr.Code).Msg("validation failed")
	r.ui.ShowError(verr.Message)
}

func (r *Router) archive(msg Message) {
	if r.recorder == nil {
		return
	}
	if err := r.recorder.Record(msg); err != nil {
		r.log.Warn().Err(err).Msg("failed to archive message")
	}
}
