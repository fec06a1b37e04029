package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/core"
)

// Terminal is the rendering collaborator for interactive use: it draws the
// roster, message rows, notices and notifications to out, and parses input
// lines into router actions. All core.UI methods are invoked from the
// router goroutine.
type Terminal struct {
	out io.Writer
	log *zerolog.Logger
}

// NewTerminal builds a terminal UI writing to out.
func NewTerminal(out io.Writer, logger *zerolog.Logger) *Terminal {
	return &Terminal{out: out, log: logger}
}

// ShowLogin switches to the login view.
func (t *Terminal) ShowLogin() {
	fmt.Fprintln(t.out, "Logged out. Use /login <name> to register.")
}

// ShowChat switches to the chat view.
func (t *Terminal) ShowChat(identity string) {
	fmt.Fprintf(t.out, "Logged in as %s. Use /select <user> to open a conversation.\n", identity)
}

// RenderRoster redraws the online-user list.
func (t *Terminal) RenderRoster(users []string) {
	if len(users) == 0 {
		fmt.Fprintln(t.out, "No other users online")
		return
	}
	fmt.Fprintf(t.out, "Online: %s\n", strings.Join(users, ", "))
}

// AppendMessage prints one message row.
func (t *Terminal) AppendMessage(msg core.Message, own bool) {
	if own {
		fmt.Fprintf(t.out, "you: %s\n", msg.Content)
		return
	}
	fmt.Fprintf(t.out, "%s: %s\n", msg.Sender, msg.Content)
}

// AppendNotice prints one system notice row.
func (t *Terminal) AppendNotice(text string) {
	fmt.Fprintf(t.out, "-- %s --\n", text)
}

// RenderView redraws the whole active view.
func (t *Terminal) RenderView(entries []core.ViewEntry) {
	t.ClearView()
	for _, entry := range entries {
		switch entry.Kind {
		case core.ViewMessage:
			t.AppendMessage(entry.Message, entry.Own)
		case core.ViewNotice:
			t.AppendNotice(entry.Notice)
		}
	}
}

// ClearView marks the start of a fresh conversation view.
func (t *Terminal) ClearView() {
	fmt.Fprintln(t.out, "----------------------------------------")
}

// Notify shows a transient alert.
func (t *Terminal) Notify(n core.Notification) {
	fmt.Fprintf(t.out, "*** %s ***\n", n.Text)
}

// ShowError surfaces an error message.
func (t *Terminal) ShowError(text string) {
	fmt.Fprintf(t.out, "error: %s\n", text)
}

// ClearInput is a no-op for the terminal: the input buffer is owned by the
// line reader.
func (t *Terminal) ClearInput() {}

// ReadInput parses lines from in into actions until EOF, /quit, or context
// cancellation. Bare text is sent as a message to the selected partner.
func (t *Terminal) ReadInput(ctx context.Context, in io.Reader, actions chan<- core.Action) {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			t.log.Warn().Err(err).Msg("read input")
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			action, quit := parseLine(line)
			if quit {
				return
			}
			if action == nil {
				fmt.Fprintln(t.out, "commands: /login <name>, /select <user>, /logout, /quit")
				continue
			}
			select {
			case actions <- *action:
			case <-ctx.Done():
				return
			}
		}
	}
}

func parseLine(line string) (action *core.Action, quit bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil, false
	}

	if !strings.HasPrefix(trimmed, "/") {
		return &core.Action{Kind: core.ActionSend, Text: trimmed}, false
	}

	cmd, rest, _ := strings.Cut(trimmed, " ")
	rest = strings.TrimSpace(rest)
	switch cmd {
	case "/login":
		return &core.Action{Kind: core.ActionRegister, Name: rest}, false
	case "/select":
		if rest == "" {
			return nil, false
		}
		return &core.Action{Kind: core.ActionSelectPartner, Name: rest}, false
	case "/logout":
		return &core.Action{Kind: core.ActionLogout}, false
	case "/quit":
		return nil, true
	default:
		return nil, false
	}
}
