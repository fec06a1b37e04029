package ws

import (
	"encoding/json"
	"testing"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/proto"
)

func inbound(t *testing.T, typ string, data any) proto.Inbound {
	t.Helper()
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal %s payload: %v", typ, err)
	}
	return proto.Inbound{Type: typ, Data: raw}
}

func TestEventFromInbound(t *testing.T) {
	tests := []struct {
		name string
		in   proto.Inbound
		want core.Event
	}{
		{
			name: "connection response",
			in:   inbound(t, proto.InboundTypeConnectionResponse, proto.ConnectionResponseData{Data: "Connected to server"}),
			want: core.Event{Kind: core.EventConnected},
		},
		{
			name: "user registered",
			in:   inbound(t, proto.InboundTypeUserRegistered, proto.UserRegisteredData{Username: "ann", Success: true}),
			want: core.Event{Kind: core.EventRegistered, Success: true, Username: "ann"},
		},
		{
			name: "user joined",
			in:   inbound(t, proto.InboundTypeUserJoined, proto.UserJoinedData{Username: "bob"}),
			want: core.Event{Kind: core.EventUserJoined, Username: "bob"},
		},
		{
			name: "user left",
			in:   inbound(t, proto.InboundTypeUserLeft, proto.UserLeftData{Username: "bob"}),
			want: core.Event{Kind: core.EventUserLeft, Username: "bob"},
		},
		{
			name: "message sent ack",
			in:   inbound(t, proto.InboundTypeMessageSent, proto.MessageSentData{Success: true}),
			want: core.Event{Kind: core.EventMessageSent},
		},
		{
			name: "server error",
			in:   inbound(t, proto.InboundTypeError, proto.ErrorData{Message: "Username already taken"}),
			want: core.Event{Kind: core.EventServerError, Err: "Username already taken"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := eventFromInbound(tt.in)
			if !ok {
				t.Fatalf("expected event for %s", tt.in.Type)
			}
			if got.Kind != tt.want.Kind || got.Success != tt.want.Success ||
				got.Username != tt.want.Username || got.Err != tt.want.Err {
				t.Fatalf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestEventFromInboundMessage(t *testing.T) {
	in := inbound(t, proto.InboundTypeReceiveMessage, proto.MessageData{
		Sender:    "bob",
		Receiver:  "ann",
		Content:   "hey",
		Type:      "text",
		Timestamp: "2026-08-29 10:30:00",
		MessageID: "bob_2026-08-29_103000",
	})

	event, ok := eventFromInbound(in)
	if !ok {
		t.Fatal("expected message event")
	}
	msg := event.Message
	if msg.Sender != "bob" || msg.Receiver != "ann" || msg.Content != "hey" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if msg.Kind != core.MessageKindText {
		t.Fatalf("expected text kind, got %q", msg.Kind)
	}
	if msg.SentAt.Year() != 2026 {
		t.Fatalf("server timestamp not parsed: %v", msg.SentAt)
	}
}

func TestEventFromInboundHistory(t *testing.T) {
	in := inbound(t, proto.InboundTypeConversationHistory, proto.ConversationHistoryData{
		User1: "ann",
		User2: "bob",
		Messages: []proto.MessageData{
			{Sender: "ann", Receiver: "bob", Content: "hi"},
			{Sender: "bob", Receiver: "ann", Content: "hello"},
		},
	})

	event, ok := eventFromInbound(in)
	if !ok {
		t.Fatal("expected history event")
	}
	if len(event.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(event.Messages))
	}
	if event.Messages[1].Content != "hello" {
		t.Fatalf("order not preserved: %+v", event.Messages)
	}
}

func TestEventFromInboundDropsUnknownAndMalformed(t *testing.T) {
	if _, ok := eventFromInbound(proto.Inbound{Type: "call_incoming", Data: []byte(`{}`)}); ok {
		t.Fatal("unknown event type must be dropped")
	}
	if _, ok := eventFromInbound(proto.Inbound{Type: proto.InboundTypeReceiveMessage, Data: []byte(`"oops"`)}); ok {
		t.Fatal("malformed payload must be dropped")
	}
}

func TestOutboundFromCommand(t *testing.T) {
	register, ok := outboundFromCommand(core.Command{Kind: core.CommandRegister, Username: "ann"})
	if !ok || register.Type != proto.OutboundTypeRegister {
		t.Fatalf("unexpected register envelope: %+v", register)
	}

	send, ok := outboundFromCommand(core.Command{
		Kind: core.CommandSendMessage,
		Message: core.Message{
			Sender:   "ann",
			Receiver: "bob",
			Content:  "hi",
			Kind:     core.MessageKindText,
		},
	})
	if !ok || send.Type != proto.OutboundTypeSendMessage {
		t.Fatalf("unexpected send envelope: %+v", send)
	}
	data, ok := send.Data.(proto.SendMessageData)
	if !ok {
		t.Fatalf("unexpected send payload type: %T", send.Data)
	}
	if data.Message != "hi" || data.Type != "text" {
		t.Fatalf("unexpected send payload: %+v", data)
	}

	history, ok := outboundFromCommand(core.Command{Kind: core.CommandFetchHistory, User1: "ann", User2: "bob"})
	if !ok || history.Type != proto.OutboundTypeGetConversation {
		t.Fatalf("unexpected history envelope: %+v", history)
	}

	if _, ok := outboundFromCommand(core.Command{Kind: core.CommandFetchRoster}); ok {
		t.Fatal("roster pull has no websocket mapping")
	}
}
