package ws

import (
	"encoding/json"
	"time"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/proto"
)

// wireTimeLayout is the timestamp format the server stamps messages with.
const wireTimeLayout = "2006-01-02 15:04:05"

func outboundFromCommand(cmd core.Command) (proto.Outbound, bool) {
	switch cmd.Kind {
	case core.CommandRegister:
		return proto.Outbound{
			Type: proto.OutboundTypeRegister,
			Data: proto.RegisterData{Username: cmd.Username},
		}, true
	case core.CommandSendMessage:
		return proto.Outbound{
			Type: proto.OutboundTypeSendMessage,
			Data: proto.SendMessageData{
				Sender:   cmd.Message.Sender,
				Receiver: cmd.Message.Receiver,
				Message:  cmd.Message.Content,
				Type:     string(cmd.Message.Kind),
			},
		}, true
	case core.CommandFetchHistory:
		return proto.Outbound{
			Type: proto.OutboundTypeGetConversation,
			Data: proto.GetConversationData{User1: cmd.User1, User2: cmd.User2},
		}, true
	default:
		return proto.Outbound{}, false
	}
}

func eventFromInbound(inbound proto.Inbound) (core.Event, bool) {
	switch inbound.Type {
	case proto.InboundTypeConnectionResponse:
		return core.Event{Kind: core.EventConnected}, true
	case proto.InboundTypeUserRegistered:
		var data proto.UserRegisteredData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Event{}, false
		}
		return core.Event{
			Kind:     core.EventRegistered,
			Success:  data.Success,
			Username: data.Username,
		}, true
	case proto.InboundTypeUserJoined:
		var data proto.UserJoinedData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Event{}, false
		}
		return core.Event{Kind: core.EventUserJoined, Username: data.Username}, true
	case proto.InboundTypeUserLeft:
		var data proto.UserLeftData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Event{}, false
		}
		return core.Event{Kind: core.EventUserLeft, Username: data.Username}, true
	case proto.InboundTypeReceiveMessage:
		var data proto.MessageData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Event{}, false
		}
		return core.Event{Kind: core.EventMessage, Message: messageFromWire(data)}, true
	case proto.InboundTypeMessageSent:
		return core.Event{Kind: core.EventMessageSent}, true
	case proto.InboundTypeConversationHistory:
		var data proto.ConversationHistoryData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Event{}, false
		}
		msgs := make([]core.Message, 0, len(data.Messages))
		for _, m := range data.Messages {
			msgs = append(msgs, messageFromWire(m))
		}
		return core.Event{Kind: core.EventHistory, Messages: msgs}, true
	case proto.InboundTypeError:
		var data proto.ErrorData
		if err := json.Unmarshal(inbound.Data, &data); err != nil {
			return core.Event{}, false
		}
		return core.Event{Kind: core.EventServerError, Err: data.Message}, true
	default:
		return core.Event{}, false
	}
}

func messageFromWire(data proto.MessageData) core.Message {
	kind := core.MessageKind(data.Type)
	if kind == "" {
		kind = core.MessageKindText
	}

	sentAt, err := time.Parse(wireTimeLayout, data.Timestamp)
	if err != nil {
		// Display order is arrival order; a missing server timestamp is
		// substituted with local receipt time.
		sentAt = time.Now()
	}

	return core.Message{
		ID:       data.MessageID,
		Sender:   data.Sender,
		Receiver: data.Receiver,
		Content:  data.Content,
		Kind:     kind,
		SentAt:   sentAt,
	}
}
