package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/proto"
)

// Client maintains the websocket channel to the chat server. Inbound
// envelopes are decoded into core events and pushed onto the router's event
// channel; outbound core commands are written as wire envelopes. After a
// disconnect command it schedules a fire-and-forget reconnect so a new
// login works without restarting the process.
type Client struct {
	url            string
	reconnectDelay time.Duration
	events         chan<- core.Event
	log            *zerolog.Logger

	mu   sync.Mutex
	conn *websocket.Conn
}

// NewClient builds a websocket client. events receives decoded inbound
// events; the channel is never closed by the client.
func NewClient(url string, reconnectDelay time.Duration, events chan<- core.Event, logger *zerolog.Logger) *Client {
	return &Client{
		url:            url,
		reconnectDelay: reconnectDelay,
		events:         events,
		log:            logger,
	}
}

// Connect dials the server and starts the read pump. An EventConnected is
// emitted once the channel is up.
func (c *Client) Connect(ctx context.Context) error {
	conn, _, err := websocket.Dial(ctx, c.url, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.url, err)
	}

	c.mu.Lock()
	c.conn = conn
	c.mu.Unlock()

	c.events <- core.Event{Kind: core.EventConnected}
	go c.readLoop(ctx, conn)
	return nil
}

// Write maps the command to its wire envelope and sends it. Disconnect
// commands tear the channel down instead.
func (c *Client) Write(ctx context.Context, cmd core.Command) error {
	if cmd.Kind == core.CommandDisconnect {
		c.disconnect(ctx)
		return nil
	}

	outbound, ok := outboundFromCommand(cmd)
	if !ok {
		return fmt.Errorf("command kind %d has no wire mapping", cmd.Kind)
	}

	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return errors.New("not connected")
	}

	if err := wsjson.Write(ctx, conn, outbound); err != nil {
		return fmt.Errorf("write %s: %w", outbound.Type, err)
	}
	return nil
}

// Close shuts the channel down without scheduling a reconnect.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		_ = c.conn.Close(websocket.StatusNormalClosure, "bye")
		c.conn = nil
	}
}

// disconnect closes the channel and schedules a reconnect attempt after the
// configured delay. The timer is fire-and-forget: there is no cancellation
// hook, matching the logout semantics.
func (c *Client) disconnect(ctx context.Context) {
	c.Close()
	c.events <- core.Event{Kind: core.EventDisconnected}

	time.AfterFunc(c.reconnectDelay, func() {
		if ctx.Err() != nil {
			return
		}
		if err := c.Connect(ctx); err != nil {
			c.log.Warn().Err(err).Msg("reconnect failed")
		}
	})
}

func (c *Client) readLoop(ctx context.Context, conn *websocket.Conn) {
	for {
		var inbound proto.Inbound
		if err := wsjson.Read(ctx, conn, &inbound); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
			default:
				c.log.Warn().Err(err).Msg("read ws inbound")
			}
			c.mu.Lock()
			stale := c.conn == conn
			if stale {
				c.conn = nil
			}
			c.mu.Unlock()
			if stale {
				c.events <- core.Event{Kind: core.EventDisconnected}
			}
			return
		}

		event, ok := eventFromInbound(inbound)
		if !ok {
			// Malformed or unknown wire event: silent drop.
			c.log.Debug().Str("type", inbound.Type).Msg("unhandled inbound event")
			continue
		}
		c.events <- event
	}
}
