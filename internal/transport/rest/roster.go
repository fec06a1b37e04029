package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/proto"
)

// Client pulls the online-user roster from the server's HTTP API. Presence
// is pull-based: every join/leave event and every own-registration success
// triggers a full re-fetch rather than an incremental patch.
type Client struct {
	baseURL string
	http    *http.Client
	events  chan<- core.Event
	log     *zerolog.Logger
}

// NewClient builds a roster client. Fetch results are delivered onto events
// so they re-enter the router's single control flow.
func NewClient(baseURL string, events chan<- core.Event, logger *zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		events:  events,
		log:     logger,
	}
}

// Fetch pulls the roster asynchronously. On success an EventRoster is
// emitted; on failure the pending refresh simply never resolves, which is
// logged for diagnostics only.
func (c *Client) Fetch(ctx context.Context) {
	go func() {
		users, err := c.fetch(ctx)
		if err != nil {
			c.log.Warn().Err(err).Msg("roster fetch failed")
			return
		}
		select {
		case c.events <- core.Event{Kind: core.EventRoster, Users: users}:
		case <-ctx.Done():
		}
	}()
}

func (c *Client) fetch(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/users", nil)
	if err != nil {
		return nil, fmt.Errorf("build roster request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("roster fetch: unexpected status %d", resp.StatusCode)
	}

	var body proto.RosterResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return body.Users, nil
}
