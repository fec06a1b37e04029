package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/vovakirdan/wirechat-client/internal/archive"
	"github.com/vovakirdan/wirechat-client/internal/config"
	"github.com/vovakirdan/wirechat-client/internal/core"
	"github.com/vovakirdan/wirechat-client/internal/transport/rest"
	"github.com/vovakirdan/wirechat-client/internal/transport/ws"
	"github.com/vovakirdan/wirechat-client/internal/ui"
)

// App wires the router, transports, archive and terminal UI together.
type App struct {
	cfg     config.Config
	router  *core.Router
	channel *ws.Client
	roster  *rest.Client
	arc     *archive.Archive
	term    *ui.Terminal
	log     *zerolog.Logger
}

// New constructs the application with provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	term := ui.NewTerminal(os.Stdout, logger)
	router := core.NewRouter(term, cfg.NotifyDuration, logger)

	var arc *archive.Archive
	if cfg.ArchivePath != "" {
		var err error
		arc, err = archive.Open(cfg.ArchivePath)
		if err != nil {
			return nil, fmt.Errorf("open archive: %w", err)
		}
		router.SetRecorder(arc)
		logger.Info().Str("path", cfg.ArchivePath).Msg("message archive enabled")
	}

	return &App{
		cfg:     cfg,
		router:  router,
		channel: ws.NewClient(cfg.ServerURL, cfg.ReconnectDelay, router.Events, logger),
		roster:  rest.NewClient(cfg.APIBaseURL, router.Events, logger),
		arc:     arc,
		term:    term,
		log:     logger,
	}, nil
}

// Run connects to the server and blocks reading user input until EOF, /quit,
// or context cancellation.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go a.router.Run(ctx)
	go a.dispatchCommands(ctx)

	if err := a.channel.Connect(ctx); err != nil {
		a.cleanup()
		return fmt.Errorf("connect: %w", err)
	}

	a.term.ShowLogin()
	a.term.ReadInput(ctx, os.Stdin, a.router.Actions)

	cancel()
	a.cleanup()
	return nil
}

// dispatchCommands fans router commands out to the transport that serves
// them: the roster pull goes over HTTP, everything else over the websocket.
func (a *App) dispatchCommands(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-a.router.Commands:
			switch cmd.Kind {
			case core.CommandFetchRoster:
				a.roster.Fetch(ctx)
			default:
				if err := a.channel.Write(ctx, cmd); err != nil {
					a.log.Warn().Err(err).Int("kind", int(cmd.Kind)).Msg("outbound command failed")
				}
			}
		}
	}
}

func (a *App) cleanup() {
	a.channel.Close()
	if a.arc != nil {
		if err := a.arc.Close(); err != nil {
			a.log.Warn().Err(err).Msg("failed to close archive")
		}
	}
}
