package commands

import (
	"context"
	"errors"
	"flag"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/subcommands"
	"github.com/homeledger/backend/internal/clock"
	v1 "github.com/homeledger/backend/internal/controllers/v1"
	"github.com/homeledger/backend/internal/ledger"
	"github.com/homeledger/backend/internal/models"
	"github.com/homeledger/backend/internal/router"
	"github.com/rs/zerolog/log"
)

type serveCmd struct {
	envFile string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the HTTP API" }
func (*serveCmd) Usage() string {
	return `serve [-env <file>]

  Serves the HTTP API on the configured port until it receives SIGINT
  or SIGTERM.
`
}

func (s *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&s.envFile, "env", "", "Read environment variables from this file instead of .env")
}

func (s *serveCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	cfg, err := setup(envFiles(s.envFile)...)
	if err != nil {
		log.Error().Err(err).Msg("Startup failed")
		return subcommands.ExitFailure
	}
	defer closeDB()

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Error().Err(err).Msg("Router setup failed")
		return subcommands.ExitFailure
	}

	router.AttachRoutes(v1.Controller{
		Ledger:   ledger.New(models.DB, clock.System{Location: cfg.Timezone}),
		Currency: cfg.Currency,
		Locale:   cfg.Locale,
	}, r.Group(cfg.APIURL.Path))

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info().Str("address", server.Addr).Msg("Backend startup complete")
		errs <- server.ListenAndServe()
	}()

	select {
	case err := <-errs:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server failed")
			return subcommands.ExitFailure
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func envFiles(file string) []string {
	if file == "" {
		return nil
	}
	return []string{file}
}
