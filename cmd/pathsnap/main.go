package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/pathsnap/pathsnap/internal/config"
	"github.com/pathsnap/pathsnap/internal/server"
)

func main() {
	// Optional .env for local development; deployments set PATHSNAP_*
	// variables directly.
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, log)
	log.Info().
		Str("port", cfg.Server.Port).
		Str("host", cfg.Snapshot.Host).
		Str("script", cfg.Snapshot.Script).
		Msg("starting pathsnap")
	if err := srv.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
