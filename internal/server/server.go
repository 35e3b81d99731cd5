// Package server wires the configuration, the snapshot pipeline and the blob
// store into the Echo application.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/pathsnap/pathsnap/internal/config"
	"github.com/pathsnap/pathsnap/internal/handler"
	"github.com/pathsnap/pathsnap/internal/runner"
	"github.com/pathsnap/pathsnap/internal/snapshot"
	"github.com/pathsnap/pathsnap/internal/storage"
)

// Server holds the Echo app and dependencies.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config
	Log    zerolog.Logger
}

// New builds the Echo server and registers routes. Storage is optional: when
// the config section is incomplete the upload handler reports the missing
// variable instead.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover(), middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	svc := &snapshot.Service{
		Runner: &runner.Runner{Timeout: runner.DefaultTimeout},
		Script: cfg.Snapshot.Script,
		Dir:    cfg.Snapshot.Dir,
		Host:   cfg.Snapshot.Host,
		Log:    log,
	}

	var store handler.BlobStore
	client, err := storage.New(cfg.Storage)
	if err != nil {
		log.Warn().Err(err).Msg("storage client unavailable")
	}
	if client != nil {
		if err := client.EnsureBucket(context.Background()); err != nil {
			log.Warn().Err(err).Msg("ensure bucket failed, upload may fail")
		}
		store = client
	}

	h := &handler.PathHandler{
		Settings:  cfg,
		Snapshots: svc,
		Store:     store,
		Log:       log,
	}

	e.GET("/health", h.Health)
	e.GET("/show-path", h.ShowPath)
	e.GET("/upload-data", h.UploadData)
	e.GET("/favicon.ico", h.Favicon)

	e.Server.ReadTimeout = time.Duration(cfg.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.Server.WriteTimeout) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.Server.IdleTimeout) * time.Second

	return &Server{Echo: e, Config: cfg, Log: log}
}

// Start runs the HTTP server. Blocks until the context is cancelled or the
// server fails; on cancel, Shutdown drains in-flight requests.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		_ = s.Shutdown(context.Background())
	}()
	err := s.Echo.Start(":" + s.Config.Server.Port)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}
