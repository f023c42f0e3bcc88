package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ametov/pointhub/internal/auth"
	"github.com/ametov/pointhub/internal/broadcast"
	"github.com/ametov/pointhub/internal/config"
	"github.com/ametov/pointhub/internal/server"
	"github.com/ametov/pointhub/internal/service"
	"github.com/ametov/pointhub/internal/storage/sqlite"
	"github.com/ametov/pointhub/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	hub := broadcast.Default()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, auth.TokenTTL, slog.Default())
	authenticator := auth.NewPasswordAuthenticator(store)

	authService := service.NewAuthService(authenticator, jwtManager, slog.Default())
	pointService := service.NewPointService(store, hub, slog.Default())

	handler := server.NewRouter(authService, pointService, jwtManager, store, hub, slog.Default())
	srv := server.New(cfg.HTTPAddr, handler, slog.Default())

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	// Close stream listeners first so Shutdown is not stuck waiting on
	// long-lived SSE connections.
	hub.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Shutdown error", "error", err)
	}
}
