// Package server wires the HTTP surface: REST endpoints for auth and points,
// the SSE stream, health, and metrics.
package server

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ametov/pointhub/internal/auth"
	"github.com/ametov/pointhub/internal/broadcast"
	"github.com/ametov/pointhub/internal/middleware"
	"github.com/ametov/pointhub/internal/service"
)

// NewRouter assembles the full request handler.
func NewRouter(
	authService *service.AuthService,
	pointService *service.PointService,
	jwtManager *auth.JWTManager,
	users auth.UserStorage,
	hub *broadcast.Hub,
	logger *slog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	authHandler := NewAuthHandler(authService)
	mux.HandleFunc("POST /auth/register", authHandler.Register)
	mux.HandleFunc("POST /auth/login", authHandler.Login)

	secured := middleware.RequireAuth(jwtManager, users)
	pointsHandler := NewPointsHandler(pointService)
	mux.Handle("GET /points", secured(http.HandlerFunc(pointsHandler.List)))
	mux.Handle("POST /points", secured(http.HandlerFunc(pointsHandler.Submit)))
	mux.Handle("DELETE /points", secured(http.HandlerFunc(pointsHandler.Clear)))

	// The stream is deliberately unauthenticated: listeners only observe
	// what the UI renders publicly.
	mux.Handle("GET /points/stream", NewStreamHandler(hub, logger))

	return middleware.Logging(middleware.CORS(mux))
}
