package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Server wraps http.Server with sane timeouts and graceful shutdown.
// WriteTimeout stays unset because the SSE stream holds its connection open
// indefinitely; slow stream consumers are handled by the hub's drop policy
// instead.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// New creates a server listening on addr.
func New(addr string, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:        addr,
			Handler:     handler,
			ReadTimeout: 15 * time.Second,
			IdleTimeout: 60 * time.Second,
		},
		logger: logger,
	}
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("HTTP server starting", "addr", s.server.Addr)
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")
	return s.server.Shutdown(ctx)
}
