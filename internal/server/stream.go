package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ametov/pointhub/internal/broadcast"
)

// heartbeatInterval paces SSE comment lines that keep idle connections from
// being reaped by intermediaries.
const heartbeatInterval = 15 * time.Second

// StreamHandler serves GET /points/stream as a long-lived Server-Sent Events
// connection. Each connection subscribes to the broadcast hub and relays
// events until the client disconnects or the hub closes the listener.
type StreamHandler struct {
	hub    *broadcast.Hub
	logger *slog.Logger
}

// NewStreamHandler creates the stream endpoint handler.
func NewStreamHandler(hub *broadcast.Hub, logger *slog.Logger) *StreamHandler {
	return &StreamHandler{hub: hub, logger: logger}
}

func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	listener := h.hub.Subscribe()
	defer h.hub.Unsubscribe(listener)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	h.logger.Debug("Stream listener connected", "remote_addr", r.RemoteAddr)

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("Stream listener disconnected", "remote_addr", r.RemoteAddr)
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case ev, ok := <-listener.Events():
			if !ok {
				// Hub dropped us or shut down.
				return
			}
			if err := writeEvent(w, ev); err != nil {
				h.logger.Warn("Failed to write stream event", "error", err)
				return
			}
			flusher.Flush()
		}
	}
}

// writeEvent serializes one event in SSE wire format: add events carry the
// JSON result snapshot, clear events carry the bare username.
func writeEvent(w http.ResponseWriter, ev broadcast.Event) error {
	switch ev.Kind {
	case broadcast.EventAdded:
		data, err := json.Marshal(ev.Result)
		if err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
		_, err = fmt.Fprintf(w, "event: add\ndata: %s\n\n", data)
		return err
	case broadcast.EventCleared:
		_, err := fmt.Fprintf(w, "event: clear\ndata: %s\n\n", ev.Username)
		return err
	default:
		return fmt.Errorf("unknown event kind %q", ev.Kind)
	}
}
