package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeInternalError logs the real cause and responds with a generic message
// so storage details never leak to the caller.
func writeInternalError(w http.ResponseWriter, err error) {
	slog.Error("Internal error", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}
