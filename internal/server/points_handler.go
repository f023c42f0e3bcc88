package server

import (
	"encoding/json"
	"net/http"

	"github.com/ametov/pointhub/internal/middleware"
	"github.com/ametov/pointhub/internal/service"
)

// PointsHandler exposes point submission, history listing, and history
// clearing. Every method expects an authenticated user in the request
// context (set by middleware.RequireAuth).
type PointsHandler struct {
	points *service.PointService
}

// NewPointsHandler creates the points endpoints handler.
func NewPointsHandler(pointService *service.PointService) *PointsHandler {
	return &PointsHandler{points: pointService}
}

// pointRequest uses pointers so an absent coordinate is distinguishable from
// a zero one.
type pointRequest struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	R *float64 `json:"r"`
}

// Submit handles POST /points.
func (h *PointsHandler) Submit(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var req pointRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.X == nil || req.Y == nil || req.R == nil {
		writeError(w, http.StatusBadRequest, "coordinates x, y, r are required")
		return
	}

	snapshot, err := h.points.Submit(r.Context(), user, *req.X, *req.Y, *req.R)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

// List handles GET /points.
func (h *PointsHandler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	snapshots, err := h.points.List(r.Context(), user)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, snapshots)
}

// Clear handles DELETE /points.
func (h *PointsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	deleted, err := h.points.Clear(r.Context(), user)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}
