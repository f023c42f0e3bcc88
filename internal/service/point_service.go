package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ametov/pointhub/internal/broadcast"
	"github.com/ametov/pointhub/internal/geometry"
	"github.com/ametov/pointhub/internal/models"
	"github.com/ametov/pointhub/internal/storage"
)

// PointService orchestrates a point submission: classify, persist, then
// broadcast. The broadcast only happens after the write committed; a
// persistence failure short-circuits before any event is published.
type PointService struct {
	store  storage.Store
	region geometry.Region
	hub    *broadcast.Hub
	logger *slog.Logger
}

// NewPointService creates a point service using the canonical region
// definition.
func NewPointService(store storage.Store, hub *broadcast.Hub, logger *slog.Logger) *PointService {
	return &PointService{
		store:  store,
		region: geometry.Canonical,
		hub:    hub,
		logger: logger,
	}
}

// Submit classifies (x, y, r) for the given user, stores the result, and
// publishes an add event carrying the stored snapshot. The returned snapshot
// is exactly what listeners receive.
func (s *PointService) Submit(ctx context.Context, owner *models.User, x, y, r float64) (*broadcast.ResultSnapshot, error) {
	start := time.Now()
	hit := s.region.Contains(x, y, r)
	elapsed := time.Since(start).Nanoseconds()

	result := &models.Result{
		OwnerID:            owner.ID,
		X:                  x,
		Y:                  y,
		R:                  r,
		Hit:                hit,
		ExecutionTimeNanos: elapsed,
	}
	if err := s.store.AddResult(ctx, result); err != nil {
		// Nothing was committed, so nothing is broadcast.
		return nil, fmt.Errorf("failed to store result: %w", err)
	}

	snapshot := snapshotOf(result, owner.Username)
	s.hub.Publish(broadcast.Added(snapshot))

	s.logger.Info("Point classified",
		"username", owner.Username,
		"x", x, "y", y, "r", r,
		"hit", hit,
	)
	return snapshot, nil
}

// List returns the caller's own results, most recent first.
func (s *PointService) List(ctx context.Context, owner *models.User) ([]*broadcast.ResultSnapshot, error) {
	results, err := s.store.ListResultsByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	snapshots := make([]*broadcast.ResultSnapshot, 0, len(results))
	for i := range results {
		snapshots = append(snapshots, snapshotOf(&results[i], owner.Username))
	}
	return snapshots, nil
}

// Clear deletes all of the caller's results and publishes a clear event.
func (s *PointService) Clear(ctx context.Context, owner *models.User) (int64, error) {
	deleted, err := s.store.ClearResultsByOwner(ctx, owner.ID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear results: %w", err)
	}

	s.hub.Publish(broadcast.Cleared(owner.Username))

	s.logger.Info("History cleared", "username", owner.Username, "deleted", deleted)
	return deleted, nil
}

func snapshotOf(result *models.Result, username string) *broadcast.ResultSnapshot {
	return &broadcast.ResultSnapshot{
		ID:                 result.ID,
		X:                  result.X,
		Y:                  result.Y,
		R:                  result.R,
		Hit:                result.Hit,
		ExecutionTimeNanos: result.ExecutionTimeNanos,
		CreatedAt:          result.CreatedAt,
		Username:           username,
	}
}
