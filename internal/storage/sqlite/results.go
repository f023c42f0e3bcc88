package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ametov/pointhub/internal/models"
)

// AddResult persists a new classification result.
func (s *SQLiteStore) AddResult(ctx context.Context, result *models.Result) error {
	if result.ID == "" {
		result.ID = uuid.New().String()
	}
	if result.CreatedAt == 0 {
		result.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO results (id, owner_id, x, y, r, hit, execution_time_ns, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		result.ID,
		result.OwnerID,
		result.X,
		result.Y,
		result.R,
		result.Hit,
		result.ExecutionTimeNanos,
		result.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert result: %w", err)
	}

	return nil
}

// ListResultsByOwner returns the given user's results, most recent first.
// Rowid breaks ties between results stored in the same second.
func (s *SQLiteStore) ListResultsByOwner(ctx context.Context, ownerID string) ([]models.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, owner_id, x, y, r, hit, execution_time_ns, created_at
		 FROM results WHERE owner_id = ?
		 ORDER BY created_at DESC, rowid DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var r models.Result
		if err := rows.Scan(
			&r.ID,
			&r.OwnerID,
			&r.X,
			&r.Y,
			&r.R,
			&r.Hit,
			&r.ExecutionTimeNanos,
			&r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate results: %w", err)
	}

	return results, nil
}

// ClearResultsByOwner deletes all of the given user's results.
func (s *SQLiteStore) ClearResultsByOwner(ctx context.Context, ownerID string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM results WHERE owner_id = ?",
		ownerID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to clear results: %w", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared results: %w", err)
	}

	return deleted, nil
}
