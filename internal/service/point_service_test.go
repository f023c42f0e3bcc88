package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/ametov/pointhub/internal/broadcast"
	"github.com/ametov/pointhub/internal/models"
)

// stubStore implements storage.Store in memory, with optional injected
// failures.
type stubStore struct {
	results   []models.Result
	failAdd   error
	failClear error
}

func (s *stubStore) CreateUser(ctx context.Context, user *models.User) error { return nil }

func (s *stubStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, nil
}

func (s *stubStore) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return nil, nil
}

func (s *stubStore) AddResult(ctx context.Context, result *models.Result) error {
	if s.failAdd != nil {
		return s.failAdd
	}
	result.ID = "result-1"
	result.CreatedAt = time.Now().Unix()
	s.results = append(s.results, *result)
	return nil
}

func (s *stubStore) ListResultsByOwner(ctx context.Context, ownerID string) ([]models.Result, error) {
	var out []models.Result
	for i := len(s.results) - 1; i >= 0; i-- {
		if s.results[i].OwnerID == ownerID {
			out = append(out, s.results[i])
		}
	}
	return out, nil
}

func (s *stubStore) ClearResultsByOwner(ctx context.Context, ownerID string) (int64, error) {
	if s.failClear != nil {
		return 0, s.failClear
	}
	var kept []models.Result
	var deleted int64
	for _, r := range s.results {
		if r.OwnerID == ownerID {
			deleted++
			continue
		}
		kept = append(kept, r)
	}
	s.results = kept
	return deleted, nil
}

func (s *stubStore) Close() error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(store *stubStore) (*PointService, *broadcast.Hub) {
	hub := broadcast.New(testLogger())
	return NewPointService(store, hub, testLogger()), hub
}

func TestSubmitPersistsAndBroadcasts(t *testing.T) {
	svc, hub := newTestService(&stubStore{})
	listener := hub.Subscribe()
	owner := &models.User{ID: "u1", Username: "alice"}

	snapshot, err := svc.Submit(context.Background(), owner, 0, 0, 4)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !snapshot.Hit {
		t.Error("Expected (0, 0, 4) to be a hit")
	}
	if snapshot.ExecutionTimeNanos < 0 {
		t.Errorf("Execution time %d is negative", snapshot.ExecutionTimeNanos)
	}
	if snapshot.Username != "alice" {
		t.Errorf("Snapshot username = %q, want alice", snapshot.Username)
	}

	select {
	case ev := <-listener.Events():
		if ev.Kind != broadcast.EventAdded {
			t.Fatalf("Event kind = %q, want %q", ev.Kind, broadcast.EventAdded)
		}
		got := ev.Result
		if got.X != 0 || got.Y != 0 || got.R != 4 || !got.Hit {
			t.Errorf("Broadcast carried (%v, %v, %v, hit=%v), want (0, 0, 4, true)",
				got.X, got.Y, got.R, got.Hit)
		}
		if got.Username != "alice" {
			t.Errorf("Broadcast username = %q, want alice", got.Username)
		}
	case <-time.After(time.Second):
		t.Fatal("No add event was broadcast")
	}
}

func TestSubmitStoreFailureSkipsBroadcast(t *testing.T) {
	boom := errors.New("disk full")
	svc, hub := newTestService(&stubStore{failAdd: boom})
	listener := hub.Subscribe()
	owner := &models.User{ID: "u1", Username: "alice"}

	if _, err := svc.Submit(context.Background(), owner, 1, 1, 4); !errors.Is(err, boom) {
		t.Fatalf("Submit error = %v, want wrapped %v", err, boom)
	}

	select {
	case ev := <-listener.Events():
		t.Fatalf("Broadcast happened for an uncommitted write: %+v", ev)
	default:
	}
}

func TestListReturnsOwnResultsNewestFirst(t *testing.T) {
	store := &stubStore{}
	svc, _ := newTestService(store)
	alice := &models.User{ID: "u1", Username: "alice"}
	bob := &models.User{ID: "u2", Username: "bob"}

	ctx := context.Background()
	if _, err := svc.Submit(ctx, alice, 0, 0, 4); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := svc.Submit(ctx, bob, -1, 2, 4); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if _, err := svc.Submit(ctx, alice, 3, 3, 4); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	results, err := svc.List(ctx, alice)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Got %d results, want 2", len(results))
	}
	if results[0].X != 3 {
		t.Errorf("First result x = %v, want the newest submission (3)", results[0].X)
	}
	for _, r := range results {
		if r.Username != "alice" {
			t.Errorf("Result username = %q, want alice", r.Username)
		}
	}
}

func TestClearBroadcastsUsername(t *testing.T) {
	store := &stubStore{}
	svc, hub := newTestService(store)
	owner := &models.User{ID: "u1", Username: "alice"}
	ctx := context.Background()

	if _, err := svc.Submit(ctx, owner, 0, 0, 4); err != nil {
		t.Fatalf("Submit failed: %v", err)
	}

	listener := hub.Subscribe()
	deleted, err := svc.Clear(ctx, owner)
	if err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Clear deleted %d, want 1", deleted)
	}

	select {
	case ev := <-listener.Events():
		if ev.Kind != broadcast.EventCleared || ev.Username != "alice" {
			t.Errorf("Got %+v, want clear event for alice", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("No clear event was broadcast")
	}
}

func TestClearStoreFailureSkipsBroadcast(t *testing.T) {
	boom := errors.New("locked")
	svc, hub := newTestService(&stubStore{failClear: boom})
	listener := hub.Subscribe()
	owner := &models.User{ID: "u1", Username: "alice"}

	if _, err := svc.Clear(context.Background(), owner); !errors.Is(err, boom) {
		t.Fatalf("Clear error = %v, want wrapped %v", err, boom)
	}

	select {
	case ev := <-listener.Events():
		t.Fatalf("Broadcast happened for a failed clear: %+v", ev)
	default:
	}
}
