package reset

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/trackhabit/trackhabit/internal/models"
	"github.com/trackhabit/trackhabit/internal/storage"
)

func newTestStore(t *testing.T) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "state.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return store
}

func TestCheckAndResetFirstRun(t *testing.T) {
	tracker := NewTracker(newTestStore(t))

	habits := []models.Habit{
		{ID: 1, CompletedToday: true},
		{ID: 2, CompletedToday: true},
	}

	now := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	didReset, err := tracker.CheckAndReset(1, habits, now)
	if err != nil {
		t.Fatalf("CheckAndReset: %v", err)
	}
	if !didReset {
		t.Error("first run with no marker should reset")
	}
	for _, h := range habits {
		if h.CompletedToday {
			t.Errorf("habit %d flag not cleared", h.ID)
		}
	}
}

func TestCheckAndResetDayRollover(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetLastReset(1, "2024-01-01"); err != nil {
		t.Fatalf("SetLastReset: %v", err)
	}
	tracker := NewTracker(store)

	habits := []models.Habit{{ID: 1, CompletedToday: true}}
	now := time.Date(2024, 1, 2, 0, 1, 0, 0, time.Local)

	didReset, err := tracker.CheckAndReset(1, habits, now)
	if err != nil {
		t.Fatalf("CheckAndReset: %v", err)
	}
	if !didReset {
		t.Error("marker from yesterday should trigger a reset")
	}
	if habits[0].CompletedToday {
		t.Error("completion flag not cleared")
	}

	marker, err := store.GetLastReset(1)
	if err != nil {
		t.Fatalf("GetLastReset: %v", err)
	}
	if marker != "2024-01-02" {
		t.Errorf("marker = %q, want 2024-01-02", marker)
	}
}

func TestCheckAndResetSameDayNoOp(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetLastReset(1, "2024-01-02"); err != nil {
		t.Fatalf("SetLastReset: %v", err)
	}
	tracker := NewTracker(store)

	habits := []models.Habit{{ID: 1, CompletedToday: true}}
	now := time.Date(2024, 1, 2, 23, 59, 0, 0, time.Local)

	didReset, err := tracker.CheckAndReset(1, habits, now)
	if err != nil {
		t.Fatalf("CheckAndReset: %v", err)
	}
	if didReset {
		t.Error("same-day check should not reset")
	}
	if !habits[0].CompletedToday {
		t.Error("completion flag should survive a same-day check")
	}
}

func TestCheckAndResetPerUserMarkers(t *testing.T) {
	store := newTestStore(t)
	if err := store.SetLastReset(1, "2024-01-02"); err != nil {
		t.Fatalf("SetLastReset: %v", err)
	}
	tracker := NewTracker(store)

	// User 2 has no marker, so it resets even though user 1 already did.
	now := time.Date(2024, 1, 2, 8, 0, 0, 0, time.Local)
	didReset, err := tracker.CheckAndReset(2, nil, now)
	if err != nil {
		t.Fatalf("CheckAndReset: %v", err)
	}
	if !didReset {
		t.Error("user 2 should reset independently of user 1")
	}
}
