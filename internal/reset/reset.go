// Package reset clears per-habit "completed today" flags when the calendar
// day rolls over. This is a local-only operation: the server keeps its own
// day boundary and may disagree until the next full refresh.
package reset

import (
	"time"

	"github.com/trackhabit/trackhabit/internal/constants"
	"github.com/trackhabit/trackhabit/internal/models"
	"github.com/trackhabit/trackhabit/internal/storage"
)

// Tracker compares the persisted last-reset day against the current date.
type Tracker struct {
	store storage.Provider
}

func NewTracker(store storage.Provider) *Tracker {
	return &Tracker{store: store}
}

// CheckAndReset clears every habit's completion flag and advances the marker
// when now falls on a different calendar day (local timezone) than the
// stored marker. Returns true when a reset happened, so the caller can emit
// the new-day notification. Runs at login and on a periodic tick.
func (t *Tracker) CheckAndReset(userID int64, habits []models.Habit, now time.Time) (bool, error) {
	today := now.Format(constants.DateFormat)

	lastReset, err := t.store.GetLastReset(userID)
	if err != nil {
		return false, err
	}
	if lastReset == today {
		return false, nil
	}

	for i := range habits {
		habits[i].CompletedToday = false
	}

	if err := t.store.SetLastReset(userID, today); err != nil {
		return false, err
	}

	return true, nil
}
