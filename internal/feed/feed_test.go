package feed

import (
	"testing"

	"github.com/trackhabit/trackhabit/internal/models"
)

func TestComposeOrdersByDateDescending(t *testing.T) {
	habits := []models.Habit{
		{ID: 1, Name: "Read", XPValue: 10},
		{ID: 2, Name: "Run", XPValue: 20},
	}
	logs := []models.HabitLog{
		{HabitRefID: 1, CompletionDate: "2024-05-01"},
		{HabitRefID: 2, CompletionDate: "2024-05-03"},
		{HabitRefID: 1, CompletionDate: "2024-05-02"},
	}

	entries := Compose(logs, nil, habits, nil)
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3", len(entries))
	}

	wantDates := []string{"2024-05-03", "2024-05-02", "2024-05-01"}
	for i, want := range wantDates {
		if entries[i].Date != want {
			t.Errorf("entries[%d].Date = %q, want %q", i, entries[i].Date, want)
		}
	}
}

func TestComposeMergesHabitsAndRewards(t *testing.T) {
	habits := []models.Habit{{ID: 1, Name: "Read", XPValue: 10}}
	rewards := []models.Reward{{ID: 5, Name: "Coffee", XPCost: 5}}
	logs := []models.HabitLog{{HabitRefID: 1, CompletionDate: "2024-05-01"}}
	userRewards := []models.UserReward{{RewardRefID: 5, AcquisitionDate: "2024-05-02"}}

	entries := Compose(logs, userRewards, habits, rewards)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	if entries[0].Kind != KindReward || entries[0].Message != "Resgatou: Coffee" {
		t.Errorf("entries[0] = %+v, want reward redemption first", entries[0])
	}
	if entries[0].XPDelta != -5 {
		t.Errorf("reward delta = %d, want -5", entries[0].XPDelta)
	}
	if entries[1].Kind != KindHabit || entries[1].Message != "Concluiu: Read" {
		t.Errorf("entries[1] = %+v, want habit completion", entries[1])
	}
	if entries[1].XPDelta != 10 {
		t.Errorf("habit delta = %d, want 10", entries[1].XPDelta)
	}
}

func TestComposeUnresolvableReferences(t *testing.T) {
	logs := []models.HabitLog{{HabitRefID: 42, CompletionDate: "2024-05-01"}}
	userRewards := []models.UserReward{{RewardRefID: 42, AcquisitionDate: "2024-05-01"}}

	entries := Compose(logs, userRewards, nil, nil)
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	for _, e := range entries {
		if e.XPDelta != 0 {
			t.Errorf("unresolvable entry delta = %d, want 0", e.XPDelta)
		}
	}
	if entries[0].Message != "Concluiu: "+UnknownHabitLabel && entries[1].Message != "Concluiu: "+UnknownHabitLabel {
		t.Error("expected a placeholder habit entry")
	}
	if entries[0].Message != "Resgatou: "+UnknownRewardLabel && entries[1].Message != "Resgatou: "+UnknownRewardLabel {
		t.Error("expected a placeholder reward entry")
	}
}

func TestComposeFallsBackToNestedObject(t *testing.T) {
	// When the cached habit list misses the id, the log's own nested habit
	// object still resolves the label.
	logs := []models.HabitLog{{
		Habit:          &models.Habit{ID: 7, Name: "Meditate", XPValue: 15},
		CompletionDate: "2024-05-01",
	}}

	entries := Compose(logs, nil, nil, nil)
	if entries[0].Message != "Concluiu: Meditate" {
		t.Errorf("message = %q, want nested habit name", entries[0].Message)
	}
	if entries[0].XPDelta != 15 {
		t.Errorf("delta = %d, want 15", entries[0].XPDelta)
	}
}

func TestRecent(t *testing.T) {
	entries := make([]Entry, 12)
	if got := Recent(entries, 10); len(got) != 10 {
		t.Errorf("Recent(12, 10) = %d entries, want 10", len(got))
	}
	if got := Recent(entries[:3], 10); len(got) != 3 {
		t.Errorf("Recent(3, 10) = %d entries, want 3", len(got))
	}
}
