// Package feed merges habit completions and reward redemptions into a single
// chronological activity feed.
package feed

import (
	"fmt"
	"sort"

	"github.com/trackhabit/trackhabit/internal/models"
)

type Kind string

const (
	KindHabit  Kind = "habit"
	KindReward Kind = "reward"
)

// Placeholder labels for entries whose habit or reward can no longer be
// resolved. The entry stays in the feed with a zero XP delta.
const (
	UnknownHabitLabel  = "Hábito desconhecido"
	UnknownRewardLabel = "Recompensa desconhecida"
)

// Entry is one feed row. XPDelta is positive for habit completions and
// negative for reward redemptions.
type Entry struct {
	Date    string `json:"date"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	XPDelta int    `json:"xpDelta"`
}

// Compose builds the full feed from the cached collections, sorted by date
// descending. The sort is stable, so entries sharing a date keep their
// original relative order. Lookup misses degrade to placeholder labels
// rather than failing the whole composition.
func Compose(logs []models.HabitLog, userRewards []models.UserReward, habits []models.Habit, rewards []models.Reward) []Entry {
	entries := make([]Entry, 0, len(logs)+len(userRewards))

	for _, log := range logs {
		habit := findHabit(habits, log.HabitID())
		if habit == nil {
			habit = log.Habit
		}

		entry := Entry{
			Date:    log.CompletionDate,
			Kind:    KindHabit,
			Message: fmt.Sprintf("Concluiu: %s", UnknownHabitLabel),
		}
		if habit != nil {
			entry.Message = fmt.Sprintf("Concluiu: %s", habit.Name)
			entry.XPDelta = habit.XPValue
		}
		entries = append(entries, entry)
	}

	for _, ur := range userRewards {
		reward := findReward(rewards, ur.RewardID())
		if reward == nil {
			reward = ur.Reward
		}

		entry := Entry{
			Date:    ur.AcquisitionDate,
			Kind:    KindReward,
			Message: fmt.Sprintf("Resgatou: %s", UnknownRewardLabel),
		}
		if reward != nil {
			entry.Message = fmt.Sprintf("Resgatou: %s", reward.Name)
			entry.XPDelta = -reward.XPCost
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries
}

// Recent returns the first n entries of an already composed feed.
func Recent(entries []Entry, n int) []Entry {
	if len(entries) <= n {
		return entries
	}
	return entries[:n]
}

func findHabit(habits []models.Habit, id int64) *models.Habit {
	for i := range habits {
		if habits[i].ID == id {
			return &habits[i]
		}
	}
	return nil
}

func findReward(rewards []models.Reward, id int64) *models.Reward {
	for i := range rewards {
		if rewards[i].ID == id {
			return &rewards[i]
		}
	}
	return nil
}
