package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/trackhabit/trackhabit/internal/logger"
	"github.com/trackhabit/trackhabit/internal/models"
)

// RefreshHabits replaces the habit cache with the server's collection,
// preserving local same-day completion markings: the server's completion
// status can lag or omit today's state, so a habit locally marked done today
// stays done. A failed request degrades to an empty collection.
func (s *Session) RefreshHabits(ctx context.Context) {
	loaded, err := s.client.ListHabits(ctx, s.User.ID)
	if err != nil {
		logger.Error("failed to load habits", "error", err)
		s.Habits = nil
		return
	}

	today := s.today()
	for i := range loaded {
		for _, existing := range s.Habits {
			if existing.ID == loaded[i].ID && existing.CompletedToday && existing.LastCompletionDate == today {
				loaded[i].CompletedToday = true
				loaded[i].LastCompletionDate = today
				break
			}
		}
	}
	s.Habits = loaded
}

// RefreshHabitLogs replaces the completion log cache.
func (s *Session) RefreshHabitLogs(ctx context.Context) {
	logs, err := s.client.ListHabitLogs(ctx, s.User.ID)
	if err != nil {
		logger.Error("failed to load habit logs", "error", err)
		s.HabitLogs = nil
		return
	}
	s.HabitLogs = logs
}

// CreateHabit validates the fields client-side, issues the create call and
// appends the returned record to the cache.
func (s *Session) CreateHabit(ctx context.Context, name string, xpValue int) (models.Habit, error) {
	name = strings.TrimSpace(name)
	if name == "" || xpValue <= 0 {
		return models.Habit{}, fmt.Errorf("habit name and a positive XP value are required")
	}

	habit, err := s.client.CreateHabit(ctx, s.User.ID, name, xpValue)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to create habit: %w", err)
	}

	s.Habits = append(s.Habits, habit)
	s.runHooks()
	return habit, nil
}

// UpdateHabit edits a habit then triggers a full refresh to reconcile; no
// optimistic merge beyond the edited fields.
func (s *Session) UpdateHabit(ctx context.Context, habitID int64, name string, xpValue int) error {
	name = strings.TrimSpace(name)
	if name == "" || xpValue <= 0 {
		return fmt.Errorf("habit name and a positive XP value are required")
	}

	if _, err := s.client.UpdateHabit(ctx, habitID, name, xpValue); err != nil {
		return fmt.Errorf("failed to update habit: %w", err)
	}

	for i := range s.Habits {
		if s.Habits[i].ID == habitID {
			s.Habits[i].Name = name
			s.Habits[i].XPValue = xpValue
			break
		}
	}
	s.RefreshHabits(ctx)
	s.Notify.Push(fmt.Sprintf("Item %q atualizado com sucesso! ✏️", name))
	return nil
}

// DeleteHabit removes the habit from the local cache only. No server
// deletion call is issued; the record survives remotely.
func (s *Session) DeleteHabit(habitID int64) {
	for i, h := range s.Habits {
		if h.ID == habitID {
			s.Habits = append(s.Habits[:i], s.Habits[i+1:]...)
			s.Notify.Push(fmt.Sprintf("Hábito %q excluído! 🗑️", h.Name))
			return
		}
	}
}

// FindHabit looks up a cached habit by id.
func (s *Session) FindHabit(habitID int64) *models.Habit {
	for i := range s.Habits {
		if s.Habits[i].ID == habitID {
			return &s.Habits[i]
		}
	}
	return nil
}

// FindHabitByName looks up a cached habit by its exact name.
func (s *Session) FindHabitByName(name string) *models.Habit {
	for i := range s.Habits {
		if s.Habits[i].Name == name {
			return &s.Habits[i]
		}
	}
	return nil
}

// HabitDoneToday reports whether the habit with the given id already has a
// completion recorded for the current calendar day.
func (s *Session) HabitDoneToday(habitID int64) bool {
	habit := s.FindHabit(habitID)
	if habit == nil {
		return false
	}
	return s.completedToday(habit)
}

// completedToday reports whether the habit already has a completion for the
// current calendar day, checking both the log collection and the local flag.
func (s *Session) completedToday(habit *models.Habit) bool {
	today := s.today()
	for _, log := range s.HabitLogs {
		if log.HabitID() == habit.ID && log.CompletionDate == today {
			return true
		}
	}
	return habit.CompletedToday
}

// CompleteHabit runs the completion flow for a single habit. The per-habit
// in-flight marker rejects re-entrant attempts that would otherwise pass the
// guard while the first request is still on the wire. Completing an
// already-completed habit is not an error; it just emits the "already done"
// notification.
func (s *Session) CompleteHabit(ctx context.Context, habitID int64) error {
	habit := s.FindHabit(habitID)
	if habit == nil {
		return fmt.Errorf("habit not found: %d", habitID)
	}

	if s.completing[habitID] || s.completedToday(habit) {
		s.Notify.Push("Hábito já foi concluído hoje! ⏰")
		return nil
	}

	s.completing[habitID] = true
	defer delete(s.completing, habitID)

	logEntry, err := s.client.CompleteHabit(ctx, s.User.ID, habitID)
	if err != nil {
		s.Notify.Push(fmt.Sprintf("Erro ao completar hábito: %s", err))
		return fmt.Errorf("failed to complete habit: %w", err)
	}

	s.HabitLogs = append(s.HabitLogs, logEntry)
	habit.CompletedToday = true
	habit.LastCompletionDate = s.today()

	// The re-fetch is authoritative for XP and streak; when it fails the
	// habit's XP value is applied locally until the next sync.
	xpValue := habit.XPValue
	if err := s.RefreshUser(ctx); err != nil {
		logger.Warn("failed to refresh user after completion", "error", err)
		s.User.XP += xpValue
	}

	s.Notify.Push(fmt.Sprintf("Parabéns! +%d XP ganhos! 🎉", xpValue))
	s.runHooks()
	return nil
}
