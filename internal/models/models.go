package models

import "github.com/trackhabit/trackhabit/internal/constants"

// User is the authenticated account record as the backend returns it.
// XP and Streak use the backend's wire names (xpAcumulado, diasOfensiva).
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	XP       int    `json:"xpAcumulado"`
	Streak   int    `json:"diasOfensiva"`
	Level    int    `json:"nivel,omitempty"`
}

// Habit is a tracked habit plus the client's local same-day completion
// marking. CompletedToday and LastCompletionDate are maintained locally and
// survive a refresh when they refer to the current calendar day, because the
// server's same-day completion status can lag behind.
type Habit struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	XPValue            int    `json:"xpValue"`
	Streak             int    `json:"ofensiva,omitempty"`
	CompletedToday     bool   `json:"completedToday,omitempty"`
	LastCompletionDate string `json:"lastCompletionDate,omitempty"`
}

// HabitLog is one completion record, calendar-day granularity. The backend
// returns either a nested habit object or a bare habitId depending on the
// endpoint.
type HabitLog struct {
	ID             int64  `json:"id"`
	Habit          *Habit `json:"habit,omitempty"`
	HabitRefID     int64  `json:"habitId,omitempty"`
	CompletionDate string `json:"completionDate"`
}

// HabitID resolves the referenced habit from whichever field the backend
// populated.
func (l HabitLog) HabitID() int64 {
	if l.Habit != nil {
		return l.Habit.ID
	}
	return l.HabitRefID
}

// Reward is a store item purchasable with XP.
type Reward struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	XPCost      int    `json:"xpCost"`
	Description string `json:"description"`
}

// UserReward is a redemption record. Like HabitLog, the reward reference
// arrives in one of several shapes.
type UserReward struct {
	ID              int64   `json:"id"`
	Reward          *Reward `json:"reward,omitempty"`
	RewardRefID     int64   `json:"rewardId,omitempty"`
	AltRewardRefID  int64   `json:"reward_id,omitempty"`
	AcquisitionDate string  `json:"acquisitionDate"`
}

// RewardID resolves the referenced reward id, trying the flat id, the nested
// object, then the snake_case fallback.
func (ur UserReward) RewardID() int64 {
	if ur.RewardRefID != 0 {
		return ur.RewardRefID
	}
	if ur.Reward != nil {
		return ur.Reward.ID
	}
	return ur.AltRewardRefID
}

// Achievement is a persisted notification message.
type Achievement struct {
	ID      int64  `json:"id,omitempty"`
	Message string `json:"message"`
}

// CalculateLevel derives the level from accumulated XP: levels span 100 XP,
// so 0–99 XP is level 1, 100–199 is level 2, and so on.
func CalculateLevel(xp int) int {
	if xp < 0 {
		return 1
	}
	return xp/constants.XPPerLevel + 1
}

// LevelProgress returns how far into the current level the user is, as a
// percentage in [0, 100).
func LevelProgress(xp int) float64 {
	if xp < 0 {
		return 0
	}
	return float64(xp%constants.XPPerLevel) / constants.XPPerLevel * 100
}

// ExportBundle is the on-demand export artifact: a snapshot of every cached
// collection plus the moment it was taken.
type ExportBundle struct {
	User        User         `json:"user"`
	Habits      []Habit      `json:"habits"`
	Rewards     []Reward     `json:"rewards"`
	HabitLogs   []HabitLog   `json:"habitLogs"`
	UserRewards []UserReward `json:"userRewards"`
	ExportDate  string       `json:"exportDate"`
}
