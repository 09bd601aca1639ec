package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/trackhabit/trackhabit/internal/models"
	"github.com/trackhabit/trackhabit/internal/session"
	"github.com/trackhabit/trackhabit/internal/tui/components/achievements"
	"github.com/trackhabit/trackhabit/internal/tui/components/feedview"
	"github.com/trackhabit/trackhabit/internal/tui/components/habitlist"
	"github.com/trackhabit/trackhabit/internal/tui/components/rewardlist"
)

// SessionState represents the current view of the TUI application.
type SessionState int

const (
	StateHabits SessionState = iota
	StateRewards
	StateFeed
	StateAchievements
	StateAddHabit
	StateEditHabit
	StateAddReward
	StateEditReward
	StateConfirmDeleteHabit
	StateConfirmDeleteReward
)

type HabitFormModel struct {
	Name    string
	XPValue string
}

type RewardFormModel struct {
	Name        string
	Description string
	XPCost      string
}

type Model struct {
	session       *session.Session
	state         SessionState
	previousState SessionState
	keys          KeyMap
	help          help.Model

	habitList        habitlist.Model
	rewardList       rewardlist.Model
	feedView         feedview.Model
	achievementsView achievements.Model

	form       *huh.Form
	habitForm  *HabitFormModel
	rewardForm *RewardFormModel

	editingHabitID   int64
	editingRewardID  int64
	habitToDeleteID  int64
	rewardToDeleteID int64

	formError string
	quitting  bool
	width     int
	height    int
}

func NewModel(sess *session.Session) Model {
	m := Model{
		session:          sess,
		state:            StateHabits,
		keys:             DefaultKeyMap(),
		help:             help.New(),
		habitList:        habitlist.New(sess.Habits, nil, 0, 0),
		rewardList:       rewardlist.New(0, 0),
		feedView:         feedview.New(0, 0),
		achievementsView: achievements.New(0, 0),
	}
	m.syncComponents()
	return m
}

// syncComponents pushes the session's current collections into the view
// components. Called after every mutating operation.
func (m *Model) syncComponents() {
	s := m.session

	m.habitList.SetHabits(s.Habits, func(h models.Habit) bool {
		return s.HabitDoneToday(h.ID)
	}, nil)

	xp := 0
	if s.User != nil {
		xp = s.User.XP
	}
	m.rewardList.SetRewards(s.Rewards, s.Owned, xp)

	if m.feedView.ShowAll {
		m.feedView.SetEntries(s.Feed())
	} else {
		m.feedView.SetEntries(s.RecentFeed())
	}

	messages := make([]string, len(s.Achievements))
	for i, a := range s.Achievements {
		messages[i] = a.Message
	}
	m.achievementsView.SetAchievements(messages)
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	switch m.state {
	case StateHabits, StateRewards:
		keys = append(keys, m.keys.Refresh, m.keys.Export)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Enter}
	actions := []key.Binding{m.keys.Refresh, m.keys.Export}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}
