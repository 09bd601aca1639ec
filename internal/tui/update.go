package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/trackhabit/trackhabit/internal/constants"
	"github.com/trackhabit/trackhabit/internal/logger"
	"github.com/trackhabit/trackhabit/internal/tui/components/feedview"
	"github.com/trackhabit/trackhabit/internal/tui/components/habitlist"
	"github.com/trackhabit/trackhabit/internal/tui/components/rewardlist"
)

// tickMsg drives the periodic day-rollover check and health probe.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(constants.ResetCheckInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := docStyle.GetFrameSize()
		listWidth := msg.Width - h
		listHeight := msg.Height - v - 6
		m.habitList.SetSize(listWidth, listHeight)
		m.rewardList.SetSize(listWidth, listHeight)
		m.feedView.SetSize(listWidth, listHeight)
		m.achievementsView.SetSize(listWidth, listHeight)
		return m, nil
	case tickMsg:
		ctx, cancel := opContext()
		if err := m.session.Client().Health(ctx); err != nil {
			logger.Debug("health probe failed", "error", err)
		}
		cancel()
		m.session.CheckDailyReset()
		m.syncComponents()
		return m, tickCmd()
	}

	switch m.state {
	case StateAddHabit, StateEditHabit:
		return m.updateHabitForm(msg)
	case StateAddReward, StateEditReward:
		return m.updateRewardForm(msg)
	case StateConfirmDeleteHabit, StateConfirmDeleteReward:
		return m.updateConfirm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok && !m.filtering() {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = m.nextState(1)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = m.nextState(-1)
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			ctx, cancel := opContext()
			m.session.LoadAll(ctx)
			cancel()
			m.session.CheckDailyReset()
			m.syncComponents()
			return m, nil
		case key.Matches(msg, m.keys.Export):
			if _, err := m.session.ExportToFile("."); err != nil {
				m.formError = err.Error()
			} else {
				m.formError = ""
				m.session.Notify.Push("Dados exportados com sucesso! 📦")
			}
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case habitlist.AddHabitMsg:
		m.habitForm = &HabitFormModel{}
		m.form = newHabitForm(m.habitForm)
		m.previousState = m.state
		m.state = StateAddHabit
		return m, m.form.Init()
	case habitlist.EditHabitMsg:
		habit := m.session.FindHabit(msg.ID)
		if habit == nil {
			return m, nil
		}
		m.habitForm = &HabitFormModel{
			Name:    habit.Name,
			XPValue: strconv.Itoa(habit.XPValue),
		}
		m.form = newHabitForm(m.habitForm)
		m.editingHabitID = msg.ID
		m.previousState = m.state
		m.state = StateEditHabit
		return m, m.form.Init()
	case habitlist.CompleteHabitMsg:
		ctx, cancel := opContext()
		if err := m.session.CompleteHabit(ctx, msg.ID); err != nil {
			logger.Warn("habit completion failed", "id", msg.ID, "error", err)
		}
		cancel()
		m.syncComponents()
		return m, nil
	case habitlist.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDeleteHabit
		return m, nil
	case rewardlist.AddRewardMsg:
		m.rewardForm = &RewardFormModel{}
		m.form = newRewardForm(m.rewardForm)
		m.previousState = m.state
		m.state = StateAddReward
		return m, m.form.Init()
	case rewardlist.EditRewardMsg:
		reward := m.session.FindReward(msg.ID)
		if reward == nil {
			return m, nil
		}
		m.rewardForm = &RewardFormModel{
			Name:        reward.Name,
			Description: reward.Description,
			XPCost:      strconv.Itoa(reward.XPCost),
		}
		m.form = newRewardForm(m.rewardForm)
		m.editingRewardID = msg.ID
		m.previousState = m.state
		m.state = StateEditReward
		return m, m.form.Init()
	case rewardlist.RedeemRewardMsg:
		ctx, cancel := opContext()
		if err := m.session.RedeemReward(ctx, msg.ID); err != nil {
			m.formError = err.Error()
		} else {
			m.formError = ""
		}
		cancel()
		m.syncComponents()
		return m, nil
	case rewardlist.DeleteRewardMsg:
		m.rewardToDeleteID = msg.ID
		m.previousState = m.state
		m.state = StateConfirmDeleteReward
		return m, nil
	case feedview.ToggleAllMsg:
		m.syncComponents()
		return m, nil
	}

	switch m.state {
	case StateHabits:
		var cmd tea.Cmd
		m.habitList, cmd = m.habitList.Update(msg)
		cmds = append(cmds, cmd)
	case StateRewards:
		var cmd tea.Cmd
		m.rewardList, cmd = m.rewardList.Update(msg)
		cmds = append(cmds, cmd)
	case StateFeed:
		var cmd tea.Cmd
		m.feedView, cmd = m.feedView.Update(msg)
		cmds = append(cmds, cmd)
	case StateAchievements:
		var cmd tea.Cmd
		m.achievementsView, cmd = m.achievementsView.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) nextState(dir int) SessionState {
	views := []SessionState{StateHabits, StateRewards, StateFeed, StateAchievements}
	for i, v := range views {
		if v == m.state {
			return views[(i+dir+len(views))%len(views)]
		}
	}
	return m.state
}

func (m Model) filtering() bool {
	switch m.state {
	case StateHabits:
		return m.habitList.Filtering()
	case StateRewards:
		return m.rewardList.Filtering()
	case StateFeed:
		return m.feedView.Filtering()
	case StateAchievements:
		return m.achievementsView.Filtering()
	}
	return false
}

func (m Model) updateHabitForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		name := strings.TrimSpace(m.habitForm.Name)
		xpValue, err := strconv.Atoi(strings.TrimSpace(m.habitForm.XPValue))
		if err != nil {
			m.formError = "invalid XP value"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		ctx, cancel := opContext()
		defer cancel()
		if m.state == StateEditHabit {
			err = m.session.UpdateHabit(ctx, m.editingHabitID, name, xpValue)
		} else {
			_, err = m.session.CreateHabit(ctx, name, xpValue)
		}
		if err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.formError = ""
		m.syncComponents()
		m.state = m.previousState
	case huh.StateAborted:
		m.formError = ""
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateRewardForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.formError = ""
		m.state = m.previousState
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	cmds = append(cmds, cmd)

	switch m.form.State {
	case huh.StateCompleted:
		name := strings.TrimSpace(m.rewardForm.Name)
		description := strings.TrimSpace(m.rewardForm.Description)
		xpCost, err := strconv.Atoi(strings.TrimSpace(m.rewardForm.XPCost))
		if err != nil {
			m.formError = "invalid XP cost"
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		ctx, cancel := opContext()
		defer cancel()
		if m.state == StateEditReward {
			err = m.session.UpdateReward(ctx, m.editingRewardID, name, xpCost, description)
		} else {
			_, err = m.session.CreateReward(ctx, name, xpCost, description)
		}
		if err != nil {
			m.formError = err.Error()
			m.form.State = huh.StateNormal
			return m, tea.Batch(cmds...)
		}

		m.formError = ""
		m.syncComponents()
		m.state = m.previousState
	case huh.StateAborted:
		m.formError = ""
		m.state = m.previousState
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "Y":
		if m.state == StateConfirmDeleteHabit {
			m.session.DeleteHabit(m.habitToDeleteID)
			m.habitToDeleteID = 0
		} else {
			m.session.DeleteReward(m.rewardToDeleteID)
			m.rewardToDeleteID = 0
		}
		m.syncComponents()
		m.state = m.previousState
	case "n", "N", "q", "esc":
		m.habitToDeleteID = 0
		m.rewardToDeleteID = 0
		m.state = m.previousState
	}
	return m, nil
}
