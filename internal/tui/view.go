package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateHabits:
		content = docStyle.Render(m.habitList.View())
	case StateRewards:
		content = docStyle.Render(m.rewardList.View())
	case StateFeed:
		content = docStyle.Render(m.feedView.View())
	case StateAchievements:
		content = docStyle.Render(m.achievementsView.View())
	case StateAddHabit, StateEditHabit, StateAddReward, StateEditReward:
		content = docStyle.Render(m.form.View())
	case StateConfirmDeleteHabit:
		content = m.viewConfirmDelete("Remover este hábito da lista?")
	case StateConfirmDeleteReward:
		content = m.viewConfirmDelete("Remover esta recompensa da loja?")
	}

	var banner string
	if m.formError != "" {
		banner = errorStyle.Render("✗ " + m.formError)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewHeader(),
		m.viewTabs(),
		banner,
		content,
		m.viewNotification(),
		m.help.View(m),
	)
}

func (m Model) viewHeader() string {
	if m.session.User == nil {
		return statsStyle.Render("TrackHabit")
	}

	stats := m.session.Stats()
	header := statsStyle.Render(fmt.Sprintf(
		"%s · Nível %d · %d XP · 🔥 %d dias",
		m.session.User.Username, stats.Level, stats.XP, stats.Streak,
	))

	if !m.session.Client().Online() {
		header = lipgloss.JoinHorizontal(lipgloss.Top, header, offlineStyle.Render("⚠ offline"))
	}
	return header
}

func (m Model) viewTabs() string {
	var tabs []string
	tabTitles := []string{"Hábitos", "Loja", "Atividades", "Conquistas"}
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// viewNotification shows the newest notification entry, if any.
func (m Model) viewNotification() string {
	entries := m.session.Notify.Entries()
	if len(entries) == 0 {
		return ""
	}
	return notificationStyle.Render(entries[0].Message)
}

func (m Model) viewConfirmDelete(prompt string) string {
	return lipgloss.Place(m.width, m.height-6,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render(prompt),
			"Isso remove apenas a cópia local.",
			"",
			"[y] Sim",
			"[n] Não",
		),
	)
}
