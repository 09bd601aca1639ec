package rewardlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackhabit/trackhabit/internal/models"
)

type AddRewardMsg struct{}

type RedeemRewardMsg struct {
	ID int64
}

type EditRewardMsg struct {
	ID int64
}

type DeleteRewardMsg struct {
	ID int64
}

type Item struct {
	Reward     models.Reward
	Owned      bool
	Affordable bool
}

func (i Item) Title() string {
	if i.Owned {
		return "🏆 " + i.Reward.Name
	}
	return i.Reward.Name
}

func (i Item) Description() string {
	desc := fmt.Sprintf("-%d XP", i.Reward.XPCost)
	if i.Reward.Description != "" {
		desc += " · " + i.Reward.Description
	}
	switch {
	case i.Owned:
		return desc + " · adquirido"
	case !i.Affordable:
		return desc + " · XP insuficiente"
	default:
		return desc
	}
}

func (i Item) FilterValue() string { return i.Reward.Name }

type KeyMap struct {
	Add    key.Binding
	Redeem key.Binding
	Edit   key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Redeem: key.NewBinding(
			key.WithKeys("r", "enter"),
			key.WithHelp("r", "redeem"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Loja"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Redeem, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetRewards(rewards []models.Reward, owned func(int64) bool, xp int) {
	items := make([]list.Item, len(rewards))
	for i, r := range rewards {
		items[i] = Item{
			Reward:     r,
			Owned:      owned != nil && owned(r.ID),
			Affordable: xp >= r.XPCost,
		}
	}
	m.list.SetItems(items)
}

// Filtering reports whether the list's fuzzy filter input is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddRewardMsg{} }
		case key.Matches(msg, m.keys.Redeem):
			if i, ok := m.list.SelectedItem().(Item); ok && !i.Owned {
				return m, func() tea.Msg { return RedeemRewardMsg{ID: i.Reward.ID} }
			}
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditRewardMsg{ID: i.Reward.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteRewardMsg{ID: i.Reward.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  A loja está vazia.\n  Pressione 'a' para criar uma recompensa."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
