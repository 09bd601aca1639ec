package habitlist

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackhabit/trackhabit/internal/models"
)

type AddHabitMsg struct{}

type CompleteHabitMsg struct {
	ID int64
}

type EditHabitMsg struct {
	ID int64
}

type DeleteHabitMsg struct {
	ID int64
}

type Item struct {
	Habit     models.Habit
	InFlight  bool
	Completed bool
}

func (i Item) Title() string {
	switch {
	case i.InFlight:
		return "⏳ " + i.Habit.Name
	case i.Completed:
		return "✓ " + i.Habit.Name
	default:
		return "○ " + i.Habit.Name
	}
}

func (i Item) Description() string {
	desc := fmt.Sprintf("+%d XP", i.Habit.XPValue)
	if i.Habit.Streak > 0 {
		desc += fmt.Sprintf(" · ⚔️ %d", i.Habit.Streak)
	}
	if i.InFlight {
		return desc + " · completando..."
	}
	if i.Completed {
		return desc + " · concluído hoje"
	}
	return desc + " · não concluído hoje"
}

func (i Item) FilterValue() string { return i.Habit.Name }

type KeyMap struct {
	Add      key.Binding
	Complete key.Binding
	Edit     key.Binding
	Delete   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Complete: key.NewBinding(
			key.WithKeys("c", "enter"),
			key.WithHelp("c", "complete"),
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

func New(habits []models.Habit, completed func(models.Habit) bool, width, height int) Model {
	l := list.New(buildItems(habits, completed, nil), list.NewDefaultDelegate(), width, height)
	l.Title = "Hábitos"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Complete, keys.Edit, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func buildItems(habits []models.Habit, completed func(models.Habit) bool, inFlight map[int64]bool) []list.Item {
	items := make([]list.Item, len(habits))
	for i, h := range habits {
		items[i] = Item{
			Habit:     h,
			InFlight:  inFlight[h.ID],
			Completed: completed != nil && completed(h),
		}
	}
	return items
}

func (m *Model) SetHabits(habits []models.Habit, completed func(models.Habit) bool, inFlight map[int64]bool) {
	m.list.SetItems(buildItems(habits, completed, inFlight))
}

func (m Model) Selected() (models.Habit, bool) {
	if i, ok := m.list.SelectedItem().(Item); ok {
		return i.Habit, true
	}
	return models.Habit{}, false
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
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Complete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				if !i.InFlight && !i.Completed {
					return m, func() tea.Msg { return CompleteHabitMsg{ID: i.Habit.ID} }
				}
			}
		case key.Matches(msg, m.keys.Edit):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return EditHabitMsg{ID: i.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Habit.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Você ainda não tem hábitos.\n  Pressione 'a' para criar um."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
