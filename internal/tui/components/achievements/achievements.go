package achievements

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

type Item struct {
	Message string
}

func (i Item) Title() string       { return "★ " + i.Message }
func (i Item) Description() string { return "" }
func (i Item) FilterValue() string { return i.Message }

type Model struct {
	list list.Model
}

func New(width, height int) Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(nil, delegate, width, height)
	l.Title = "Conquistas"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	return Model{list: l}
}

func (m *Model) SetAchievements(messages []string) {
	items := make([]list.Item, len(messages))
	for i, msg := range messages {
		items[i] = Item{Message: msg}
	}
	m.list.SetItems(items)
}

// Filtering reports whether the list's fuzzy filter input is active.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nenhuma conquista desbloqueada ainda.\n  Continue firme nos seus hábitos!"
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
