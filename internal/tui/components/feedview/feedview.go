package feedview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackhabit/trackhabit/internal/feed"
)

type ToggleAllMsg struct{}

type Item struct {
	Entry feed.Entry
}

func (i Item) Title() string {
	if i.Entry.Kind == feed.KindReward {
		return "🏆 " + i.Entry.Message
	}
	return "✅ " + i.Entry.Message
}

func (i Item) Description() string {
	if i.Entry.XPDelta >= 0 {
		return fmt.Sprintf("%s · +%d XP", i.Entry.Date, i.Entry.XPDelta)
	}
	return fmt.Sprintf("%s · %d XP", i.Entry.Date, i.Entry.XPDelta)
}

func (i Item) FilterValue() string { return i.Entry.Message }

type KeyMap struct {
	ToggleAll key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		ToggleAll: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "toggle all"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap

	// ShowAll reports whether the full history is displayed rather
	// than only the most recent entries.
	ShowAll bool
}

func New(width, height int) Model {
	l := list.New(nil, list.NewDefaultDelegate(), width, height)
	l.Title = "Atividades"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.ToggleAll}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []feed.Entry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
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
		if key.Matches(msg, m.keys.ToggleAll) {
			m.ShowAll = !m.ShowAll
			return m, func() tea.Msg { return ToggleAllMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Nenhuma atividade ainda.\n  Complete um hábito para começar!"
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
