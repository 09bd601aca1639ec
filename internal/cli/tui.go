package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/trackhabit/trackhabit/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(appCtx.Session), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
