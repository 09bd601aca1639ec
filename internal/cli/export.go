package cli

import (
	"context"
	"fmt"
)

type ExportCmd struct {
	Dir string `short:"o" help:"Output directory." type:"path" default:"."`
}

func (c *ExportCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	path, err := appCtx.Session.ExportToFile(c.Dir)
	if err != nil {
		return err
	}

	fmt.Printf("Dados exportados para %s\n", path)
	return nil
}

// BonusCmd applies a local-only XP bonus. Hidden; a leftover easter egg.
type BonusCmd struct {
	Amount int `arg:"" optional:"" default:"1000" help:"Bonus XP amount."`
}

func (c *BonusCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	appCtx.Session.GrantBonusXP(c.Amount)
	stats := appCtx.Session.Stats()
	fmt.Printf("🎮 +%d XP! Agora: nível %d, %d XP\n", c.Amount, stats.Level, stats.XP)
	return nil
}
