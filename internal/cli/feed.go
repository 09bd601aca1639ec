package cli

import (
	"context"
	"fmt"

	"github.com/trackhabit/trackhabit/internal/constants"
)

type FeedCmd struct {
	All bool `help:"Show the full feed instead of the most recent entries."`
}

func (c *FeedCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	entries := appCtx.Session.Feed()
	if !c.All && len(entries) > constants.FeedDisplayLimit {
		entries = entries[:constants.FeedDisplayLimit]
	}

	if len(entries) == 0 {
		fmt.Println("Seu histórico de atividades aparecerá aqui!")
		return nil
	}

	for _, e := range entries {
		fmt.Printf("%s  %-40s %s\n", e.Date, e.Message, FormatXPDelta(e.XPDelta))
	}
	return nil
}

type AchievementsCmd struct{}

func (c *AchievementsCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	achievements := appCtx.Session.Achievements
	if len(achievements) == 0 {
		fmt.Println("Suas conquistas aparecerão aqui!")
		return nil
	}

	for _, a := range achievements {
		fmt.Printf("★ %s\n", a.Message)
	}
	return nil
}
