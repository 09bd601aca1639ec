package cli

import (
	"context"
	"fmt"
)

type RewardCmd struct {
	Add    RewardAddCmd    `cmd:"" help:"Create a reward."`
	List   RewardListCmd   `cmd:"" help:"List the reward store." default:"1"`
	Redeem RewardRedeemCmd `cmd:"" help:"Redeem a reward with XP."`
	Edit   RewardEditCmd   `cmd:"" help:"Edit a reward."`
	Delete RewardDeleteCmd `cmd:"" help:"Remove a reward from the local view."`
}

type RewardAddCmd struct {
	Name        string `arg:"" help:"Reward name."`
	Cost        int    `short:"c" required:"" help:"XP cost."`
	Description string `short:"d" required:"" help:"Description."`
}

func (c *RewardAddCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	reward, err := appCtx.Session.CreateReward(ctx, c.Name, c.Cost, c.Description)
	if err != nil {
		return err
	}

	fmt.Printf("Recompensa %q criada com sucesso! (%d XP)\n", reward.Name, reward.XPCost)
	return nil
}

type RewardListCmd struct{}

func (c *RewardListCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	sess := appCtx.Session
	if len(sess.Rewards) == 0 {
		fmt.Println("Nenhuma recompensa disponível na loja.")
		return nil
	}

	for _, r := range sess.Rewards {
		status := ""
		if sess.Owned(r.ID) {
			status = " [ADQUIRIDO]"
		} else if sess.User.XP < r.XPCost {
			status = " [XP insuficiente]"
		}
		fmt.Printf("%s (%d XP)%s\n    %s\n", r.Name, r.XPCost, status, r.Description)
	}
	return nil
}

type RewardRedeemCmd struct {
	Name string `arg:"" help:"Reward name."`
}

func (c *RewardRedeemCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	sess := appCtx.Session
	reward := sess.FindRewardByName(c.Name)
	if reward == nil {
		return fmt.Errorf("reward %q not found", c.Name)
	}

	if err := sess.RedeemReward(ctx, reward.ID); err != nil {
		return err
	}

	stats := sess.Stats()
	fmt.Printf("Recompensa %q resgatada! 🏆\n", c.Name)
	fmt.Printf("Nível %d · %d XP restantes\n", stats.Level, stats.XP)
	return nil
}

type RewardEditCmd struct {
	Name        string `arg:"" help:"Current reward name."`
	NewName     string `short:"n" help:"New name (defaults to current)."`
	Cost        int    `short:"c" help:"New XP cost (defaults to current)."`
	Description string `short:"d" help:"New description (defaults to current)."`
}

func (c *RewardEditCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	reward := appCtx.Session.FindRewardByName(c.Name)
	if reward == nil {
		return fmt.Errorf("reward %q not found", c.Name)
	}

	name := reward.Name
	if c.NewName != "" {
		name = c.NewName
	}
	cost := reward.XPCost
	if c.Cost > 0 {
		cost = c.Cost
	}
	description := reward.Description
	if c.Description != "" {
		description = c.Description
	}

	return appCtx.Session.UpdateReward(ctx, reward.ID, name, cost, description)
}

type RewardDeleteCmd struct {
	Name string `arg:"" help:"Reward name."`
}

func (c *RewardDeleteCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	reward := appCtx.Session.FindRewardByName(c.Name)
	if reward == nil {
		return fmt.Errorf("reward %q not found", c.Name)
	}

	appCtx.Session.DeleteReward(reward.ID)
	fmt.Printf("Recompensa %q excluída! 🗑️\n", c.Name)
	return nil
}
