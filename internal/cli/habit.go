package cli

import (
	"context"
	"fmt"
)

type HabitCmd struct {
	Add      HabitAddCmd      `cmd:"" help:"Create a habit."`
	List     HabitListCmd     `cmd:"" help:"List habits." default:"1"`
	Complete HabitCompleteCmd `cmd:"" help:"Complete a habit for today."`
	Edit     HabitEditCmd     `cmd:"" help:"Edit a habit."`
	Delete   HabitDeleteCmd   `cmd:"" help:"Remove a habit from the local view."`
}

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
	XP   int    `short:"x" required:"" help:"XP awarded per completion."`
}

func (c *HabitAddCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	habit, err := appCtx.Session.CreateHabit(ctx, c.Name, c.XP)
	if err != nil {
		return err
	}

	fmt.Printf("Hábito %q criado com sucesso! (+%d XP por conclusão)\n", habit.Name, habit.XPValue)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	sess := appCtx.Session
	if len(sess.Habits) == 0 {
		fmt.Println("Você ainda não tem hábitos. Crie um!")
		return nil
	}

	for _, h := range sess.Habits {
		marker := "○"
		if h.CompletedToday {
			marker = "✓"
		}
		line := fmt.Sprintf("%s %s (+%d XP)", marker, h.Name, h.XPValue)
		if h.Streak > 0 {
			line += fmt.Sprintf(" ⚔️ %d", h.Streak)
		}
		fmt.Println(line)
	}
	return nil
}

type HabitCompleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitCompleteCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	sess := appCtx.Session
	habit := sess.FindHabitByName(c.Name)
	if habit == nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	if err := sess.CompleteHabit(ctx, habit.ID); err != nil {
		return err
	}

	// The most recent notification carries the outcome, whether the habit
	// was completed now or had been completed earlier today.
	if entries := sess.Notify.Entries(); len(entries) > 0 {
		fmt.Println(entries[0].Message)
	}
	stats := sess.Stats()
	fmt.Printf("Nível %d · %d XP · %d dias de ofensiva\n", stats.Level, stats.XP, stats.Streak)
	return nil
}

type HabitEditCmd struct {
	Name    string `arg:"" help:"Current habit name."`
	NewName string `short:"n" help:"New name (defaults to current)."`
	XP      int    `short:"x" help:"New XP value (defaults to current)."`
}

func (c *HabitEditCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	habit := appCtx.Session.FindHabitByName(c.Name)
	if habit == nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	name := habit.Name
	if c.NewName != "" {
		name = c.NewName
	}
	xp := habit.XPValue
	if c.XP > 0 {
		xp = c.XP
	}

	return appCtx.Session.UpdateHabit(ctx, habit.ID, name, xp)
}

type HabitDeleteCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitDeleteCmd) Run(appCtx *Context) error {
	ctx := context.Background()
	if err := appCtx.RequireSession(ctx); err != nil {
		return err
	}

	habit := appCtx.Session.FindHabitByName(c.Name)
	if habit == nil {
		return fmt.Errorf("habit %q not found", c.Name)
	}

	// Local-only: the server record is kept and reappears on the next
	// full refresh.
	appCtx.Session.DeleteHabit(habit.ID)
	fmt.Printf("Hábito %q excluído! 🗑️\n", c.Name)
	return nil
}
