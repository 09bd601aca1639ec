package cli

import (
	"context"
	"fmt"

	"github.com/trackhabit/trackhabit/internal/keyring"
)

type LoginCmd struct {
	Username string `arg:"" help:"Username."`
	Password string `arg:"" help:"Password."`
}

func (c *LoginCmd) Run(appCtx *Context) error {
	ctx := context.Background()

	if err := appCtx.Session.Login(ctx, c.Username, c.Password); err != nil {
		return err
	}

	user := appCtx.Session.User
	if err := keyring.SetIdentity(keyring.Identity{UserID: user.ID, Username: user.Username}); err != nil {
		// The session still works for this invocation; only persistence
		// across invocations is lost.
		fmt.Printf("Warning: %v\n", err)
	}

	stats := appCtx.Session.Stats()
	fmt.Printf("Bem-vindo, %s!\n", user.Username)
	fmt.Printf("Nível %d · %d XP · %d dias de ofensiva · %d hábitos\n",
		stats.Level, stats.XP, stats.Streak, stats.HabitCount)
	return nil
}

type RegisterCmd struct {
	Username string `arg:"" help:"Username (min 3 characters)."`
	Password string `arg:"" help:"Password (min 6 characters)."`
}

func (c *RegisterCmd) Run(appCtx *Context) error {
	if err := appCtx.Session.Register(context.Background(), c.Username, c.Password); err != nil {
		return err
	}
	fmt.Printf("Usuário %q criado com sucesso! Agora faça login.\n", c.Username)
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(appCtx *Context) error {
	appCtx.Session.Logout()
	if err := keyring.ClearIdentity(); err != nil {
		return err
	}
	fmt.Println("Logout realizado com sucesso! Até logo! 👋")
	return nil
}
