package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/trackhabit/trackhabit/internal/api"
	"github.com/trackhabit/trackhabit/internal/cli"
	"github.com/trackhabit/trackhabit/internal/config"
	"github.com/trackhabit/trackhabit/internal/constants"
	"github.com/trackhabit/trackhabit/internal/logger"
	"github.com/trackhabit/trackhabit/internal/notifier"
	"github.com/trackhabit/trackhabit/internal/notify"
	"github.com/trackhabit/trackhabit/internal/session"
	"github.com/trackhabit/trackhabit/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"~/.config/trackhabit/config.toml"`
	Debug   bool   `help:"Enable debug logging."`

	Login        cli.LoginCmd        `cmd:"" help:"Authenticate and store the session identity in the OS keyring."`
	Register     cli.RegisterCmd     `cmd:"" help:"Create a new account."`
	Logout       cli.LogoutCmd       `cmd:"" help:"Clear the stored session."`
	Tui          cli.TuiCmd          `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Habit        cli.HabitCmd        `cmd:"" help:"Manage habits and completions."`
	Reward       cli.RewardCmd       `cmd:"" help:"Manage the reward store."`
	Feed         cli.FeedCmd         `cmd:"" help:"Show the activity feed."`
	Achievements cli.AchievementsCmd `cmd:"" help:"List unlocked achievements."`
	Export       cli.ExportCmd       `cmd:"" help:"Export user data to a JSON file."`
	Doctor       cli.DoctorCmd       `cmd:"" help:"Run health checks and diagnostics."`
	Bonus        cli.BonusCmd        `cmd:"" hidden:"" help:"Grant bonus XP."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Habit tracker with XP, streaks and rewards"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	cfg, err := config.Load(CLI.Config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if CLI.Debug {
		cfg.Debug = true
	}

	if err := logger.Init(logger.Config{
		Debug:     cfg.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Select the state backend from the configured path format.
	var store storage.Provider
	statePath := cfg.State.Path
	switch {
	case strings.HasPrefix(statePath, "postgres://") || strings.HasPrefix(statePath, "postgresql://"):
		if storage.HasEmbeddedCredentials(statePath) {
			fmt.Fprintln(os.Stderr, "Error: PostgreSQL connection strings with embedded credentials are not allowed.")
			fmt.Fprintln(os.Stderr, "       Store credentials in the OS keyring, a .pgpass file, or the environment instead.")
			os.Exit(1)
		}
		store = storage.NewPostgresStore(statePath)
	case strings.HasSuffix(statePath, ".json"):
		store = storage.NewJSONStore(statePath)
	default:
		store = storage.NewSQLiteStore(statePath)
	}

	if err := store.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	center := notify.NewCenter()
	if cfg.Tray.Enabled {
		tray := notifier.New()
		center.AddSink(tray.Notify)
	}

	client := api.New(cfg.API.BaseURL, cfg.Timeout())
	sess := session.New(client, store, center)

	appCtx := &cli.Context{
		Config:  cfg,
		Store:   store,
		Session: sess,
	}

	if err := ctx.Run(appCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
