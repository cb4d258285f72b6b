package main

import (
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/natjohn/wellbee/internal/cli"
	"github.com/natjohn/wellbee/internal/cli/backups"
	"github.com/natjohn/wellbee/internal/cli/cheat"
	"github.com/natjohn/wellbee/internal/cli/meals"
	"github.com/natjohn/wellbee/internal/cli/system"
	"github.com/natjohn/wellbee/internal/cli/tasks"
	"github.com/natjohn/wellbee/internal/cli/water"
	"github.com/natjohn/wellbee/internal/clock"
	"github.com/natjohn/wellbee/internal/constants"
	"github.com/natjohn/wellbee/internal/engine"
	apperrors "github.com/natjohn/wellbee/internal/errors"
	"github.com/natjohn/wellbee/internal/logger"
	"github.com/natjohn/wellbee/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Store file path. A .json extension selects the plain JSON store instead of SQLite." type:"path" default:"~/.config/wellbee/wellbee.db"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd   `cmd:"" help:"Initialize wellbee storage."`
	Onboard cli.OnboardCmd   `cmd:"" help:"Create your profile and generate your daily routine."`
	Today   cli.TodayCmd     `cmd:"" help:"Show today's routine, water, and trial status." default:"1"`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd    `cmd:"" help:"Launch the interactive dashboard."`
	Task    struct {
		Done tasks.TaskDoneCmd `cmd:"" help:"Mark a task as done."`
		Undo tasks.TaskUndoCmd `cmd:"" help:"Mark a task as not done."`
		List tasks.TaskListCmd `cmd:"" help:"List today's tasks." default:"1"`
	} `cmd:"" help:"Manage today's tasks."`
	Water struct {
		Add    water.WaterAddCmd    `cmd:"" help:"Log a glass of water." default:"withargs"`
		Reset  water.WaterResetCmd  `cmd:"" help:"Reset today's water counter."`
		Status water.WaterStatusCmd `cmd:"" help:"Show today's water progress."`
	} `cmd:"" help:"Track water intake."`
	Meal struct {
		List  meals.MealListCmd  `cmd:"" help:"Show today's meals and their alternatives." default:"1"`
		Swap  meals.MealSwapCmd  `cmd:"" help:"Swap a meal for one of its alternatives."`
		Reset meals.MealResetCmd `cmd:"" help:"Reset a swapped meal back to the default."`
	} `cmd:"" help:"Manage today's meal plan."`
	Cheatday struct {
		Use    cheat.CheatDayUseCmd    `cmd:"" help:"Declare today a cheat day."`
		Status cheat.CheatDayStatusCmd `cmd:"" help:"Show cheat day usage for this month." default:"1"`
	} `cmd:"" help:"Manage cheat days."`
	Trial       cli.TrialCmd       `cmd:"" help:"Show trial and subscription status."`
	Subscribe   cli.SubscribeCmd   `cmd:"" help:"Activate the subscription."`
	Unsubscribe cli.UnsubscribeCmd `cmd:"" help:"Cancel the subscription."`
	Chat        struct {
		Send cli.ChatCmd `cmd:"" help:"Talk to your wellness assistant." default:"withargs"`
		Key  struct {
			Set   cli.ChatKeySetCmd   `cmd:"" help:"Store the chat API key in the OS keyring."`
			Clear cli.ChatKeyClearCmd `cmd:"" help:"Remove the chat API key from the OS keyring."`
		} `cmd:"" help:"Manage the chat API key."`
	} `cmd:"" help:"Chat with the wellness assistant (premium)."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage store backups."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("wellbee"),
		kong.Description("Personal wellness companion: daily routines, hydration, meals, and habit gating"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":       "v0.1.0",
			"chat_endpoint": constants.DefaultChatEndpoint,
			"chat_model":    constants.DefaultChatModel,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		apperrors.Fatal(err)
	}

	store := storage.New(CLI.Config)
	appCtx := &cli.Context{Store: store}

	// Load the store and build the engine before running the command; the
	// init command handles its own setup.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			apperrors.Fatal(err)
		}
		eng, err := engine.New(store, clock.System{})
		if err != nil {
			apperrors.Fatal(err)
		}
		appCtx.Engine = eng
	}

	apperrors.Fatal(ctx.Run(appCtx))
}
