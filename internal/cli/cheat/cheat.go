package cheat

import (
	"fmt"

	"github.com/natjohn/wellbee/internal/cli"
	"github.com/natjohn/wellbee/internal/constants"
)

type CheatDayUseCmd struct {
	Reason string `help:"Why today is a cheat day." short:"r" default:"Just because"`
}

func (c *CheatDayUseCmd) Run(ctx *cli.Context) error {
	active, err := ctx.Engine.IsCheatDayToday()
	if err != nil {
		return err
	}
	if active {
		fmt.Println("Today is already a cheat day. Enjoy it!")
		return nil
	}

	used, err := ctx.Engine.UseCheatDay(c.Reason)
	if err != nil {
		return err
	}
	if !used {
		fmt.Printf("No cheat days left this month (max %d). They refresh next month.\n",
			constants.MaxCheatDaysPerMonth)
		return nil
	}

	remaining, err := ctx.Engine.CheatDaysRemainingThisMonth()
	if err != nil {
		return err
	}
	fmt.Printf("🎉 Cheat day! Tasks won't block each other today. %d left this month.\n", remaining)
	return nil
}

type CheatDayStatusCmd struct{}

func (c *CheatDayStatusCmd) Run(ctx *cli.Context) error {
	active, err := ctx.Engine.IsCheatDayToday()
	if err != nil {
		return err
	}
	remaining, err := ctx.Engine.CheatDaysRemainingThisMonth()
	if err != nil {
		return err
	}

	if active {
		fmt.Println("Today: cheat day 🎉")
	} else {
		fmt.Println("Today: regular day")
	}
	fmt.Printf("Remaining this month: %d of %d\n", remaining, constants.MaxCheatDaysPerMonth)

	days, err := ctx.Engine.CheatDays()
	if err != nil {
		return err
	}
	if len(days) > 0 {
		fmt.Println("\nHistory:")
		for _, d := range days {
			fmt.Printf("  %s  %s\n", d.Date, d.Reason)
		}
	}
	return nil
}
