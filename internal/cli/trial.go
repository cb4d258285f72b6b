package cli

import (
	"fmt"

	"github.com/natjohn/wellbee/internal/constants"
)

type TrialCmd struct{}

func (c *TrialCmd) Run(ctx *Context) error {
	subscribed, err := ctx.Engine.IsSubscribed()
	if err != nil {
		return err
	}
	day, err := ctx.Engine.CurrentDay()
	if err != nil {
		return err
	}
	left, err := ctx.Engine.TrialDaysLeft()
	if err != nil {
		return err
	}

	fmt.Printf("Journey day:     %d\n", day)
	if subscribed {
		fmt.Println("Subscription:    active")
		return nil
	}
	fmt.Printf("Trial days left: %d (of %d)\n", left, constants.TrialDays)
	if left == 0 {
		fmt.Println("\nYour trial has ended. Premium features (like chat) are locked.")
		fmt.Println("Run 'wellbee subscribe' to unlock them.")
	}
	return nil
}

type SubscribeCmd struct{}

func (c *SubscribeCmd) Run(ctx *Context) error {
	subscribed, err := ctx.Engine.IsSubscribed()
	if err != nil {
		return err
	}
	if subscribed {
		fmt.Println("Already subscribed.")
		return nil
	}
	if err := ctx.Engine.SetSubscribed(true); err != nil {
		return err
	}
	fmt.Println("⭐ Subscription activated. All features unlocked.")
	return nil
}

type UnsubscribeCmd struct{}

func (c *UnsubscribeCmd) Run(ctx *Context) error {
	subscribed, err := ctx.Engine.IsSubscribed()
	if err != nil {
		return err
	}
	if !subscribed {
		fmt.Println("No active subscription.")
		return nil
	}
	if err := ctx.Engine.SetSubscribed(false); err != nil {
		return err
	}
	fmt.Println("Subscription cancelled. Trial rules apply again.")
	return nil
}
