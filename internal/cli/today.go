package cli

import "fmt"

type TodayCmd struct{}

func (c *TodayCmd) Run(ctx *Context) error {
	profile, err := ctx.Engine.Profile()
	if err != nil {
		return err
	}
	_, err = ctx.Engine.Routine()
	if err != nil {
		return err
	}

	fmt.Printf("Hello %s! Today is %s.\n", profile.Name, ctx.Engine.Today())

	if err := printTrialLine(ctx); err != nil {
		return err
	}

	cheat, err := ctx.Engine.IsCheatDayToday()
	if err != nil {
		return err
	}
	if cheat {
		fmt.Println("🎉 Cheat day! All tasks are optional today.")
	}
	fmt.Println()

	tasks, err := ctx.Engine.TaskList()
	if err != nil {
		return err
	}
	for _, item := range tasks {
		done, err := ctx.Engine.IsCompleted(item.ID)
		if err != nil {
			return err
		}
		can, err := ctx.Engine.CanProceed(item.ID)
		if err != nil {
			return err
		}
		fmt.Println(FormatTaskLine(item, done, can))
	}

	fmt.Println()
	water, err := ctx.Engine.WaterGlasses()
	if err != nil {
		return err
	}
	target, err := ctx.Engine.WaterTarget()
	if err != nil {
		return err
	}
	fmt.Printf("💧 Water: %d/%d glasses\n", water, target)

	progress, err := ctx.Engine.Progress()
	if err != nil {
		return err
	}
	fmt.Printf("✅ Tasks: %d/%d done\n", progress.TasksCompleted, progress.TotalTasks)

	prompt, err := ctx.Engine.ShouldPromptSubscription()
	if err != nil {
		return err
	}
	if prompt {
		fmt.Println("\nYour free trial has ended. Run 'wellbee subscribe' to keep full access.")
	}
	return nil
}

func printTrialLine(ctx *Context) error {
	subscribed, err := ctx.Engine.IsSubscribed()
	if err != nil {
		return err
	}
	if subscribed {
		fmt.Println("⭐ Subscribed")
		return nil
	}
	day, err := ctx.Engine.CurrentDay()
	if err != nil {
		return err
	}
	left, err := ctx.Engine.TrialDaysLeft()
	if err != nil {
		return err
	}
	if left > 0 {
		fmt.Printf("Day %d of your journey — %d trial days left.\n", day, left)
	} else {
		fmt.Printf("Day %d of your journey — trial ended.\n", day)
	}
	return nil
}
