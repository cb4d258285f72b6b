package tasks

import (
	"fmt"

	"github.com/natjohn/wellbee/internal/cli"
)

type TaskDoneCmd struct {
	ID string `arg:"" help:"Task ID (see 'wellbee task list')."`
}

func (c *TaskDoneCmd) Run(ctx *cli.Context) error {
	if err := requireKnownTask(ctx, c.ID); err != nil {
		return err
	}
	done, err := ctx.Engine.IsCompleted(c.ID)
	if err != nil {
		return err
	}
	if done {
		fmt.Printf("'%s' is already done.\n", c.ID)
		return nil
	}

	changed, err := ctx.Engine.ToggleTask(c.ID)
	if err != nil {
		return err
	}
	if !changed {
		fmt.Printf("'%s' is locked: finish the required steps before it first.\n", c.ID)
		fmt.Println("Run 'wellbee task list' to see what's blocking it.")
		return nil
	}

	fmt.Printf("✓ '%s' done.\n", c.ID)
	progress, err := ctx.Engine.Progress()
	if err != nil {
		return err
	}
	if progress.TasksCompleted == progress.TotalTasks {
		fmt.Println("🎉 That's everything for today. Great work!")
	}
	return nil
}

type TaskUndoCmd struct {
	ID string `arg:"" help:"Task ID to mark as not done."`
}

func (c *TaskUndoCmd) Run(ctx *cli.Context) error {
	if err := requireKnownTask(ctx, c.ID); err != nil {
		return err
	}
	done, err := ctx.Engine.IsCompleted(c.ID)
	if err != nil {
		return err
	}
	if !done {
		fmt.Printf("'%s' is not done yet.\n", c.ID)
		return nil
	}
	if _, err := ctx.Engine.ToggleTask(c.ID); err != nil {
		return err
	}
	fmt.Printf("↩ '%s' marked as not done.\n", c.ID)
	return nil
}

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
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
		fmt.Println(cli.FormatTaskLine(item, done, can))
	}
	fmt.Println("\n[x] done  [ ] open  [!] locked behind a required step")
	return nil
}

func requireKnownTask(ctx *cli.Context, id string) error {
	tasks, err := ctx.Engine.TaskList()
	if err != nil {
		return err
	}
	for _, item := range tasks {
		if item.ID == id {
			return nil
		}
	}
	return fmt.Errorf("unknown task '%s', run 'wellbee task list' to see today's tasks", id)
}
