package water

import (
	"fmt"
	"strings"

	"github.com/natjohn/wellbee/internal/cli"
)

type WaterAddCmd struct {
	Glasses int `arg:"" optional:"" default:"1" help:"Number of glasses to log."`
}

func (c *WaterAddCmd) Run(ctx *cli.Context) error {
	if c.Glasses < 1 {
		return fmt.Errorf("glasses must be at least 1")
	}
	target, err := ctx.Engine.WaterTarget()
	if err != nil {
		return err
	}
	count := 0
	for i := 0; i < c.Glasses; i++ {
		count, err = ctx.Engine.AddWater()
		if err != nil {
			return err
		}
		if count >= target {
			break
		}
	}
	printGauge(count, target)
	if count >= target {
		fmt.Println("💧 Hydration goal reached!")
	}
	return nil
}

type WaterResetCmd struct{}

func (c *WaterResetCmd) Run(ctx *cli.Context) error {
	if err := ctx.Engine.ResetWater(); err != nil {
		return err
	}
	fmt.Println("Water counter reset to 0.")
	return nil
}

type WaterStatusCmd struct{}

func (c *WaterStatusCmd) Run(ctx *cli.Context) error {
	count, err := ctx.Engine.WaterGlasses()
	if err != nil {
		return err
	}
	target, err := ctx.Engine.WaterTarget()
	if err != nil {
		return err
	}
	printGauge(count, target)
	return nil
}

func printGauge(count, target int) {
	fmt.Println(gauge(count, target))
}

// gauge renders the glass meter. The count can exceed the target when the
// routine's water goal shrank mid-day (re-onboarding); the bar caps at the
// target and the overflow shows in the numbers.
func gauge(count, target int) string {
	filled := count
	if filled > target {
		filled = target
	}
	return fmt.Sprintf("%s%s  %d/%d glasses",
		strings.Repeat("●", filled),
		strings.Repeat("○", target-filled),
		count, target)
}
