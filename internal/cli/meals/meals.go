package meals

import (
	"fmt"

	"github.com/natjohn/wellbee/internal/cli"
	"github.com/natjohn/wellbee/internal/models"
	"github.com/natjohn/wellbee/internal/validation"
)

type MealListCmd struct{}

func (c *MealListCmd) Run(ctx *cli.Context) error {
	swapped, err := ctx.Engine.SwappedMeals()
	if err != nil {
		return err
	}
	for _, slot := range models.MealSlots {
		meal, err := ctx.Engine.EffectiveMeal(slot)
		if err != nil {
			return err
		}
		_, isSwapped := swapped[string(slot)]
		fmt.Println(cli.FormatMeal(slot, meal, isSwapped))
		fmt.Println()
	}
	fmt.Println("Swap a meal for one of its alternatives with 'wellbee meal swap <slot> <index>'.")
	return nil
}

type MealSwapCmd struct {
	Slot  string `arg:"" help:"Meal slot (breakfast, morningSnack, lunch, eveningSnack, dinner)."`
	Index int    `arg:"" help:"Alternative index from 'wellbee meal list'."`
}

func (c *MealSwapCmd) Run(ctx *cli.Context) error {
	if !validation.ValidMealSlot(c.Slot) {
		return fmt.Errorf("unknown meal slot '%s'", c.Slot)
	}
	slot := models.MealSlot(c.Slot)
	if err := ctx.Engine.SwapMeal(slot, c.Index); err != nil {
		return err
	}
	meal, err := ctx.Engine.EffectiveMeal(slot)
	if err != nil {
		return err
	}
	fmt.Printf("✓ %s swapped to: %s\n", slot, meal.Name)
	fmt.Println("Swaps reset automatically at the start of a new day.")
	return nil
}

type MealResetCmd struct {
	Slot string `arg:"" optional:"" help:"Meal slot to reset. Omit to reset all swaps."`
}

func (c *MealResetCmd) Run(ctx *cli.Context) error {
	if c.Slot == "" {
		for _, slot := range models.MealSlots {
			if err := ctx.Engine.ResetMealSwap(slot); err != nil {
				return err
			}
		}
		fmt.Println("All meals reset to their defaults.")
		return nil
	}

	if !validation.ValidMealSlot(c.Slot) {
		return fmt.Errorf("unknown meal slot '%s'", c.Slot)
	}
	if err := ctx.Engine.ResetMealSwap(models.MealSlot(c.Slot)); err != nil {
		return err
	}
	fmt.Printf("✓ %s reset to its default meal.\n", c.Slot)
	return nil
}
