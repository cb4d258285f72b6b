package engine

import (
	"fmt"

	"github.com/natjohn/wellbee/internal/models"
)

// reconcileSwaps loads the swap map, clearing it first if the stored
// date-key is not today. Same lazy reset mechanism as the completion set.
func (e *Engine) reconcileSwaps() (map[string]int, error) {
	swaps, dateKey, err := e.store.GetSwappedMeals()
	if err != nil {
		return nil, err
	}
	today := e.Today()
	if dateKey != today {
		swaps = map[string]int{}
		if err := e.store.SaveSwappedMeals(swaps, today); err != nil {
			return nil, err
		}
	}
	return swaps, nil
}

// SwappedMeals returns today's slot-to-alternative overrides. Absence of a
// slot key means the default meal is in effect.
func (e *Engine) SwappedMeals() (map[string]int, error) {
	return e.reconcileSwaps()
}

// EffectiveMeal returns the meal currently in effect for a slot: the
// chosen alternative when a valid swap is stored, the slot's default meal
// otherwise. A stored index that no longer references an existing
// alternative falls back to the default.
func (e *Engine) EffectiveMeal(slot models.MealSlot) (models.Meal, error) {
	r, err := e.Routine()
	if err != nil {
		return models.Meal{}, err
	}
	meal := r.Meals.Slot(slot)

	swaps, err := e.reconcileSwaps()
	if err != nil {
		return models.Meal{}, err
	}
	idx, ok := swaps[string(slot)]
	if !ok || idx < 0 || idx >= len(meal.Alternatives) {
		return meal, nil
	}

	alt := meal.Alternatives[idx]
	swapped := meal
	swapped.Name = alt.Name
	swapped.Items = alt.Items
	swapped.Calories = alt.Calories
	return swapped, nil
}

// SwapMeal records an alternative choice for a slot, overwriting any
// previous choice for that slot today.
func (e *Engine) SwapMeal(slot models.MealSlot, alternativeIndex int) error {
	r, err := e.Routine()
	if err != nil {
		return err
	}
	meal := r.Meals.Slot(slot)
	if meal.Name == "" {
		return fmt.Errorf("unknown meal slot: %s", slot)
	}
	if alternativeIndex < 0 || alternativeIndex >= len(meal.Alternatives) {
		return fmt.Errorf("slot %s has no alternative %d (%d available)", slot, alternativeIndex, len(meal.Alternatives))
	}

	swaps, err := e.reconcileSwaps()
	if err != nil {
		return err
	}
	swaps[string(slot)] = alternativeIndex
	return e.store.SaveSwappedMeals(swaps, e.Today())
}

// ResetMealSwap removes the override for a slot, reverting to the default
// meal. Resetting a slot with no override is a no-op.
func (e *Engine) ResetMealSwap(slot models.MealSlot) error {
	swaps, err := e.reconcileSwaps()
	if err != nil {
		return err
	}
	if _, ok := swaps[string(slot)]; !ok {
		return nil
	}
	delete(swaps, string(slot))
	return e.store.SaveSwappedMeals(swaps, e.Today())
}
