package models

// RoutineItem is a single entry in the day's ordered task list. IDs are
// stable strings, unique within a day.
type RoutineItem struct {
	ID          string `json:"id"`
	Time        string `json:"time"` // HH:MM format
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Required    bool   `json:"required,omitempty"` // blocks later items until completed
}

// MealSlot identifies one of the five named meal slots.
type MealSlot string

const (
	SlotBreakfast    MealSlot = "breakfast"
	SlotMorningSnack MealSlot = "morningSnack"
	SlotLunch        MealSlot = "lunch"
	SlotEveningSnack MealSlot = "eveningSnack"
	SlotDinner       MealSlot = "dinner"
)

// MealSlots lists the slots in their plan order.
var MealSlots = []MealSlot{
	SlotBreakfast,
	SlotMorningSnack,
	SlotLunch,
	SlotEveningSnack,
	SlotDinner,
}

type Meal struct {
	Time         string            `json:"time"` // HH:MM format
	Name         string            `json:"name"`
	Items        []string          `json:"items"`
	Alternatives []MealAlternative `json:"alternatives"` // possibly empty, never nil in generated routines
	Calories     int               `json:"calories,omitempty"`
}

type MealAlternative struct {
	Name     string   `json:"name"`
	Items    []string `json:"items"`
	Calories int      `json:"calories,omitempty"`
}

type MealPlan struct {
	Breakfast    Meal `json:"breakfast"`
	MorningSnack Meal `json:"morningSnack"`
	Lunch        Meal `json:"lunch"`
	EveningSnack Meal `json:"eveningSnack"`
	Dinner       Meal `json:"dinner"`
}

// Slot returns the meal stored in the named slot. Unknown slots return a
// zero Meal.
func (p MealPlan) Slot(slot MealSlot) Meal {
	switch slot {
	case SlotBreakfast:
		return p.Breakfast
	case SlotMorningSnack:
		return p.MorningSnack
	case SlotLunch:
		return p.Lunch
	case SlotEveningSnack:
		return p.EveningSnack
	case SlotDinner:
		return p.Dinner
	}
	return Meal{}
}

type Exercise struct {
	Name     string `json:"name"`
	Sets     int    `json:"sets,omitempty"`
	Reps     int    `json:"reps,omitempty"`
	Duration int    `json:"duration,omitempty"` // minutes
}

type WorkoutPlan struct {
	Time      string     `json:"time"` // HH:MM format
	Name      string     `json:"name"`
	Duration  int        `json:"duration"` // minutes
	Exercises []Exercise `json:"exercises"`
}

// DailyRoutine is derived from the profile and never persisted
// independently; it is regenerated on every profile change.
type DailyRoutine struct {
	WakeUpTime    string        `json:"wakeUpTime"` // HH:MM format
	BedTime       string        `json:"bedTime"`    // HH:MM format
	MorningHabits []RoutineItem `json:"morningHabits"`
	Meals         MealPlan      `json:"meals"`
	Workout       WorkoutPlan   `json:"workout"`
	WaterIntake   int           `json:"waterIntake"` // glasses per day
	EveningHabits []RoutineItem `json:"eveningHabits"`
}

// CheatDay is one append-only ledger entry. At most one entry per calendar
// date; entries are never edited or removed.
type CheatDay struct {
	Date   string `json:"date"` // YYYY-MM-DD format
	Reason string `json:"reason,omitempty"`
}

// DailyProgress is a computed snapshot for presentation; it is never
// persisted.
type DailyProgress struct {
	Date           string `json:"date"`
	TasksCompleted int    `json:"tasksCompleted"`
	TotalTasks     int    `json:"totalTasks"`
	WaterGlasses   int    `json:"waterGlasses"`
	WorkoutDone    bool   `json:"workoutDone"`
	MealsFollowed  int    `json:"mealsFollowed"`
}
