// Package routine derives today's routine skeleton from a user profile.
// The catalog is static content: the mapping from goal to routine, meals,
// and workout is data, not an algorithm.
package routine

import (
	"fmt"
	"time"

	"github.com/natjohn/wellbee/internal/constants"
	"github.com/natjohn/wellbee/internal/models"
)

// Task IDs for the fixed meal/workout pseudo-items in the day's ordered
// task list.
const (
	TaskBreakfast = "breakfast"
	TaskWorkout   = "workout"
	TaskLunch     = "lunch"
	TaskDinner    = "dinner"
)

// Generate produces the daily routine for a profile. It is a pure function
// of (goal, activityLevel): the same profile always yields the same routine.
func Generate(profile models.UserProfile) models.DailyRoutine {
	cfg, ok := routinesByGoal[profile.Goal]
	if !ok {
		cfg = routinesByGoal[models.GoalMaintain]
	}
	meals, ok := mealPlansByGoal[profile.Goal]
	if !ok {
		meals = mealPlansByGoal[models.GoalMaintain]
	}
	workout, ok := workoutsByGoal[profile.Goal]
	if !ok {
		workout = workoutsByGoal[models.GoalMaintain]
	}

	water := cfg.WaterIntake
	switch profile.ActivityLevel {
	case models.ActivityHigh:
		water += 2
	case models.ActivityLow:
		water--
	}

	morningHabits := []models.RoutineItem{
		{
			ID:          "wake-up",
			Time:        cfg.WakeUpTime,
			Title:       "Wake Up",
			Description: "Start your day fresh and energized",
			Icon:        "🌅",
		},
		{
			ID:          "morning-drink",
			Time:        addMinutes(cfg.WakeUpTime, 10),
			Title:       "Morning Drink",
			Description: cfg.MorningDrink,
			Icon:        "🥤",
		},
		{
			ID:          "meditation",
			Time:        addMinutes(cfg.WakeUpTime, 20),
			Title:       "Meditation",
			Description: "10 minutes of mindfulness",
			Icon:        "🧘",
		},
		{
			ID:          "morning-walk",
			Time:        addMinutes(cfg.WakeUpTime, 35),
			Title:       "Morning Walk",
			Description: "15-20 minute walk to boost circulation",
			Icon:        "🚶",
		},
	}

	eveningHabits := []models.RoutineItem{
		{
			ID:          "evening-walk",
			Time:        "19:00",
			Title:       "Evening Walk",
			Description: "Light walk after dinner",
			Icon:        "🌙",
		},
		{
			ID:          "screen-off",
			Time:        addMinutes(cfg.BedTime, -60),
			Title:       "Screen Off",
			Description: "No screens before bed for better sleep",
			Icon:        "📵",
		},
		{
			ID:          "night-routine",
			Time:        addMinutes(cfg.BedTime, -30),
			Title:       "Night Routine",
			Description: "Prepare for restful sleep",
			Icon:        "🌜",
		},
		{
			ID:          "sleep",
			Time:        cfg.BedTime,
			Title:       "Sleep",
			Description: "Get 7-8 hours of quality rest",
			Icon:        "😴",
		},
	}

	return models.DailyRoutine{
		WakeUpTime:    cfg.WakeUpTime,
		BedTime:       cfg.BedTime,
		MorningHabits: morningHabits,
		Meals:         meals,
		Workout:       workout,
		WaterIntake:   water,
		EveningHabits: eveningHabits,
	}
}

// TaskList returns the day's combined ordered task list. Ordering is fixed
// by concatenation (morning habits, breakfast, workout, lunch, dinner,
// evening habits), not by time-of-day sorting. The main meals and the
// workout are required; snacks are intentionally absent.
func TaskList(r models.DailyRoutine) []models.RoutineItem {
	items := make([]models.RoutineItem, 0, len(r.MorningHabits)+4+len(r.EveningHabits))
	items = append(items, r.MorningHabits...)
	items = append(items,
		models.RoutineItem{
			ID:       TaskBreakfast,
			Time:     r.Meals.Breakfast.Time,
			Title:    r.Meals.Breakfast.Name,
			Icon:     "🍳",
			Required: true,
		},
		models.RoutineItem{
			ID:       TaskWorkout,
			Time:     r.Workout.Time,
			Title:    r.Workout.Name,
			Icon:     "🏋️",
			Required: true,
		},
		models.RoutineItem{
			ID:       TaskLunch,
			Time:     r.Meals.Lunch.Time,
			Title:    r.Meals.Lunch.Name,
			Icon:     "🍛",
			Required: true,
		},
		models.RoutineItem{
			ID:       TaskDinner,
			Time:     r.Meals.Dinner.Time,
			Title:    r.Meals.Dinner.Name,
			Icon:     "🍽️",
			Required: true,
		},
	)
	items = append(items, r.EveningHabits...)
	return items
}

// addMinutes shifts an HH:MM time string by the given number of minutes,
// wrapping around midnight.
func addMinutes(timeStr string, minutes int) string {
	t, err := time.Parse(constants.TimeFormat, timeStr)
	if err != nil {
		return timeStr
	}
	total := t.Hour()*60 + t.Minute() + minutes
	total = ((total % 1440) + 1440) % 1440
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
