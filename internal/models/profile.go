package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type ActivityLevel string

const (
	ActivityLow    ActivityLevel = "low"
	ActivityMedium ActivityLevel = "medium"
	ActivityHigh   ActivityLevel = "high"
)

type Goal string

const (
	GoalGainWeight Goal = "gain-weight"
	GoalLowEnergy  Goal = "low-energy"
	GoalMotivation Goal = "motivation"
	GoalLoseWeight Goal = "lose-weight"
	GoalMaintain   Goal = "maintain"
	GoalLifestyle  Goal = "lifestyle"
)

// Goals lists every supported goal in display order.
var Goals = []Goal{
	GoalGainWeight,
	GoalLowEnergy,
	GoalMotivation,
	GoalLoseWeight,
	GoalMaintain,
	GoalLifestyle,
}

// UserProfile is created once during onboarding and treated as
// immutable-after-creation; re-onboarding replaces it wholesale.
type UserProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Gender        Gender        `json:"gender"`
	HeightCm      int           `json:"height"` // cm
	WeightKg      int           `json:"weight"` // kg
	ActivityLevel ActivityLevel `json:"activityLevel"`
	Goal          Goal          `json:"goal"`
}

// GoalInfo carries presentation metadata for a goal.
type GoalInfo struct {
	Label       string
	Description string
	Icon        string
}

var GoalCatalog = map[Goal]GoalInfo{
	GoalGainWeight: {
		Label:       "Gain Weight",
		Description: "Build healthy muscle mass and increase body weight naturally",
		Icon:        "💪",
	},
	GoalLowEnergy: {
		Label:       "Boost Energy",
		Description: "Combat fatigue and feel energized throughout the day",
		Icon:        "⚡",
	},
	GoalMotivation: {
		Label:       "Stay Motivated",
		Description: "Build discipline and overcome laziness with structured habits",
		Icon:        "🔥",
	},
	GoalLoseWeight: {
		Label:       "Lose Weight",
		Description: "Shed excess weight with healthy eating and exercise",
		Icon:        "🏃",
	},
	GoalMaintain: {
		Label:       "Maintain Fitness",
		Description: "Keep your current fitness level with balanced routines",
		Icon:        "⚖️",
	},
	GoalLifestyle: {
		Label:       "Better Lifestyle",
		Description: "Improve overall wellness with healthy daily habits",
		Icon:        "🌟",
	},
}
