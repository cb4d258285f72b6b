package validation

import (
	"fmt"
	"strings"

	"github.com/natjohn/wellbee/internal/models"
)

// ValidateProfile checks onboarding input before the profile is persisted.
func ValidateProfile(p models.UserProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if p.Age < 13 || p.Age > 120 {
		return fmt.Errorf("age must be between 13 and 120")
	}
	if p.HeightCm < 90 || p.HeightCm > 250 {
		return fmt.Errorf("height must be between 90 and 250 cm")
	}
	if p.WeightKg < 25 || p.WeightKg > 350 {
		return fmt.Errorf("weight must be between 25 and 350 kg")
	}
	if !validGender(p.Gender) {
		return fmt.Errorf("invalid gender: %s", p.Gender)
	}
	if !validActivityLevel(p.ActivityLevel) {
		return fmt.Errorf("invalid activity level: %s (must be low, medium, or high)", p.ActivityLevel)
	}
	if !validGoal(p.Goal) {
		return fmt.Errorf("invalid goal: %s", p.Goal)
	}
	return nil
}

func validGender(g models.Gender) bool {
	switch g {
	case models.GenderMale, models.GenderFemale, models.GenderOther:
		return true
	}
	return false
}

func validActivityLevel(a models.ActivityLevel) bool {
	switch a {
	case models.ActivityLow, models.ActivityMedium, models.ActivityHigh:
		return true
	}
	return false
}

func validGoal(g models.Goal) bool {
	for _, goal := range models.Goals {
		if g == goal {
			return true
		}
	}
	return false
}

// ValidMealSlot reports whether the key names one of the five meal slots.
func ValidMealSlot(key string) bool {
	for _, slot := range models.MealSlots {
		if string(slot) == key {
			return true
		}
	}
	return false
}
