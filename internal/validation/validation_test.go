package validation

import (
	"testing"

	"github.com/natjohn/wellbee/internal/models"
)

func validProfile() models.UserProfile {
	return models.UserProfile{
		Name:          "Asha",
		Age:           29,
		Gender:        models.GenderFemale,
		HeightCm:      168,
		WeightKg:      62,
		ActivityLevel: models.ActivityHigh,
		Goal:          models.GoalMotivation,
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*models.UserProfile)
		wantErr bool
	}{
		{"valid", func(p *models.UserProfile) {}, false},
		{"empty name", func(p *models.UserProfile) { p.Name = "   " }, true},
		{"too young", func(p *models.UserProfile) { p.Age = 12 }, true},
		{"too old", func(p *models.UserProfile) { p.Age = 121 }, true},
		{"height low", func(p *models.UserProfile) { p.HeightCm = 89 }, true},
		{"height high", func(p *models.UserProfile) { p.HeightCm = 251 }, true},
		{"weight low", func(p *models.UserProfile) { p.WeightKg = 24 }, true},
		{"weight high", func(p *models.UserProfile) { p.WeightKg = 351 }, true},
		{"bad gender", func(p *models.UserProfile) { p.Gender = "robot" }, true},
		{"bad activity", func(p *models.UserProfile) { p.ActivityLevel = "extreme" }, true},
		{"bad goal", func(p *models.UserProfile) { p.Goal = "world-domination" }, true},
		{"boundary age", func(p *models.UserProfile) { p.Age = 13 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validProfile()
			tt.mutate(&p)
			err := ValidateProfile(p)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidMealSlot(t *testing.T) {
	for _, slot := range models.MealSlots {
		if !ValidMealSlot(string(slot)) {
			t.Errorf("expected %q to be a valid meal slot", slot)
		}
	}
	for _, bad := range []string{"", "brunch", "Breakfast", "midnightSnack"} {
		if ValidMealSlot(bad) {
			t.Errorf("expected %q to be rejected", bad)
		}
	}
}
