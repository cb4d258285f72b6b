package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/natjohn/wellbee/internal/models"
	"github.com/natjohn/wellbee/internal/validation"
)

type OnboardCmd struct {
	Name     string `help:"Your name." short:"n"`
	Age      int    `help:"Your age in years."`
	Gender   string `help:"Gender (male, female, other)."`
	Height   int    `help:"Height in cm."`
	Weight   int    `help:"Weight in kg."`
	Activity string `help:"Activity level (low, medium, high)." default:""`
	Goal     string `help:"Wellness goal (gain-weight, low-energy, motivation, lose-weight, maintain, lifestyle)."`
	Force    bool   `help:"Overwrite an existing profile without asking." short:"f"`
}

func (c *OnboardCmd) Run(ctx *Context) error {
	onboarded, err := ctx.Engine.Onboarded()
	if err != nil {
		return err
	}
	if onboarded && !c.Force {
		confirm := false
		err := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("A profile already exists. Start over?").
				Description("Your routine will be regenerated from the new answers.").
				Value(&confirm),
		)).WithTheme(huh.ThemeDracula()).Run()
		if err != nil {
			return err
		}
		if !confirm {
			fmt.Println("Onboarding cancelled.")
			return nil
		}
	}

	profile := models.UserProfile{
		Name:          c.Name,
		Age:           c.Age,
		Gender:        models.Gender(c.Gender),
		HeightCm:      c.Height,
		WeightKg:      c.Weight,
		ActivityLevel: models.ActivityLevel(c.Activity),
		Goal:          models.Goal(c.Goal),
	}

	// Any field not supplied by flags is collected interactively.
	if c.interactive() {
		if err := runOnboardForm(&profile); err != nil {
			return err
		}
	}

	if err := validation.ValidateProfile(profile); err != nil {
		return err
	}
	if err := ctx.Engine.SetProfile(profile); err != nil {
		return err
	}

	routine, err := ctx.Engine.Routine()
	if err != nil {
		return err
	}

	info := models.GoalCatalog[profile.Goal]
	fmt.Printf("\n%s Welcome, %s! Your plan for \"%s\" is ready.\n\n", info.Icon, profile.Name, info.Label)
	fmt.Printf("  Wake up:   %s\n", routine.WakeUpTime)
	fmt.Printf("  Bed time:  %s\n", routine.BedTime)
	fmt.Printf("  Water:     %d glasses/day\n", routine.WaterIntake)
	fmt.Printf("  Workout:   %s (%d min)\n", routine.Workout.Name, routine.Workout.Duration)
	fmt.Println("\nRun 'wellbee today' to see your routine.")
	return nil
}

func (c *OnboardCmd) interactive() bool {
	return c.Name == "" || c.Age == 0 || c.Gender == "" || c.Height == 0 ||
		c.Weight == 0 || c.Activity == "" || c.Goal == ""
}

func runOnboardForm(p *models.UserProfile) error {
	age := fieldDefault(p.Age)
	height := fieldDefault(p.HeightCm)
	weight := fieldDefault(p.WeightKg)

	goalOptions := make([]huh.Option[models.Goal], 0, len(models.Goals))
	for _, g := range models.Goals {
		info := models.GoalCatalog[g]
		goalOptions = append(goalOptions, huh.NewOption(fmt.Sprintf("%s %s", info.Icon, info.Label), g))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&p.Name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
			huh.NewInput().
				Title("Age").
				Value(&age).
				Validate(intBetween(13, 120, "age")),
			huh.NewSelect[models.Gender]().
				Title("Gender").
				Options(
					huh.NewOption("Male", models.GenderMale),
					huh.NewOption("Female", models.GenderFemale),
					huh.NewOption("Other", models.GenderOther),
				).
				Value(&p.Gender),
			huh.NewInput().
				Title("Height (cm)").
				Value(&height).
				Validate(intBetween(90, 250, "height")),
			huh.NewInput().
				Title("Weight (kg)").
				Value(&weight).
				Validate(intBetween(25, 350, "weight")),
		),
		huh.NewGroup(
			huh.NewSelect[models.ActivityLevel]().
				Title("How active are you?").
				Options(
					huh.NewOption("Mostly sitting", models.ActivityLow),
					huh.NewOption("Moderately active", models.ActivityMedium),
					huh.NewOption("Very active", models.ActivityHigh),
				).
				Value(&p.ActivityLevel),
			huh.NewSelect[models.Goal]().
				Title("What's your goal?").
				Options(goalOptions...).
				Value(&p.Goal),
		),
	).WithTheme(huh.ThemeDracula())

	if err := form.Run(); err != nil {
		return err
	}

	p.Age, _ = strconv.Atoi(age)
	p.HeightCm, _ = strconv.Atoi(height)
	p.WeightKg, _ = strconv.Atoi(weight)
	return nil
}

func fieldDefault(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}

func intBetween(min, max int, field string) func(string) error {
	return func(s string) error {
		i, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return fmt.Errorf("%s must be a number", field)
		}
		if i < min || i > max {
			return fmt.Errorf("%s must be between %d and %d", field, min, max)
		}
		return nil
	}
}
