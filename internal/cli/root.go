package cli

import (
	"fmt"

	"github.com/natjohn/wellbee/internal/backup"
	"github.com/natjohn/wellbee/internal/engine"
	"github.com/natjohn/wellbee/internal/logger"
	"github.com/natjohn/wellbee/internal/models"
	"github.com/natjohn/wellbee/internal/storage"
)

// Context is the application state handed to every command: the store and
// the engine built on top of it. All mutation goes through the engine.
type Context struct {
	Store  storage.Provider
	Engine *engine.Engine
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatTaskLine renders one routine item for list output with its
// completion and gating markers.
func FormatTaskLine(item models.RoutineItem, completed, canProceed bool) string {
	marker := "[ ]"
	if completed {
		marker = "[x]"
	} else if !canProceed {
		marker = "[!]"
	}
	req := ""
	if item.Required {
		req = " (required)"
	}
	return fmt.Sprintf("%s %s  %-14s %s%s", marker, item.Time, item.ID, item.Title, req)
}

// FormatMeal renders a meal for display.
func FormatMeal(slot models.MealSlot, meal models.Meal, swapped bool) string {
	note := ""
	if swapped {
		note = " (swapped)"
	}
	line := fmt.Sprintf("%s  %-13s %s%s", meal.Time, slot, meal.Name, note)
	for _, item := range meal.Items {
		line += fmt.Sprintf("\n      - %s", item)
	}
	if len(meal.Alternatives) > 0 {
		line += "\n      alternatives:"
		for i, alt := range meal.Alternatives {
			line += fmt.Sprintf("\n        [%d] %s", i, alt.Name)
		}
	}
	return line
}
