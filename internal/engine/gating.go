package engine

import "github.com/natjohn/wellbee/internal/models"

// CanProceed decides whether taskID may be completed now. Pure function,
// recomputed from current state on every check:
//   - an active cheat day suspends all gating,
//   - unknown task ids are not gated (fail-open),
//   - otherwise every required task earlier in the ordered list must be
//     completed. Skippable tasks never block anything.
func CanProceed(taskID string, completed map[string]bool, tasks []models.RoutineItem, cheatDayActive bool) bool {
	if cheatDayActive {
		return true
	}

	idx := -1
	for i, item := range tasks {
		if item.ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return true
	}

	for _, item := range tasks[:idx] {
		if item.Required && !completed[item.ID] {
			return false
		}
	}
	return true
}

// CanProceed reports whether the named task may be completed right now,
// given today's completion set and cheat day state.
func (e *Engine) CanProceed(taskID string) (bool, error) {
	tasks, err := e.TaskList()
	if err != nil {
		return false, err
	}
	completed, err := e.completedSet()
	if err != nil {
		return false, err
	}
	cheat, err := e.IsCheatDayToday()
	if err != nil {
		return false, err
	}
	return CanProceed(taskID, completed, tasks, cheat), nil
}
