package engine

import (
	"testing"

	"github.com/natjohn/wellbee/internal/models"
)

func item(id string, required bool) models.RoutineItem {
	return models.RoutineItem{ID: id, Required: required}
}

func TestCanProceed(t *testing.T) {
	// [A(required), B(required), C(not required)]
	tasks := []models.RoutineItem{
		item("A", true),
		item("B", true),
		item("C", false),
	}

	tests := []struct {
		name      string
		taskID    string
		completed map[string]bool
		cheatDay  bool
		want      bool
	}{
		{
			name:      "first task is never gated",
			taskID:    "A",
			completed: map[string]bool{},
			want:      true,
		},
		{
			name:      "B blocked until A is complete",
			taskID:    "B",
			completed: map[string]bool{},
			want:      false,
		},
		{
			name:      "completing skippable C does not unlock B",
			taskID:    "B",
			completed: map[string]bool{"C": true},
			want:      false,
		},
		{
			name:      "B unlocked once A is complete",
			taskID:    "B",
			completed: map[string]bool{"A": true},
			want:      true,
		},
		{
			name:      "C blocked by its required predecessors",
			taskID:    "C",
			completed: map[string]bool{"A": true},
			want:      false,
		},
		{
			name:      "C unlocked once A and B are complete",
			taskID:    "C",
			completed: map[string]bool{"A": true, "B": true},
			want:      true,
		},
		{
			name:      "cheat day suspends all gating",
			taskID:    "C",
			completed: map[string]bool{},
			cheatDay:  true,
			want:      true,
		},
		{
			name:      "unknown id fails open",
			taskID:    "Z",
			completed: map[string]bool{},
			want:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanProceed(tt.taskID, tt.completed, tasks, tt.cheatDay)
			if got != tt.want {
				t.Errorf("CanProceed(%q) = %v, want %v", tt.taskID, got, tt.want)
			}
		})
	}
}

func TestCanProceedSkippablePredecessorsIgnored(t *testing.T) {
	tasks := []models.RoutineItem{
		item("warmup", false),
		item("stretch", false),
		item("run", true),
	}
	if !CanProceed("run", map[string]bool{}, tasks, false) {
		t.Error("skippable predecessors must never block a task")
	}
}
