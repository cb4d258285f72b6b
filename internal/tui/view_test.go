package tui

import (
	"strings"
	"testing"

	"github.com/natjohn/wellbee/internal/models"
)

func TestRoutineViewWaterOverTarget(t *testing.T) {
	// A shrunken water goal can leave today's persisted count above the
	// target; the gauge must render capped rather than panic.
	m := Model{
		keys:   DefaultKeyMap(),
		water:  10,
		target: 7,
		tasks: []models.RoutineItem{
			{ID: "wake-up", Time: "06:00", Title: "Wake up"},
		},
		completed:  map[string]bool{},
		canProceed: map[string]bool{"wake-up": true},
	}

	var view string
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("routineView panicked: %v", r)
			}
		}()
		view = m.routineView()
	}()

	if !strings.Contains(view, "10/7 glasses") {
		t.Errorf("expected overflow shown as 10/7, got %q", view)
	}
	if n := strings.Count(view, "●"); n != 7 {
		t.Errorf("expected gauge capped at 7 filled glasses, got %d", n)
	}
	if strings.Contains(view, "○") {
		t.Errorf("expected no empty glasses when over target, got %q", view)
	}
}
