package water

import (
	"strings"
	"testing"
)

func TestGauge(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		target int
		want   string
	}{
		{"empty", 0, 4, "○○○○  0/4 glasses"},
		{"partial", 2, 4, "●●○○  2/4 glasses"},
		{"full", 4, 4, "●●●●  4/4 glasses"},
		// After re-onboarding to a lower water target on the same day the
		// persisted count can exceed the new target; the bar must cap at
		// the target instead of panicking on a negative repeat count.
		{"over target", 10, 7, "●●●●●●●  10/7 glasses"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gauge(tt.count, tt.target)
			if got != tt.want {
				t.Errorf("gauge(%d, %d) = %q, want %q", tt.count, tt.target, got, tt.want)
			}
		})
	}
}

func TestGaugeNeverShowsMoreFilledThanTarget(t *testing.T) {
	got := gauge(12, 9)
	if n := strings.Count(got, "●"); n != 9 {
		t.Errorf("expected 9 filled glasses, got %d in %q", n, got)
	}
	if strings.Contains(got, "○") {
		t.Errorf("expected no empty glasses when over target, got %q", got)
	}
}
