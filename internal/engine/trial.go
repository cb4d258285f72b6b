package engine

import (
	"github.com/natjohn/wellbee/internal/clock"
	"github.com/natjohn/wellbee/internal/constants"
)

// featureLockPolicy declares, per feature, whether trial expiry hard-locks
// it. Advisory features surface a subscribe prompt but remain usable.
// This is a configuration table on purpose: the lock boundary differs per
// feature, not globally.
var featureLockPolicy = map[string]bool{
	constants.FeatureChat:      true,
	constants.FeatureDashboard: false,
}

func (e *Engine) daysSinceTrialStart() (int, error) {
	start, ok, err := e.store.GetTrialStart()
	if err != nil {
		return 0, err
	}
	if !ok {
		// First run records the instant; a missing record here means the
		// store was wiped underneath us. Treat as day zero.
		return 0, nil
	}
	return clock.DaysSince(e.clk, start), nil
}

// CurrentDay returns the 1-based trial day index, capped at the trial
// length. Pure function of wall-clock time and the stored start instant.
func (e *Engine) CurrentDay() (int, error) {
	days, err := e.daysSinceTrialStart()
	if err != nil {
		return 0, err
	}
	day := days + 1
	if day > constants.TrialDays {
		day = constants.TrialDays
	}
	return day, nil
}

// TrialDaysLeft returns the number of trial days remaining, floored at 0.
func (e *Engine) TrialDaysLeft() (int, error) {
	days, err := e.daysSinceTrialStart()
	if err != nil {
		return 0, err
	}
	left := constants.TrialDays - days
	if left < 0 {
		left = 0
	}
	return left, nil
}

// IsSubscribed reports the persisted subscription flag.
func (e *Engine) IsSubscribed() (bool, error) {
	return e.store.GetSubscribed()
}

// SetSubscribed persists the subscription flag. Once set, trial expiry no
// longer restricts any feature.
func (e *Engine) SetSubscribed(v bool) error {
	return e.store.SetSubscribed(v)
}

// IsFeatureLocked reports whether a feature is hard-locked right now:
// locked iff it is a hard-locked feature, the user is not subscribed, and
// the trial has expired. Unknown features are never locked.
func (e *Engine) IsFeatureLocked(feature string) (bool, error) {
	hardLocked, ok := featureLockPolicy[feature]
	if !ok || !hardLocked {
		return false, nil
	}
	subscribed, err := e.IsSubscribed()
	if err != nil {
		return false, err
	}
	if subscribed {
		return false, nil
	}
	left, err := e.TrialDaysLeft()
	if err != nil {
		return false, err
	}
	return left <= 0, nil
}

// ShouldPromptSubscription reports whether the advisory monetization
// prompt should be surfaced: trial expired and not subscribed. Access
// itself is not blocked for advisory features.
func (e *Engine) ShouldPromptSubscription() (bool, error) {
	subscribed, err := e.IsSubscribed()
	if err != nil {
		return false, err
	}
	if subscribed {
		return false, nil
	}
	left, err := e.TrialDaysLeft()
	if err != nil {
		return false, err
	}
	return left <= 0, nil
}
