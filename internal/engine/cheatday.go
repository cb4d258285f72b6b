package engine

import (
	"time"

	"github.com/natjohn/wellbee/internal/constants"
	"github.com/natjohn/wellbee/internal/models"
)

// CheatDays returns the full ledger. Entries are append-only: never edited
// or removed by any operation.
func (e *Engine) CheatDays() ([]models.CheatDay, error) {
	return e.store.GetCheatDays()
}

// CheatDaysRemainingThisMonth returns the quota left for the current
// calendar month. Entries are grouped by their own date field; the month
// window is evaluated against wall-clock now.
func (e *Engine) CheatDaysRemainingThisMonth() (int, error) {
	entries, err := e.store.GetCheatDays()
	if err != nil {
		return 0, err
	}
	now := e.clk.Now()
	used := 0
	for _, cd := range entries {
		d, err := time.ParseInLocation(constants.DateFormat, cd.Date, now.Location())
		if err != nil {
			continue
		}
		if d.Year() == now.Year() && d.Month() == now.Month() {
			used++
		}
	}
	remaining := constants.MaxCheatDaysPerMonth - used
	if remaining < 0 {
		remaining = 0
	}
	return remaining, nil
}

// IsCheatDayToday reports whether a ledger entry exists for today. An
// active cheat day suspends routine gating for the whole calendar date.
func (e *Engine) IsCheatDayToday() (bool, error) {
	entries, err := e.store.GetCheatDays()
	if err != nil {
		return false, err
	}
	today := e.Today()
	for _, cd := range entries {
		if cd.Date == today {
			return true, nil
		}
	}
	return false, nil
}

// UseCheatDay appends a ledger entry for today. It reports false without
// mutating anything when the monthly quota is exhausted or today is
// already a cheat day. Using a cheat day is one-way for that date.
// The reason text is free-form and unvalidated.
func (e *Engine) UseCheatDay(reason string) (bool, error) {
	remaining, err := e.CheatDaysRemainingThisMonth()
	if err != nil {
		return false, err
	}
	if remaining <= 0 {
		return false, nil
	}
	active, err := e.IsCheatDayToday()
	if err != nil {
		return false, err
	}
	if active {
		return false, nil
	}

	entries, err := e.store.GetCheatDays()
	if err != nil {
		return false, err
	}
	entries = append(entries, models.CheatDay{Date: e.Today(), Reason: reason})
	if err := e.store.SaveCheatDays(entries); err != nil {
		return false, err
	}
	return true, nil
}
