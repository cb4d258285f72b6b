package clock

import (
	"time"

	"github.com/natjohn/wellbee/internal/constants"
)

// Clock abstracts wall-clock time so day-boundary logic can be tested with
// a fixed "now".
type Clock interface {
	Now() time.Time
}

// System reads the real local clock.
type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always reports the same instant. Intended for tests.
type Fixed struct {
	Time time.Time
}

func (f Fixed) Now() time.Time {
	return f.Time
}

// Today returns the local calendar date as a stable YYYY-MM-DD key.
// A day boundary is whatever the local calendar date changes to at
// evaluation time; DST and manual clock adjustments are not compensated
// for. Known limitation, accepted.
func Today(c Clock) string {
	return c.Now().Format(constants.DateFormat)
}

// DaysSince returns the number of whole 24h periods elapsed since start.
// Negative elapsed time (clock moved backwards past start) reports 0.
func DaysSince(c Clock, start time.Time) int {
	elapsed := c.Now().Sub(start)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}
