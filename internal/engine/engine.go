// Package engine owns all per-day wellness state: task completion,
// hydration, meal substitutions, the cheat day ledger, and the trial
// clock. It is the single ownership root for mutation; presentation
// layers hold a reference and go through named operations only.
//
// Day-scoped stores reset lazily: every accessor first reconciles its
// stored date-key against today and clears stale state. There is no
// midnight timer.
package engine

import (
	"errors"

	"github.com/natjohn/wellbee/internal/clock"
	"github.com/natjohn/wellbee/internal/models"
	"github.com/natjohn/wellbee/internal/routine"
	"github.com/natjohn/wellbee/internal/storage"
)

// ErrNotOnboarded is returned by operations that need a profile before one
// has been created.
var ErrNotOnboarded = errors.New("no profile found, run 'wellbee onboard' first")

// Engine is the application state root. Single-session model: no internal
// locking, every operation is a synchronous read-modify-persist sequence.
type Engine struct {
	store storage.Provider
	clk   clock.Clock

	profile *models.UserProfile
	routine *models.DailyRoutine
}

// New builds an engine over a loaded store. The trial start instant is
// recorded on first run and never overwritten afterwards.
func New(store storage.Provider, clk clock.Clock) (*Engine, error) {
	e := &Engine{store: store, clk: clk}

	profile, ok, err := store.GetProfile()
	if err != nil {
		return nil, err
	}
	if ok {
		e.profile = &profile
		r := routine.Generate(profile)
		e.routine = &r
	}

	if _, ok, err := store.GetTrialStart(); err != nil {
		return nil, err
	} else if !ok {
		if err := store.SetTrialStart(clk.Now()); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// Today returns the canonical date key for the current local calendar day.
func (e *Engine) Today() string {
	return clock.Today(e.clk)
}

// Onboarded reports whether onboarding has been completed.
func (e *Engine) Onboarded() (bool, error) {
	return e.store.IsOnboarded()
}

// Profile returns the stored profile, or ErrNotOnboarded.
func (e *Engine) Profile() (models.UserProfile, error) {
	if e.profile == nil {
		return models.UserProfile{}, ErrNotOnboarded
	}
	return *e.profile, nil
}

// SetProfile persists a new profile, regenerates the routine, and marks
// onboarding complete. Re-onboarding overwrites the previous profile.
func (e *Engine) SetProfile(p models.UserProfile) error {
	if err := e.store.SaveProfile(p); err != nil {
		return err
	}
	if err := e.store.SetOnboarded(true); err != nil {
		return err
	}
	e.profile = &p
	r := routine.Generate(p)
	e.routine = &r
	return nil
}

// Routine returns today's derived routine, or ErrNotOnboarded.
func (e *Engine) Routine() (models.DailyRoutine, error) {
	if e.routine == nil {
		return models.DailyRoutine{}, ErrNotOnboarded
	}
	return *e.routine, nil
}

// TaskList returns today's combined ordered task list, or ErrNotOnboarded.
func (e *Engine) TaskList() ([]models.RoutineItem, error) {
	if e.routine == nil {
		return nil, ErrNotOnboarded
	}
	return routine.TaskList(*e.routine), nil
}

// Progress computes today's presentation snapshot. Derived state is
// recomputed on every access, never cached.
func (e *Engine) Progress() (models.DailyProgress, error) {
	tasks, err := e.TaskList()
	if err != nil {
		return models.DailyProgress{}, err
	}
	completed, err := e.CompletedTasks()
	if err != nil {
		return models.DailyProgress{}, err
	}
	water, err := e.WaterGlasses()
	if err != nil {
		return models.DailyProgress{}, err
	}

	set := make(map[string]bool, len(completed))
	for _, id := range completed {
		set[id] = true
	}
	meals := 0
	for _, id := range []string{routine.TaskBreakfast, routine.TaskLunch, routine.TaskDinner} {
		if set[id] {
			meals++
		}
	}

	return models.DailyProgress{
		Date:           e.Today(),
		TasksCompleted: len(completed),
		TotalTasks:     len(tasks),
		WaterGlasses:   water,
		WorkoutDone:    set[routine.TaskWorkout],
		MealsFollowed:  meals,
	}, nil
}

// ChatContext assembles the snapshot of facts handed to the assistant
// collaborator. The engine supplies context and never interprets replies.
func (e *Engine) ChatContext() (models.ChatContext, error) {
	if e.profile == nil || e.routine == nil {
		return models.ChatContext{}, ErrNotOnboarded
	}
	return models.ChatContext{
		UserName:        e.profile.Name,
		Goal:            string(e.profile.Goal),
		ActivityLevel:   string(e.profile.ActivityLevel),
		WakeUpTime:      e.routine.WakeUpTime,
		BedTime:         e.routine.BedTime,
		WaterIntake:     e.routine.WaterIntake,
		WorkoutName:     e.routine.Workout.Name,
		WorkoutDuration: e.routine.Workout.Duration,
	}, nil
}
