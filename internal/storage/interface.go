package storage

import (
	"strings"
	"time"

	"github.com/natjohn/wellbee/internal/models"
)

// Provider is the durable local store for all persisted engine state.
// Each record is independent; there is no transactional grouping across
// records and cross-session ordering is last-write-wins.
//
// Day-scoped records (completed tasks, water glasses, swapped meals) are
// stored together with the date-key they belong to; the engine compares
// that key against today and resets stale state. Missing or corrupt
// records degrade to zero values rather than failing.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile / onboarding
	GetProfile() (models.UserProfile, bool, error)
	SaveProfile(models.UserProfile) error
	IsOnboarded() (bool, error)
	SetOnboarded(bool) error

	// Completed tasks, scoped to the stored date-key
	GetCompletedTasks() ([]string, string, error)
	SaveCompletedTasks(ids []string, dateKey string) error

	// Water glasses, scoped to the stored date-key
	GetWaterGlasses() (int, string, error)
	SaveWaterGlasses(count int, dateKey string) error

	// Trial clock. GetTrialStart reports false when no start instant has
	// been recorded yet.
	GetTrialStart() (time.Time, bool, error)
	SetTrialStart(time.Time) error

	// Subscription flag
	GetSubscribed() (bool, error)
	SetSubscribed(bool) error

	// Cheat day ledger, append-only by convention: callers only ever save
	// a superset of what they loaded.
	GetCheatDays() ([]models.CheatDay, error)
	SaveCheatDays([]models.CheatDay) error

	// Swapped meals (slot key -> alternative index), scoped to the stored
	// date-key
	GetSwappedMeals() (map[string]int, string, error)
	SaveSwappedMeals(swaps map[string]int, dateKey string) error

	// Utils
	GetConfigPath() string
}

// Record keys. The SQLite and JSON stores persist the same logical records.
const (
	keyProfile            = "profile"
	keyOnboarded          = "onboarded"
	keyCompletedTasks     = "completedTasks"
	keyCompletedTasksDate = "completedTasksDate"
	keyWaterGlasses       = "waterGlasses"
	keyWaterGlassesDate   = "waterGlassesDate"
	keyTrialStart         = "trialStart"
	keySubscribed         = "subscribed"
	keyCheatDaysUsed      = "cheatDaysUsed"
	keySwappedMeals       = "swappedMeals"
	keySwappedMealsDate   = "swappedMealsDate"
)

// New returns a store for the given config path: a JSON document store for
// .json paths, SQLite otherwise.
func New(path string) Provider {
	if strings.HasSuffix(path, ".json") {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
