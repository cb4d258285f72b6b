package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natjohn/wellbee/internal/logger"
	"github.com/natjohn/wellbee/internal/models"
)

// document is the on-disk shape of the JSON store: one record per field,
// mirroring the SQLite key/value rows.
type document struct {
	Version            int                 `json:"version"`
	Profile            *models.UserProfile `json:"profile,omitempty"`
	Onboarded          bool                `json:"onboarded"`
	CompletedTasks     []string            `json:"completedTasks"`
	CompletedTasksDate string              `json:"completedTasksDate"`
	WaterGlasses       int                 `json:"waterGlasses"`
	WaterGlassesDate   string              `json:"waterGlassesDate"`
	TrialStart         string              `json:"trialStart,omitempty"` // RFC3339
	Subscribed         bool                `json:"subscribed"`
	CheatDaysUsed      []models.CheatDay   `json:"cheatDaysUsed"`
	SwappedMeals       map[string]int      `json:"swappedMeals"`
	SwappedMealsDate   string              `json:"swappedMealsDate"`
}

// JSONStore is the single-file fallback store, selected by a .json config
// path. Writes are whole-document, last write wins.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = emptyDocument()
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'wellbee init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		// Fail safe: a corrupt file degrades to defaults instead of
		// blocking startup.
		logger.Warn("Storage file corrupt, starting from defaults", "path", s.path, "error", err)
		doc = emptyDocument()
	}
	if doc.CompletedTasks == nil {
		doc.CompletedTasks = []string{}
	}
	if doc.CheatDaysUsed == nil {
		doc.CheatDaysUsed = []models.CheatDay{}
	}
	if doc.SwappedMeals == nil {
		doc.SwappedMeals = make(map[string]int)
	}
	s.doc = doc

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}

func emptyDocument() *document {
	return &document{
		Version:        schemaVersion,
		CompletedTasks: []string{},
		CheatDaysUsed:  []models.CheatDay{},
		SwappedMeals:   make(map[string]int),
	}
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetProfile() (models.UserProfile, bool, error) {
	if err := s.loaded(); err != nil {
		return models.UserProfile{}, false, err
	}
	if s.doc.Profile == nil {
		return models.UserProfile{}, false, nil
	}
	return *s.doc.Profile, true, nil
}

func (s *JSONStore) SaveProfile(p models.UserProfile) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Profile = &p
	return s.save()
}

func (s *JSONStore) IsOnboarded() (bool, error) {
	if err := s.loaded(); err != nil {
		return false, err
	}
	return s.doc.Onboarded, nil
}

func (s *JSONStore) SetOnboarded(v bool) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Onboarded = v
	return s.save()
}

func (s *JSONStore) GetCompletedTasks() ([]string, string, error) {
	if err := s.loaded(); err != nil {
		return nil, "", err
	}
	return s.doc.CompletedTasks, s.doc.CompletedTasksDate, nil
}

func (s *JSONStore) SaveCompletedTasks(ids []string, dateKey string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if ids == nil {
		ids = []string{}
	}
	s.doc.CompletedTasks = ids
	s.doc.CompletedTasksDate = dateKey
	return s.save()
}

func (s *JSONStore) GetWaterGlasses() (int, string, error) {
	if err := s.loaded(); err != nil {
		return 0, "", err
	}
	return s.doc.WaterGlasses, s.doc.WaterGlassesDate, nil
}

func (s *JSONStore) SaveWaterGlasses(count int, dateKey string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.WaterGlasses = count
	s.doc.WaterGlassesDate = dateKey
	return s.save()
}

func (s *JSONStore) GetTrialStart() (time.Time, bool, error) {
	if err := s.loaded(); err != nil {
		return time.Time{}, false, err
	}
	if s.doc.TrialStart == "" {
		return time.Time{}, false, nil
	}
	t, err := time.Parse(time.RFC3339, s.doc.TrialStart)
	if err != nil {
		logger.Warn("Discarding corrupt trial start instant", "value", s.doc.TrialStart, "error", err)
		return time.Time{}, false, nil
	}
	return t, true, nil
}

func (s *JSONStore) SetTrialStart(t time.Time) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.TrialStart = t.Format(time.RFC3339)
	return s.save()
}

func (s *JSONStore) GetSubscribed() (bool, error) {
	if err := s.loaded(); err != nil {
		return false, err
	}
	return s.doc.Subscribed, nil
}

func (s *JSONStore) SetSubscribed(v bool) error {
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Subscribed = v
	return s.save()
}

func (s *JSONStore) GetCheatDays() ([]models.CheatDay, error) {
	if err := s.loaded(); err != nil {
		return nil, err
	}
	return s.doc.CheatDaysUsed, nil
}

func (s *JSONStore) SaveCheatDays(entries []models.CheatDay) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if entries == nil {
		entries = []models.CheatDay{}
	}
	s.doc.CheatDaysUsed = entries
	return s.save()
}

func (s *JSONStore) GetSwappedMeals() (map[string]int, string, error) {
	if err := s.loaded(); err != nil {
		return nil, "", err
	}
	return s.doc.SwappedMeals, s.doc.SwappedMealsDate, nil
}

func (s *JSONStore) SaveSwappedMeals(swaps map[string]int, dateKey string) error {
	if err := s.loaded(); err != nil {
		return err
	}
	if swaps == nil {
		swaps = map[string]int{}
	}
	s.doc.SwappedMeals = swaps
	s.doc.SwappedMealsDate = dateKey
	return s.save()
}
