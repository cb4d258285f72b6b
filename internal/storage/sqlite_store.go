package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/natjohn/wellbee/internal/logger"
	"github.com/natjohn/wellbee/internal/models"
)

// schemaVersion is bumped whenever the state table layout changes.
const schemaVersion = 1

// SQLiteStore persists each record as a JSON-encoded value in a single
// key/value table.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create state table: %w", err)
	}
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_info (
		version INTEGER NOT NULL
	)`); err != nil {
		return fmt.Errorf("failed to create schema_info table: %w", err)
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM schema_info").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if _, err := s.db.Exec("INSERT INTO schema_info (version) VALUES (?)", schemaVersion); err != nil {
			return err
		}
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'wellbee init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	var version int
	if err := s.db.QueryRow("SELECT version FROM schema_info LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if version > schemaVersion {
		return fmt.Errorf("storage schema version %d is newer than supported version %d", version, schemaVersion)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

// get decodes the named record into out. It reports false with no error
// when the record does not exist, and degrades corrupt records to absent
// so a damaged file never blocks startup.
func (s *SQLiteStore) get(key string, out any) (bool, error) {
	if s.db == nil {
		return false, fmt.Errorf("storage not loaded")
	}
	var raw string
	err := s.db.QueryRow("SELECT value FROM state WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn("Discarding corrupt record", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func (s *SQLiteStore) set(pairs map[string]any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare("INSERT OR REPLACE INTO state (key, value) VALUES (?, ?)")
	if err != nil {
		return err
	}
	defer stmt.Close()

	for key, val := range pairs {
		raw, err := json.Marshal(val)
		if err != nil {
			return fmt.Errorf("failed to serialize %s: %w", key, err)
		}
		if _, err := stmt.Exec(key, string(raw)); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) GetProfile() (models.UserProfile, bool, error) {
	var p models.UserProfile
	ok, err := s.get(keyProfile, &p)
	return p, ok, err
}

func (s *SQLiteStore) SaveProfile(p models.UserProfile) error {
	return s.set(map[string]any{keyProfile: p})
}

func (s *SQLiteStore) IsOnboarded() (bool, error) {
	var v bool
	_, err := s.get(keyOnboarded, &v)
	return v, err
}

func (s *SQLiteStore) SetOnboarded(v bool) error {
	return s.set(map[string]any{keyOnboarded: v})
}

func (s *SQLiteStore) GetCompletedTasks() ([]string, string, error) {
	var ids []string
	if _, err := s.get(keyCompletedTasks, &ids); err != nil {
		return nil, "", err
	}
	var dateKey string
	if _, err := s.get(keyCompletedTasksDate, &dateKey); err != nil {
		return nil, "", err
	}
	return ids, dateKey, nil
}

func (s *SQLiteStore) SaveCompletedTasks(ids []string, dateKey string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.set(map[string]any{
		keyCompletedTasks:     ids,
		keyCompletedTasksDate: dateKey,
	})
}

func (s *SQLiteStore) GetWaterGlasses() (int, string, error) {
	var count int
	if _, err := s.get(keyWaterGlasses, &count); err != nil {
		return 0, "", err
	}
	var dateKey string
	if _, err := s.get(keyWaterGlassesDate, &dateKey); err != nil {
		return 0, "", err
	}
	return count, dateKey, nil
}

func (s *SQLiteStore) SaveWaterGlasses(count int, dateKey string) error {
	return s.set(map[string]any{
		keyWaterGlasses:     count,
		keyWaterGlassesDate: dateKey,
	})
}

func (s *SQLiteStore) GetTrialStart() (time.Time, bool, error) {
	var raw string
	ok, err := s.get(keyTrialStart, &raw)
	if err != nil || !ok {
		return time.Time{}, false, err
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		logger.Warn("Discarding corrupt trial start instant", "value", raw, "error", err)
		return time.Time{}, false, nil
	}
	return t, true, nil
}

func (s *SQLiteStore) SetTrialStart(t time.Time) error {
	return s.set(map[string]any{keyTrialStart: t.Format(time.RFC3339)})
}

func (s *SQLiteStore) GetSubscribed() (bool, error) {
	var v bool
	_, err := s.get(keySubscribed, &v)
	return v, err
}

func (s *SQLiteStore) SetSubscribed(v bool) error {
	return s.set(map[string]any{keySubscribed: v})
}

func (s *SQLiteStore) GetCheatDays() ([]models.CheatDay, error) {
	var entries []models.CheatDay
	_, err := s.get(keyCheatDaysUsed, &entries)
	return entries, err
}

func (s *SQLiteStore) SaveCheatDays(entries []models.CheatDay) error {
	if entries == nil {
		entries = []models.CheatDay{}
	}
	return s.set(map[string]any{keyCheatDaysUsed: entries})
}

func (s *SQLiteStore) GetSwappedMeals() (map[string]int, string, error) {
	var swaps map[string]int
	if _, err := s.get(keySwappedMeals, &swaps); err != nil {
		return nil, "", err
	}
	var dateKey string
	if _, err := s.get(keySwappedMealsDate, &dateKey); err != nil {
		return nil, "", err
	}
	if swaps == nil {
		swaps = make(map[string]int)
	}
	return swaps, dateKey, nil
}

func (s *SQLiteStore) SaveSwappedMeals(swaps map[string]int, dateKey string) error {
	if swaps == nil {
		swaps = map[string]int{}
	}
	return s.set(map[string]any{
		keySwappedMeals:     swaps,
		keySwappedMealsDate: dateKey,
	})
}
