package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/natjohn/wellbee/internal/models"
)

func setupStores(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()

	stores := map[string]Provider{
		"sqlite": NewSQLiteStore(filepath.Join(dir, "wellbee.db")),
		"json":   NewJSONStore(filepath.Join(dir, "wellbee.json")),
	}
	for name, s := range stores {
		if err := s.Init(); err != nil {
			t.Fatalf("%s init: %v", name, err)
		}
		if err := s.Load(); err != nil {
			t.Fatalf("%s load: %v", name, err)
		}
		t.Cleanup(func() { s.Close() })
	}
	return stores
}

func TestProfileRoundTrip(t *testing.T) {
	for name, store := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.GetProfile(); err != nil || ok {
				t.Fatalf("fresh store: ok=%v err=%v, want absent", ok, err)
			}

			p := models.UserProfile{
				Name: "Ravi", Age: 34, Gender: models.GenderMale,
				HeightCm: 178, WeightKg: 82,
				ActivityLevel: models.ActivityLow, Goal: models.GoalLoseWeight,
			}
			if err := store.SaveProfile(p); err != nil {
				t.Fatal(err)
			}
			got, ok, err := store.GetProfile()
			if err != nil || !ok {
				t.Fatalf("ok=%v err=%v", ok, err)
			}
			if got != p {
				t.Errorf("profile = %+v, want %+v", got, p)
			}
		})
	}
}

func TestDayScopedRecords(t *testing.T) {
	for name, store := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.SaveCompletedTasks([]string{"wake-up", "breakfast"}, "2025-06-10"); err != nil {
				t.Fatal(err)
			}
			ids, date, err := store.GetCompletedTasks()
			if err != nil {
				t.Fatal(err)
			}
			if len(ids) != 2 || date != "2025-06-10" {
				t.Errorf("got %v @ %s", ids, date)
			}

			if err := store.SaveWaterGlasses(7, "2025-06-10"); err != nil {
				t.Fatal(err)
			}
			count, date, err := store.GetWaterGlasses()
			if err != nil {
				t.Fatal(err)
			}
			if count != 7 || date != "2025-06-10" {
				t.Errorf("water = %d @ %s", count, date)
			}

			if err := store.SaveSwappedMeals(map[string]int{"breakfast": 1}, "2025-06-10"); err != nil {
				t.Fatal(err)
			}
			swaps, date, err := store.GetSwappedMeals()
			if err != nil {
				t.Fatal(err)
			}
			if swaps["breakfast"] != 1 || date != "2025-06-10" {
				t.Errorf("swaps = %v @ %s", swaps, date)
			}
		})
	}
}

func TestCheatDayLedgerRoundTrip(t *testing.T) {
	for name, store := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			entries, err := store.GetCheatDays()
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Fatalf("fresh ledger = %v, want empty", entries)
			}

			entries = append(entries, models.CheatDay{Date: "2025-06-10", Reason: "birthday"})
			if err := store.SaveCheatDays(entries); err != nil {
				t.Fatal(err)
			}
			got, err := store.GetCheatDays()
			if err != nil {
				t.Fatal(err)
			}
			if len(got) != 1 || got[0].Reason != "birthday" {
				t.Errorf("ledger = %v", got)
			}
		})
	}
}

func TestTrialStartAndSubscription(t *testing.T) {
	for name, store := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.GetTrialStart(); err != nil || ok {
				t.Fatalf("fresh store: ok=%v err=%v, want absent", ok, err)
			}

			start := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
			if err := store.SetTrialStart(start); err != nil {
				t.Fatal(err)
			}
			got, ok, err := store.GetTrialStart()
			if err != nil || !ok {
				t.Fatalf("ok=%v err=%v", ok, err)
			}
			if !got.Equal(start) {
				t.Errorf("trial start = %v, want %v", got, start)
			}

			if err := store.SetSubscribed(true); err != nil {
				t.Fatal(err)
			}
			sub, err := store.GetSubscribed()
			if err != nil {
				t.Fatal(err)
			}
			if !sub {
				t.Error("subscribed flag not persisted")
			}
		})
	}
}

func TestJSONStoreCorruptFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wellbee.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("corrupt file should not block startup: %v", err)
	}
	if onboarded, err := store.IsOnboarded(); err != nil || onboarded {
		t.Errorf("onboarded = %v, err = %v; want defaults", onboarded, err)
	}
}

func TestInitRefusesExistingStore(t *testing.T) {
	for name, store := range setupStores(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Init(); err == nil {
				t.Error("second init should fail on an existing store")
			}
		})
	}
}

func TestNewSelectsStoreByPath(t *testing.T) {
	if _, ok := New("/tmp/x/wellbee.json").(*JSONStore); !ok {
		t.Error("expected JSON store for .json path")
	}
	if _, ok := New("/tmp/x/wellbee.db").(*SQLiteStore); !ok {
		t.Error("expected SQLite store for .db path")
	}
}
