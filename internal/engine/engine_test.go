package engine

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/natjohn/wellbee/internal/clock"
	"github.com/natjohn/wellbee/internal/models"
	"github.com/natjohn/wellbee/internal/routine"
	"github.com/natjohn/wellbee/internal/storage"
)

var testProfile = models.UserProfile{
	Name:          "Asha",
	Age:           29,
	Gender:        models.GenderFemale,
	HeightCm:      165,
	WeightKg:      60,
	ActivityLevel: models.ActivityHigh,
	Goal:          models.GoalMotivation,
}

// newTestStore initializes a JSON store in a temp dir and returns its path
// so tests can re-open it to simulate a later session.
func newTestStore(t *testing.T) (storage.Provider, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wellbee.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	return store, path
}

func reopenStore(t *testing.T, path string) storage.Provider {
	t.Helper()
	store := storage.NewJSONStore(path)
	if err := store.Load(); err != nil {
		t.Fatalf("failed to reload store: %v", err)
	}
	return store
}

func newTestEngine(t *testing.T, store storage.Provider, now time.Time) *Engine {
	t.Helper()
	e, err := New(store, clock.Fixed{Time: now})
	if err != nil {
		t.Fatalf("failed to build engine: %v", err)
	}
	return e
}

func onboard(t *testing.T, e *Engine) {
	t.Helper()
	if err := e.SetProfile(testProfile); err != nil {
		t.Fatalf("failed to set profile: %v", err)
	}
}

func mustToggle(t *testing.T, e *Engine, id string) {
	t.Helper()
	changed, err := e.ToggleTask(id)
	if err != nil {
		t.Fatalf("toggle %s: %v", id, err)
	}
	if !changed {
		t.Fatalf("toggle %s was rejected", id)
	}
}

var baseTime = time.Date(2025, 6, 10, 9, 0, 0, 0, time.Local)

func TestToggleRespectsGating(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	// Lunch is gated behind breakfast and workout.
	changed, err := e.ToggleTask(routine.TaskLunch)
	if err != nil {
		t.Fatalf("toggle lunch: %v", err)
	}
	if changed {
		t.Error("lunch toggle should be rejected while breakfast is incomplete")
	}

	mustToggle(t, e, routine.TaskBreakfast)
	mustToggle(t, e, routine.TaskWorkout)
	mustToggle(t, e, routine.TaskLunch)

	done, err := e.IsCompleted(routine.TaskLunch)
	if err != nil {
		t.Fatal(err)
	}
	if !done {
		t.Error("lunch should be completed")
	}
}

func TestSkippableTasksNeverBlock(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	// Morning habits are skippable; breakfast must be completable with all
	// of them left undone.
	ok, err := e.CanProceed(routine.TaskBreakfast)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("breakfast should not be blocked by skippable habits")
	}

	// Evening habits sit after dinner; their own gating still checks the
	// required predecessors.
	ok, err = e.CanProceed("sleep")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("sleep should be blocked until all required meals are done")
	}
}

func TestUncompletingAlwaysAllowed(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	mustToggle(t, e, routine.TaskBreakfast)
	mustToggle(t, e, routine.TaskWorkout)
	mustToggle(t, e, routine.TaskLunch)

	// Un-completing breakfast is allowed even though lunch depends on it.
	mustToggle(t, e, routine.TaskBreakfast)
	done, err := e.IsCompleted(routine.TaskBreakfast)
	if err != nil {
		t.Fatal(err)
	}
	if done {
		t.Error("breakfast should be un-completed")
	}
}

func TestUnknownTaskFailsOpen(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	ok, err := e.CanProceed("no-such-task")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("unknown task ids should not be gated")
	}
}

func TestCheatDaySuspendsGating(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	used, err := e.UseCheatDay("pizza night")
	if err != nil {
		t.Fatal(err)
	}
	if !used {
		t.Fatal("cheat day use should succeed")
	}

	// Everything is completable out of order now.
	mustToggle(t, e, routine.TaskDinner)
	mustToggle(t, e, "sleep")
}

func TestCheatDayOncePerDate(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	first, err := e.UseCheatDay("")
	if err != nil {
		t.Fatal(err)
	}
	second, err := e.UseCheatDay("")
	if err != nil {
		t.Fatal(err)
	}
	if !first || second {
		t.Errorf("first = %v, second = %v; want true, false", first, second)
	}

	entries, err := e.CheatDays()
	if err != nil {
		t.Fatal(err)
	}
	today := e.Today()
	count := 0
	for _, cd := range entries {
		if cd.Date == today {
			count++
		}
	}
	if count != 1 {
		t.Errorf("ledger has %d entries for today, want 1", count)
	}
}

func TestCheatDayMonthlyQuota(t *testing.T) {
	store, path := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	if used, _ := e.UseCheatDay(""); !used {
		t.Fatal("first cheat day should succeed")
	}

	// Next day, same month: second use allowed, then quota exhausted.
	e = newTestEngine(t, reopenStore(t, path), baseTime.Add(24*time.Hour))
	if used, _ := e.UseCheatDay(""); !used {
		t.Fatal("second cheat day should succeed")
	}
	e = newTestEngine(t, reopenStore(t, path), baseTime.Add(48*time.Hour))
	if used, _ := e.UseCheatDay(""); used {
		t.Error("third cheat day in the same month should fail")
	}
	remaining, err := e.CheatDaysRemainingThisMonth()
	if err != nil {
		t.Fatal(err)
	}
	if remaining != 0 {
		t.Errorf("remaining = %d, want 0", remaining)
	}
}

func TestCheatDayQuotaResetsAtMonthBoundary(t *testing.T) {
	store, path := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	if used, _ := e.UseCheatDay(""); !used {
		t.Fatal("cheat day should succeed")
	}
	e = newTestEngine(t, reopenStore(t, path), baseTime.Add(24*time.Hour))
	if used, _ := e.UseCheatDay(""); !used {
		t.Fatal("second cheat day should succeed")
	}

	// Next calendar month: June entries no longer count.
	july := time.Date(2025, 7, 2, 9, 0, 0, 0, time.Local)
	e = newTestEngine(t, reopenStore(t, path), july)
	remaining, err := e.CheatDaysRemainingThisMonth()
	if err != nil {
		t.Fatal(err)
	}
	if remaining != 2 {
		t.Errorf("remaining in new month = %d, want 2", remaining)
	}
	if used, _ := e.UseCheatDay("new month"); !used {
		t.Error("cheat day in new month should succeed")
	}

	// The ledger itself never shrinks.
	entries, err := e.CheatDays()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("ledger has %d entries, want 3", len(entries))
	}
}

func TestWaterCappedAtTarget(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	// motivation baseline 10, high activity +2.
	target, err := e.WaterTarget()
	if err != nil {
		t.Fatal(err)
	}
	if target != 12 {
		t.Fatalf("water target = %d, want 12", target)
	}

	var count int
	for i := 0; i < 13; i++ {
		count, err = e.AddWater()
		if err != nil {
			t.Fatal(err)
		}
	}
	if count != 12 {
		t.Errorf("water after 13 adds = %d, want 12", count)
	}

	if err := e.ResetWater(); err != nil {
		t.Fatal(err)
	}
	count, err = e.WaterGlasses()
	if err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("water after reset = %d, want 0", count)
	}
}

func TestWaterCountSurvivesShrunkenTarget(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	for i := 0; i < 12; i++ {
		if _, err := e.AddWater(); err != nil {
			t.Fatal(err)
		}
	}

	// Re-onboarding to a lower activity level shrinks the target
	// (motivation baseline 10, low activity -1) but the day's count is
	// not rewritten.
	lowProfile := testProfile
	lowProfile.ActivityLevel = models.ActivityLow
	if err := e.SetProfile(lowProfile); err != nil {
		t.Fatal(err)
	}

	target, err := e.WaterTarget()
	if err != nil {
		t.Fatal(err)
	}
	if target != 9 {
		t.Fatalf("water target = %d, want 9", target)
	}

	count, err := e.WaterGlasses()
	if err != nil {
		t.Fatal(err)
	}
	if count != 12 {
		t.Fatalf("water count = %d, want 12", count)
	}

	// Over the target, adds stay no-ops and never mutate the count.
	count, err = e.AddWater()
	if err != nil {
		t.Fatal(err)
	}
	if count != 12 {
		t.Errorf("water after add over target = %d, want 12", count)
	}
}

func TestMealSwapAndReset(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	r, err := e.Routine()
	if err != nil {
		t.Fatal(err)
	}
	defaultMeal := r.Meals.Breakfast
	if len(defaultMeal.Alternatives) == 0 {
		t.Fatal("test requires a slot with alternatives")
	}

	if err := e.SwapMeal(models.SlotBreakfast, 0); err != nil {
		t.Fatal(err)
	}
	got, err := e.EffectiveMeal(models.SlotBreakfast)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != defaultMeal.Alternatives[0].Name {
		t.Errorf("effective meal = %q, want alternative %q", got.Name, defaultMeal.Alternatives[0].Name)
	}

	if err := e.ResetMealSwap(models.SlotBreakfast); err != nil {
		t.Fatal(err)
	}
	got, err = e.EffectiveMeal(models.SlotBreakfast)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != defaultMeal.Name {
		t.Errorf("effective meal after reset = %q, want default %q", got.Name, defaultMeal.Name)
	}
}

func TestSwapRejectsInvalidIndex(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	if err := e.SwapMeal(models.SlotBreakfast, 99); err == nil {
		t.Error("swap with out-of-range index should fail")
	}
	// Snacks carry empty alternatives lists; swapping is an error, not a
	// crash.
	if err := e.SwapMeal(models.SlotMorningSnack, 0); err == nil {
		t.Error("swap on a slot without alternatives should fail")
	}
}

func TestDayRolloverResetsDayScopedState(t *testing.T) {
	store, path := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	mustToggle(t, e, "wake-up")
	if _, err := e.AddWater(); err != nil {
		t.Fatal(err)
	}
	if err := e.SwapMeal(models.SlotBreakfast, 0); err != nil {
		t.Fatal(err)
	}

	// A later session on the next day observes empty state on first read.
	next := newTestEngine(t, reopenStore(t, path), baseTime.Add(24*time.Hour))

	completed, err := next.CompletedTasks()
	if err != nil {
		t.Fatal(err)
	}
	if len(completed) != 0 {
		t.Errorf("completed tasks after rollover = %v, want empty", completed)
	}
	water, err := next.WaterGlasses()
	if err != nil {
		t.Fatal(err)
	}
	if water != 0 {
		t.Errorf("water after rollover = %d, want 0", water)
	}
	swaps, err := next.SwappedMeals()
	if err != nil {
		t.Fatal(err)
	}
	if len(swaps) != 0 {
		t.Errorf("swaps after rollover = %v, want empty", swaps)
	}

	// The refreshed date-key was persisted by the reads above.
	_, dateKey, err := reopenStore(t, path).GetCompletedTasks()
	if err != nil {
		t.Fatal(err)
	}
	if dateKey != next.Today() {
		t.Errorf("persisted date-key = %q, want %q", dateKey, next.Today())
	}
}

func TestTrialClock(t *testing.T) {
	store, path := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	day, err := e.CurrentDay()
	if err != nil {
		t.Fatal(err)
	}
	if day != 1 {
		t.Errorf("current day at start = %d, want 1", day)
	}
	left, err := e.TrialDaysLeft()
	if err != nil {
		t.Fatal(err)
	}
	if left != 30 {
		t.Errorf("days left at start = %d, want 30", left)
	}

	// Day 30: last trial day, chat still unlocked.
	e = newTestEngine(t, reopenStore(t, path), baseTime.Add(29*24*time.Hour))
	day, _ = e.CurrentDay()
	left, _ = e.TrialDaysLeft()
	if day != 30 || left != 1 {
		t.Errorf("day 30: currentDay = %d, left = %d; want 30, 1", day, left)
	}
	locked, err := e.IsFeatureLocked("chat")
	if err != nil {
		t.Fatal(err)
	}
	if locked {
		t.Error("chat should be unlocked with one trial day left")
	}

	// One more elapsed day flips the lock with no user action.
	e = newTestEngine(t, reopenStore(t, path), baseTime.Add(30*24*time.Hour))
	day, _ = e.CurrentDay()
	left, _ = e.TrialDaysLeft()
	if day != 30 || left != 0 {
		t.Errorf("after trial: currentDay = %d, left = %d; want 30, 0", day, left)
	}
	locked, err = e.IsFeatureLocked("chat")
	if err != nil {
		t.Fatal(err)
	}
	if !locked {
		t.Error("chat should lock when the trial expires")
	}

	// The dashboard gate is advisory only.
	locked, err = e.IsFeatureLocked("dashboard")
	if err != nil {
		t.Fatal(err)
	}
	if locked {
		t.Error("dashboard should never hard-lock")
	}
	prompt, err := e.ShouldPromptSubscription()
	if err != nil {
		t.Fatal(err)
	}
	if !prompt {
		t.Error("subscribe prompt should be surfaced after trial expiry")
	}
}

func TestSubscriptionUnlocksEverything(t *testing.T) {
	store, path := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	if err := e.SetSubscribed(true); err != nil {
		t.Fatal(err)
	}

	// Long past the trial, nothing is locked.
	e = newTestEngine(t, reopenStore(t, path), baseTime.Add(90*24*time.Hour))
	locked, err := e.IsFeatureLocked("chat")
	if err != nil {
		t.Fatal(err)
	}
	if locked {
		t.Error("chat should stay unlocked for subscribers")
	}
	prompt, err := e.ShouldPromptSubscription()
	if err != nil {
		t.Fatal(err)
	}
	if prompt {
		t.Error("no subscribe prompt for subscribers")
	}
}

func TestTrialStartSetOnce(t *testing.T) {
	store, path := newTestStore(t)
	newTestEngine(t, store, baseTime)

	start1, ok, err := reopenStore(t, path).GetTrialStart()
	if err != nil || !ok {
		t.Fatalf("trial start not recorded: ok=%v err=%v", ok, err)
	}

	// A later session must not overwrite the instant.
	newTestEngine(t, reopenStore(t, path), baseTime.Add(10*24*time.Hour))
	start2, _, err := reopenStore(t, path).GetTrialStart()
	if err != nil {
		t.Fatal(err)
	}
	if !start1.Equal(start2) {
		t.Errorf("trial start changed from %v to %v", start1, start2)
	}
}

func TestProgressSnapshot(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)
	onboard(t, e)

	mustToggle(t, e, "wake-up")
	mustToggle(t, e, routine.TaskBreakfast)
	mustToggle(t, e, routine.TaskWorkout)
	if _, err := e.AddWater(); err != nil {
		t.Fatal(err)
	}

	p, err := e.Progress()
	if err != nil {
		t.Fatal(err)
	}
	if p.TasksCompleted != 3 {
		t.Errorf("TasksCompleted = %d, want 3", p.TasksCompleted)
	}
	if p.TotalTasks != 12 {
		t.Errorf("TotalTasks = %d, want 12", p.TotalTasks)
	}
	if !p.WorkoutDone {
		t.Error("WorkoutDone should be true")
	}
	if p.MealsFollowed != 1 {
		t.Errorf("MealsFollowed = %d, want 1", p.MealsFollowed)
	}
	if p.WaterGlasses != 1 {
		t.Errorf("WaterGlasses = %d, want 1", p.WaterGlasses)
	}
}

func TestOperationsRequireOnboarding(t *testing.T) {
	store, _ := newTestStore(t)
	e := newTestEngine(t, store, baseTime)

	if _, err := e.Routine(); err != ErrNotOnboarded {
		t.Errorf("Routine() error = %v, want ErrNotOnboarded", err)
	}
	if _, err := e.ChatContext(); err != ErrNotOnboarded {
		t.Errorf("ChatContext() error = %v, want ErrNotOnboarded", err)
	}
	if _, err := e.EffectiveMeal(models.SlotLunch); err != ErrNotOnboarded {
		t.Errorf("EffectiveMeal() error = %v, want ErrNotOnboarded", err)
	}
}
