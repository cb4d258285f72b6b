package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/natjohn/wellbee/internal/engine"
	"github.com/natjohn/wellbee/internal/models"
)

type tab int

const (
	tabRoutine tab = iota
	tabMeals
	tabProgress
	tabCount
)

func (t tab) title() string {
	switch t {
	case tabRoutine:
		return "Routine"
	case tabMeals:
		return "Meals"
	case tabProgress:
		return "Progress"
	}
	return ""
}

// Model is the dashboard state. All wellness data is read from the engine
// on every refresh; the model itself only holds presentation state.
type Model struct {
	engine *engine.Engine
	keys   KeyMap
	help   help.Model

	tab    tab
	cursor int

	profile    models.UserProfile
	tasks      []models.RoutineItem
	completed  map[string]bool
	canProceed map[string]bool
	water      int
	target     int
	cheatDay   bool
	subscribed bool
	trialDay   int
	trialLeft  int

	meals     []mealRow
	progress  models.DailyProgress
	cheatLeft int

	errMsg   string
	quitting bool
	width    int
	height   int
}

type mealRow struct {
	Slot    models.MealSlot
	Meal    models.Meal
	Swapped bool
}

func NewModel(eng *engine.Engine) Model {
	m := Model{
		engine: eng,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

// refresh re-reads everything the dashboard shows. Day rollover is handled
// by the engine's lazy reconciliation, so a refresh after midnight simply
// shows the fresh day.
func (m *Model) refresh() {
	m.errMsg = ""

	profile, err := m.engine.Profile()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.profile = profile

	tasks, err := m.engine.TaskList()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.tasks = tasks

	m.completed = make(map[string]bool, len(tasks))
	m.canProceed = make(map[string]bool, len(tasks))
	for _, item := range tasks {
		done, err := m.engine.IsCompleted(item.ID)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		can, err := m.engine.CanProceed(item.ID)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		m.completed[item.ID] = done
		m.canProceed[item.ID] = can
	}

	if m.water, err = m.engine.WaterGlasses(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if m.target, err = m.engine.WaterTarget(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if m.cheatDay, err = m.engine.IsCheatDayToday(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if m.cheatLeft, err = m.engine.CheatDaysRemainingThisMonth(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if m.subscribed, err = m.engine.IsSubscribed(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if m.trialDay, err = m.engine.CurrentDay(); err != nil {
		m.errMsg = err.Error()
		return
	}
	if m.trialLeft, err = m.engine.TrialDaysLeft(); err != nil {
		m.errMsg = err.Error()
		return
	}

	swapped, err := m.engine.SwappedMeals()
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.meals = m.meals[:0]
	for _, slot := range models.MealSlots {
		meal, err := m.engine.EffectiveMeal(slot)
		if err != nil {
			m.errMsg = err.Error()
			return
		}
		_, isSwapped := swapped[string(slot)]
		m.meals = append(m.meals, mealRow{Slot: slot, Meal: meal, Swapped: isSwapped})
	}

	if m.progress, err = m.engine.Progress(); err != nil {
		m.errMsg = err.Error()
		return
	}

	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}
