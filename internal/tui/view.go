package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.headerView())
	b.WriteString("\n")
	b.WriteString(m.tabsView())
	b.WriteString("\n\n")

	switch m.tab {
	case tabRoutine:
		b.WriteString(m.routineView())
	case tabMeals:
		b.WriteString(m.mealsView())
	case tabProgress:
		b.WriteString(m.progressView())
	}

	if m.errMsg != "" {
		b.WriteString("\n" + warningStyle.Render(m.errMsg))
	}

	b.WriteString("\n\n" + m.help.View(m.keys))
	return docStyle.Render(b.String())
}

func (m Model) headerView() string {
	title := titleStyle.Render(fmt.Sprintf("🐝 wellbee — hi %s!", m.profile.Name))
	var status string
	switch {
	case m.subscribed:
		status = "⭐ subscribed"
	case m.trialLeft > 0:
		status = fmt.Sprintf("day %d · %d trial days left", m.trialDay, m.trialLeft)
	default:
		status = warningStyle.Render("trial ended — run 'wellbee subscribe'")
	}
	line := title + "  " + inactiveTabStyle.Render(status)
	if m.cheatDay {
		line += "  🎉 cheat day"
	}
	return line
}

func (m Model) tabsView() string {
	parts := make([]string, 0, int(tabCount))
	for t := tabRoutine; t < tabCount; t++ {
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render(t.title()))
		} else {
			parts = append(parts, inactiveTabStyle.Render(t.title()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) routineView() string {
	var b strings.Builder
	for i, item := range m.tasks {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		marker := "[ ]"
		line := fmt.Sprintf("%s %s  %s", marker, item.Time, item.Title)
		switch {
		case m.completed[item.ID]:
			marker = "[x]"
			line = doneStyle.Render(fmt.Sprintf("%s %s  %s", marker, item.Time, item.Title))
		case !m.canProceed[item.ID]:
			marker = "[!]"
			line = lockedStyle.Render(fmt.Sprintf("%s %s  %s  (locked)", marker, item.Time, item.Title))
		}

		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	// The count can exceed the target after the water goal shrank mid-day;
	// cap the bar at the target and let the numbers show the overflow.
	filled := m.water
	if filled > m.target {
		filled = m.target
	}
	b.WriteString(waterStyle.Render(fmt.Sprintf("💧 %s%s  %d/%d glasses",
		strings.Repeat("●", filled),
		strings.Repeat("○", m.target-filled),
		m.water, m.target)))
	return b.String()
}

func (m Model) mealsView() string {
	var b strings.Builder
	for _, row := range m.meals {
		name := row.Meal.Name
		if row.Swapped {
			name += inactiveTabStyle.Render(" (swapped)")
		}
		b.WriteString(fmt.Sprintf("%s  %-13s %s\n", row.Meal.Time, row.Slot, name))
		for _, item := range row.Meal.Items {
			b.WriteString(inactiveTabStyle.Render("    - "+item) + "\n")
		}
	}
	return b.String()
}

func (m Model) progressView() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Date:        %s\n", m.progress.Date))
	b.WriteString(fmt.Sprintf("Tasks:       %d/%d\n", m.progress.TasksCompleted, m.progress.TotalTasks))
	b.WriteString(fmt.Sprintf("Water:       %d/%d glasses\n", m.progress.WaterGlasses, m.target))
	workout := "not yet"
	if m.progress.WorkoutDone {
		workout = "done ✓"
	}
	b.WriteString(fmt.Sprintf("Workout:     %s\n", workout))
	b.WriteString(fmt.Sprintf("Meals eaten: %d/3\n", m.progress.MealsFollowed))
	b.WriteString(fmt.Sprintf("Cheat days:  %d left this month\n", m.cheatLeft))
	return b.String()
}
