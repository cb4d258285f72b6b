package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil

		case key.Matches(msg, m.keys.NextTab):
			m.tab = (m.tab + 1) % tabCount
			return m, nil

		case key.Matches(msg, m.keys.PrevTab):
			m.tab = (m.tab + tabCount - 1) % tabCount
			return m, nil

		case key.Matches(msg, m.keys.Up):
			if m.tab == tabRoutine && m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.tab == tabRoutine && m.cursor < len(m.tasks)-1 {
				m.cursor++
			}
			return m, nil

		case key.Matches(msg, m.keys.Toggle):
			if m.tab == tabRoutine && m.cursor < len(m.tasks) {
				if _, err := m.engine.ToggleTask(m.tasks[m.cursor].ID); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
				m.refresh()
			}
			return m, nil

		case key.Matches(msg, m.keys.Water):
			if _, err := m.engine.AddWater(); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.refresh()
			return m, nil

		case key.Matches(msg, m.keys.CheatDay):
			if _, err := m.engine.UseCheatDay("Dashboard"); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.refresh()
			return m, nil
		}
	}

	return m, nil
}
