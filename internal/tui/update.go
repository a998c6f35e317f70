package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case CatalogLoadedMsg:
		m.loading = false
		m.catalog = msg.Catalog
		m.selected = 0
		m.recalculate()
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil
	}
	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Tab):
		m.setFocus((m.focus + 1) % focusCount)
		return m, nil
	}

	if m.catalog == nil {
		return m, nil
	}

	switch m.focus {
	case FocusPositions:
		switch {
		case key.Matches(msg, m.keys.Up):
			if m.selected > 0 {
				m.selected--
			}
		case key.Matches(msg, m.keys.Down):
			if m.selected < len(m.catalog.Positions)-1 {
				m.selected++
			}
		}
	case FocusPerformance:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.performance.Decrement()
		case key.Matches(msg, m.keys.Right):
			m.performance.Increment()
		}
	case FocusDeductions:
		switch {
		case key.Matches(msg, m.keys.Up):
			m.deductions.Up()
		case key.Matches(msg, m.keys.Down):
			m.deductions.Down()
		case key.Matches(msg, m.keys.Left):
			m.deductions.Adjust(-1)
		case key.Matches(msg, m.keys.Right):
			m.deductions.Adjust(1)
		case key.Matches(msg, m.keys.Toggle):
			m.deductions.Toggle()
		}
	}

	m.recalculate()
	return m, nil
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	m.performance.IsFocused = f == FocusPerformance
	m.deductions.IsFocused = f == FocusDeductions
}
