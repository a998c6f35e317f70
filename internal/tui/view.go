package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jobcomp/jobcomp/internal/tui/components"
	"github.com/jobcomp/jobcomp/internal/tui/tuistyles"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("Chyba: "+m.err.Error()) + "\n\n" +
			tuistyles.SubtitleStyle.Render("q pro ukončení") + "\n"
	}
	if m.loading {
		return tuistyles.SubtitleStyle.Render("Načítám "+m.configPath+"...") + "\n"
	}
	if m.catalog == nil || len(m.catalog.Positions) == 0 {
		return tuistyles.SubtitleStyle.Render("Soubor neobsahuje žádné pozice") + "\n"
	}

	title := tuistyles.TitleStyle.Render("jobcomp · porovnání mezd")
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderPositions(),
		lipgloss.JoinVertical(lipgloss.Left, m.renderControls(), m.renderMetrics()),
	)
	return lipgloss.JoinVertical(lipgloss.Left, title, body, m.help.View(m.keys))
}

func (m Model) panel(f Focus) lipgloss.Style {
	if m.focus == f {
		return tuistyles.ActivePanelStyle
	}
	return tuistyles.PanelStyle
}

func (m Model) renderPositions() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.ParameterLabelStyle.Render("Pozice") + "\n")
	for i, p := range m.catalog.Positions {
		name := p.Name
		if c, ok := m.catalog.Company(p.CompanyID); ok {
			name += tuistyles.SubtitleStyle.Render(" · " + c.Name)
		}
		if i == m.selected {
			sb.WriteString(tuistyles.SelectedItemStyle.Render("> ") + name)
		} else {
			sb.WriteString("  " + name)
		}
		if i < len(m.catalog.Positions)-1 {
			sb.WriteString("\n")
		}
	}
	return m.panel(FocusPositions).Width(36).Render(sb.String())
}

func (m Model) renderControls() string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		m.panel(FocusPerformance).Render(m.performance.Render()),
		m.panel(FocusDeductions).Render(m.deductions.Render()),
	)
}

func (m Model) renderMetrics() string {
	s := m.salary
	cur := s.Current
	cards := []*components.MetricCard{
		components.NewMetricCard("Hrubá mzda", s.GrossCurrent).WithReference(s.GrossExpected, false),
		components.NewMetricCard("Čistá mzda", s.NetCurrent).WithReference(s.NetExpected, false),
		components.NewMetricCard("Pojištění", cur.Social.Add(cur.Health)),
		components.NewMetricCard("Daň po slevách", cur.TaxAfterCredits),
		components.NewMetricCard("Čistá min", s.NetMin),
		components.NewMetricCard("Čistá max", s.NetMax),
	}
	footer := tuistyles.SubtitleStyle.Render(fmt.Sprintf(
		"Bonusy %s · slevy %s · změna oproti očekávané hodnotě",
		tuistyles.FormatCurrency(s.TotalBonuses()), tuistyles.FormatCurrency(cur.TaxCredits)))
	return lipgloss.JoinVertical(lipgloss.Left, components.MetricGrid(cards, 3), footer)
}
