// Package tuistyles holds the lipgloss palette shared by the TUI and its
// components.
package tuistyles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	ColorPrimary = lipgloss.Color("#7D56F4")
	ColorAccent  = lipgloss.Color("#F25D94")
	ColorSuccess = lipgloss.Color("#04B575")
	ColorDanger  = lipgloss.Color("#FF5F87")
	ColorInfo    = lipgloss.Color("#5FAFFF")
	ColorMuted   = lipgloss.Color("#767676")
	ColorBorder  = lipgloss.Color("#3C3C3C")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().Foreground(ColorMuted)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	ActivePanelStyle = PanelStyle.BorderForeground(ColorPrimary)

	SelectedItemStyle   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	UnselectedItemStyle = lipgloss.NewStyle()

	MetricLabelStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	MetricValueStyle    = lipgloss.NewStyle().Bold(true)
	ParameterLabelStyle = lipgloss.NewStyle().Bold(true)
	ParameterValueStyle = lipgloss.NewStyle().Foreground(ColorInfo)
	SliderTrackStyle    = lipgloss.NewStyle().Foreground(ColorMuted)
	SliderThumbStyle    = lipgloss.NewStyle().Foreground(ColorPrimary)

	ErrorStyle = lipgloss.NewStyle().Foreground(ColorDanger).Bold(true)
)

// MetricTrendStyle colours a change green when it is good for the employee
func MetricTrendStyle(positive bool) lipgloss.Style {
	if positive {
		return lipgloss.NewStyle().Foreground(ColorSuccess)
	}
	return lipgloss.NewStyle().Foreground(ColorDanger)
}

// TrendIndicator returns an arrow for the change direction
func TrendIndicator(positive bool) string {
	if positive {
		return "▲"
	}
	return "▼"
}

// FormatCurrency renders whole crowns with space-separated thousands
func FormatCurrency(d decimal.Decimal) string {
	d = d.Round(0)
	s := d.Abs().StringFixed(0)
	var sb strings.Builder
	if d.IsNegative() {
		sb.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(c)
	}
	sb.WriteString(" Kč")
	return sb.String()
}
