package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jobcomp/jobcomp/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// MetricCard shows one amount and its change against a reference value
type MetricCard struct {
	Label       string
	Value       decimal.Decimal
	Reference   *decimal.Decimal
	LowerIsBest bool
	Width       int
}

// NewMetricCard creates a card for an amount
func NewMetricCard(label string, value decimal.Decimal) *MetricCard {
	return &MetricCard{Label: label, Value: value, Width: 22}
}

// WithReference sets the value the change is measured against
func (m *MetricCard) WithReference(ref decimal.Decimal, lowerIsBest bool) *MetricCard {
	m.Reference = &ref
	m.LowerIsBest = lowerIsBest
	return m
}

// Change is Value minus Reference, zero without a reference
func (m *MetricCard) Change() decimal.Decimal {
	if m.Reference == nil {
		return decimal.Zero
	}
	return m.Value.Sub(*m.Reference)
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" +
		tuistyles.MetricValueStyle.Render(tuistyles.FormatCurrency(m.Value))

	if change := m.Change(); !change.IsZero() {
		good := change.IsPositive() != m.LowerIsBest
		content += "\n" + tuistyles.MetricTrendStyle(good).Render(
			tuistyles.TrendIndicator(change.IsPositive())+" "+tuistyles.FormatCurrency(change.Abs()))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// MetricGrid renders cards in rows of the given width
func MetricGrid(cards []*MetricCard, columns int) string {
	var rows []string
	for i := 0; i < len(cards); i += columns {
		end := min(i+columns, len(cards))
		row := make([]string, 0, end-i)
		for _, c := range cards[i:end] {
			row = append(row, c.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
