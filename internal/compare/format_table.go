package compare

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

const (
	labelWidth = 24
	valueWidth = 16
	bestMarker = "*"
)

// Format generates a formatted table comparing positions side by side
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder
	width := labelWidth + len(compSet.Results)*(valueWidth+1)
	if width < 60 {
		width = 60
	}

	sb.WriteString("POROVNÁNÍ POZIC\n")
	sb.WriteString(strings.Repeat("=", width) + "\n")
	if compSet.ConfigPath != "" {
		sb.WriteString(fmt.Sprintf("Konfigurace: %s\n", compSet.ConfigPath))
	}
	if compSet.PerformancePercent != nil {
		sb.WriteString(fmt.Sprintf("Výkon: %s %%\n", compSet.PerformancePercent.String()))
	}
	sb.WriteString("\n")

	sb.WriteString(pad("", labelWidth))
	for _, r := range compSet.Results {
		sb.WriteString(" " + padLeft(tf.truncate(r.PositionName, valueWidth), valueWidth))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", width) + "\n")

	for _, row := range compSet.Rows {
		if row.Metric == MetricTotalBonuses || row.Metric == MetricNetMin {
			sb.WriteString(strings.Repeat("-", width) + "\n")
		}
		sb.WriteString(tf.formatRow(row))
	}
	sb.WriteString(strings.Repeat("=", width) + "\n")
	sb.WriteString(bestMarker + " Nejlepší hodnota\n")

	if len(compSet.Results) > 1 {
		sb.WriteString("\nROZDÍL OPROTI " + strings.ToUpper(compSet.Results[0].PositionName) + "\n")
		for _, r := range compSet.Results[1:] {
			sb.WriteString(fmt.Sprintf("  %s: %s%s Kč (%s%s %%)\n",
				r.PositionName,
				tf.deltaSymbol(r.NetDiffFromBase), r.NetDiffFromBase.StringFixed(0),
				tf.deltaSymbol(r.NetPctFromBase), r.NetPctFromBase.StringFixed(2)))
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString("  - " + rec + "\n")
		}
	}

	return sb.String()
}

// formatRow formats a single metric row
func (tf *TableFormatter) formatRow(row Row) string {
	var sb strings.Builder
	sb.WriteString(pad(tf.truncate(row.Label, labelWidth), labelWidth))
	for i, v := range row.Values {
		cell := "-"
		if v != nil {
			cell = tf.formatDecimal(*v) + " Kč"
		}
		if i < len(row.Best) && row.Best[i] {
			cell = bestMarker + cell
		}
		sb.WriteString(" " + padLeft(cell, valueWidth))
	}
	sb.WriteString("\n")
	return sb.String()
}

// formatDecimal formats whole crowns with space-separated thousands
func (tf *TableFormatter) formatDecimal(d decimal.Decimal) string {
	s := d.Abs().StringFixed(0)
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, " ")
	if d.Round(0).IsNegative() {
		out = "-" + out
	}
	return out
}

// deltaSymbol returns a + for positive deltas
func (tf *TableFormatter) deltaSymbol(delta decimal.Decimal) string {
	if delta.IsPositive() {
		return "+"
	}
	return ""
}

// truncate truncates a string to maxLen runes
func (tf *TableFormatter) truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen-3]) + "..."
}

// FormatCompact creates a single-line net summary for each position
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	parts := make([]string, 0, len(compSet.Results))
	for _, r := range compSet.Results {
		parts = append(parts, fmt.Sprintf("%s: %s Kč", r.PositionName, tf.formatDecimal(r.Salary.NetCurrent)))
	}
	return strings.Join(parts, " | ")
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
