package components

import (
	"fmt"
	"strings"

	"github.com/jobcomp/jobcomp/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ParameterSlider is a bounded integer value with a visual track
type ParameterSlider struct {
	Label     string
	Value     int
	Min       int
	Max       int
	Step      int
	Unit      string
	Width     int
	IsFocused bool
}

// NewParameterSlider creates a slider starting at value
func NewParameterSlider(label string, value, min, max, step int) *ParameterSlider {
	s := &ParameterSlider{Label: label, Min: min, Max: max, Step: step, Width: 30}
	s.SetValue(value)
	return s
}

// WithUnit sets the unit suffix
func (p *ParameterSlider) WithUnit(unit string) *ParameterSlider {
	p.Unit = unit
	return p
}

// Increment moves one step up, stopping at Max
func (p *ParameterSlider) Increment() { p.SetValue(p.Value + p.Step) }

// Decrement moves one step down, stopping at Min
func (p *ParameterSlider) Decrement() { p.SetValue(p.Value - p.Step) }

// SetValue sets the value, clamped to the slider bounds
func (p *ParameterSlider) SetValue(v int) {
	p.Value = min(p.Max, max(p.Min, v))
}

// Decimal returns the value for the engine
func (p *ParameterSlider) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(p.Value))
}

// Fraction is the slider position in [0, 1]
func (p *ParameterSlider) Fraction() float64 {
	if p.Max == p.Min {
		return 0
	}
	return float64(p.Value-p.Min) / float64(p.Max-p.Min)
}

// Render draws the label, value and track
func (p *ParameterSlider) Render() string {
	label := tuistyles.ParameterLabelStyle
	if p.IsFocused {
		label = label.Foreground(tuistyles.ColorPrimary)
	}

	filled := int(float64(p.Width)*p.Fraction() + 0.5)
	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(tuistyles.SliderThumbStyle.Render(strings.Repeat("━", filled)))
	bar.WriteString(tuistyles.SliderThumbStyle.Render("●"))
	bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", p.Width-filled)))
	bar.WriteString("]")

	out := fmt.Sprintf("%s %s\n%s",
		label.Render(p.Label),
		tuistyles.ParameterValueStyle.Render(fmt.Sprintf("%d%s", p.Value, p.Unit)),
		bar.String())
	if p.IsFocused {
		out += "\n" + tuistyles.SubtitleStyle.Render("← → upravit")
	}
	return out
}
