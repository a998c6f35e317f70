package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Mode selects which point of a ranged benefit is used
type Mode string

const (
	ModeMin      Mode = "min"
	ModeMax      Mode = "max"
	ModeExpected Mode = "expected"
)

// ParseMode validates a mode name; empty means expected
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeMin, ModeMax, ModeExpected:
		return Mode(s), nil
	case "":
		return ModeExpected, nil
	}
	return "", fmt.Errorf("unknown mode %q (want min, max or expected)", s)
}

// CalculationInputs is the working context for valuing the benefits of one
// position. Optional counts are nil when not supplied.
type CalculationInputs struct {
	BaseSalary         decimal.Decimal
	WorkingHoursFund   decimal.Decimal
	HourlyBase         decimal.Decimal
	NightHours         *decimal.Decimal
	AfternoonHours     *decimal.Decimal
	WeekendHours       *decimal.Decimal
	ShiftsPerMonth     *decimal.Decimal
	DaysPerMonth       *decimal.Decimal
	PerformancePercent *decimal.Decimal
}

// Overrides are caller-supplied values for a gross calculation
type Overrides struct {
	PerformancePercent *decimal.Decimal `yaml:"performance_percent,omitempty" json:"performance_percent,omitempty"`
	NightHours         *decimal.Decimal `yaml:"night_hours,omitempty" json:"night_hours,omitempty"`
	AfternoonHours     *decimal.Decimal `yaml:"afternoon_hours,omitempty" json:"afternoon_hours,omitempty"`
	WeekendHours       *decimal.Decimal `yaml:"weekend_hours,omitempty" json:"weekend_hours,omitempty"`
	ShiftsPerMonth     *decimal.Decimal `yaml:"shifts_per_month,omitempty" json:"shifts_per_month,omitempty"`
	DaysPerMonth       *decimal.Decimal `yaml:"days_per_month,omitempty" json:"days_per_month,omitempty"`
}

// WithPerformance returns a copy with the performance percent set
func (o Overrides) WithPerformance(percent decimal.Decimal) Overrides {
	o.PerformancePercent = &percent
	return o
}
