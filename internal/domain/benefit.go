package domain

import (
	"github.com/shopspring/decimal"
)

// BenefitCategory is a cosmetic tag; it has no effect on calculation
type BenefitCategory string

const (
	BenefitBonus     BenefitCategory = "bonus"
	BenefitAllowance BenefitCategory = "allowance"
	BenefitPremium   BenefitCategory = "premium"
	BenefitShift     BenefitCategory = "shift"
	BenefitOther     BenefitCategory = "other"
)

// Label returns the Czech display label for the category
func (c BenefitCategory) Label() string {
	switch c {
	case BenefitBonus:
		return "Bonus"
	case BenefitAllowance:
		return "Příspěvek"
	case BenefitPremium:
		return "Prémie"
	case BenefitShift:
		return "Směnový"
	default:
		return "Ostatní"
	}
}

// CalculationKind discriminates the Calculation variants
type CalculationKind string

const (
	KindFixedAmount CalculationKind = "fixed_amount"
	KindPercentage  CalculationKind = "percentage"
	KindRate        CalculationKind = "rate"
)

// BenefitUnit is the unit a rate (or an hourly percentage) is expressed per
type BenefitUnit string

const (
	PerMonth BenefitUnit = "month"
	PerHour  BenefitUnit = "hour"
	PerShift BenefitUnit = "shift"
	PerDay   BenefitUnit = "day"
)

// UnitsSource selects where the unit count comes from
type UnitsSource string

const (
	UnitsUnset            UnitsSource = ""
	UnitsWorkingHoursFund UnitsSource = "working_hours_fund"
	UnitsNightHours       UnitsSource = "night_hours"
	UnitsAfternoonHours   UnitsSource = "afternoon_hours"
	UnitsWeekendHours     UnitsSource = "weekend_hours"
	UnitsCustom           UnitsSource = "custom_units"
)

// PercentageBase selects the amount a percentage is taken from
type PercentageBase string

const (
	BaseSalary       PercentageBase = "base_salary"
	BaseHourly       PercentageBase = "hourly_base"
	BaseCustomAmount PercentageBase = "custom_amount"
)

// RoundingMode is applied to the final benefit amount
type RoundingMode string

const (
	RoundNearest RoundingMode = "nearest"
	RoundNone    RoundingMode = "none"
	RoundCeil    RoundingMode = "ceil"
	RoundFloor   RoundingMode = "floor"
)

// Calculation is the tagged union describing how a benefit turns its
// effective value into CZK. Only the types in this package implement it.
type Calculation interface {
	Kind() CalculationKind
	// ScalarValue is the value used when the benefit has no range
	ScalarValue() decimal.Decimal
	sealed()
}

// FixedAmount is a flat CZK amount per month
type FixedAmount struct {
	Value decimal.Decimal
}

// Percentage takes Value percent of a base. With Unit == PerHour it is paid
// per hour on the hourly base, optionally floored per hour.
type Percentage struct {
	Value        decimal.Decimal
	Base         PercentageBase
	CustomBase   decimal.Decimal
	Unit         BenefitUnit
	UnitsSource  UnitsSource
	FloorPerUnit decimal.Decimal
}

// Rate pays Value CZK per unit
type Rate struct {
	Value       decimal.Decimal
	Unit        BenefitUnit
	UnitsSource UnitsSource
	UnitsValue  decimal.Decimal
}

func (FixedAmount) Kind() CalculationKind { return KindFixedAmount }
func (Percentage) Kind() CalculationKind  { return KindPercentage }
func (Rate) Kind() CalculationKind        { return KindRate }

func (c FixedAmount) ScalarValue() decimal.Decimal { return c.Value }
func (c Percentage) ScalarValue() decimal.Decimal  { return c.Value }
func (c Rate) ScalarValue() decimal.Decimal        { return c.Value }

func (FixedAmount) sealed() {}
func (Percentage) sealed()  {}
func (Rate) sealed()        {}

// Range replaces the scalar value with min/max/expected when IsRange is set.
// min <= expected <= max is checked at data entry, not here.
type Range struct {
	IsRange  bool
	Min      *decimal.Decimal
	Max      *decimal.Decimal
	Expected *decimal.Decimal
}

// Benefit is one variable-pay rule attached to a position
type Benefit struct {
	Key         string
	Name        string
	Category    BenefitCategory
	Calculation Calculation
	Range       *Range
	CapAmount   decimal.Decimal
	Rounding    RoundingMode
}

// IsRanged reports whether the range overrides the scalar value
func (b Benefit) IsRanged() bool {
	return b.Range != nil && b.Range.IsRange
}

// Kind returns the calculation kind, defaulting to fixed amount for a
// benefit without a calculation
func (b Benefit) Kind() CalculationKind {
	if b.Calculation == nil {
		return KindFixedAmount
	}
	return b.Calculation.Kind()
}

// Dec is a small helper for optional decimal fields
func Dec(v decimal.Decimal) *decimal.Decimal {
	return &v
}
