package calculation

import (
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)

	// defaults used by rate benefits without a units source
	defaultShiftsPerMonth = decimal.NewFromInt(16)
	defaultDaysPerMonth   = decimal.NewFromInt(20)
)

func valueOr(d *decimal.Decimal, fallback decimal.Decimal) decimal.Decimal {
	if d == nil {
		return fallback
	}
	return *d
}

// EffectiveValue resolves the input value of a benefit before its kind is
// applied. A performance percent interpolates a ranged benefit and wins over
// the mode; otherwise the mode picks min, max or expected.
func EffectiveValue(b domain.Benefit, inputs domain.CalculationInputs, mode domain.Mode) decimal.Decimal {
	scalar := decimal.Zero
	if b.Calculation != nil {
		scalar = b.Calculation.ScalarValue()
	}
	if !b.IsRanged() {
		return scalar
	}

	r := b.Range
	if inputs.PerformancePercent != nil {
		lo := valueOr(r.Min, decimal.Zero)
		hi := valueOr(r.Max, decimal.Zero)
		return lo.Add(hi.Sub(lo).Mul(*inputs.PerformancePercent).Div(hundred))
	}

	switch mode {
	case domain.ModeMin:
		return valueOr(r.Min, scalar)
	case domain.ModeMax:
		return valueOr(r.Max, scalar)
	default:
		if r.Expected != nil {
			return *r.Expected
		}
		return valueOr(r.Min, scalar)
	}
}

// BenefitValue turns one benefit into a CZK amount for the given inputs and
// mode. It never fails: missing optional fields fall back to zero or to the
// working-hours fund.
func BenefitValue(b domain.Benefit, inputs domain.CalculationInputs, mode domain.Mode) decimal.Decimal {
	effective := EffectiveValue(b, inputs, mode)

	var amount decimal.Decimal
	switch calc := b.Calculation.(type) {
	case domain.Percentage:
		amount = percentageAmount(calc, effective, inputs)
	case domain.Rate:
		amount = effective.Mul(rateUnits(calc, inputs))
	default:
		amount = effective
	}

	if b.CapAmount.IsPositive() && amount.GreaterThan(b.CapAmount) {
		amount = b.CapAmount
	}
	return applyRounding(amount, b.Rounding)
}

func percentageAmount(calc domain.Percentage, effective decimal.Decimal, inputs domain.CalculationInputs) decimal.Decimal {
	if calc.Unit == domain.PerHour {
		perHour := inputs.HourlyBase.Mul(effective).Div(hundred)
		if calc.FloorPerUnit.IsPositive() && perHour.LessThan(calc.FloorPerUnit) {
			perHour = calc.FloorPerUnit
		}
		return perHour.Mul(percentageHours(calc.UnitsSource, inputs))
	}

	var base decimal.Decimal
	switch calc.Base {
	case domain.BaseHourly:
		base = inputs.HourlyBase
	case domain.BaseCustomAmount:
		base = calc.CustomBase
	default:
		base = inputs.BaseSalary
	}
	return base.Mul(effective).Div(hundred)
}

// percentageHours picks the hour count for an hourly percentage: the night or
// afternoon hours when selected and supplied, otherwise the fund
func percentageHours(source domain.UnitsSource, inputs domain.CalculationInputs) decimal.Decimal {
	switch source {
	case domain.UnitsNightHours:
		return valueOr(inputs.NightHours, inputs.WorkingHoursFund)
	case domain.UnitsAfternoonHours:
		return valueOr(inputs.AfternoonHours, inputs.WorkingHoursFund)
	case domain.UnitsWeekendHours:
		return valueOr(inputs.WeekendHours, inputs.WorkingHoursFund)
	default:
		return inputs.WorkingHoursFund
	}
}

func rateUnits(calc domain.Rate, inputs domain.CalculationInputs) decimal.Decimal {
	switch calc.UnitsSource {
	case domain.UnitsWorkingHoursFund:
		return inputs.WorkingHoursFund
	case domain.UnitsNightHours:
		return valueOr(inputs.NightHours, decimal.Zero)
	case domain.UnitsAfternoonHours:
		return valueOr(inputs.AfternoonHours, decimal.Zero)
	case domain.UnitsWeekendHours:
		return valueOr(inputs.WeekendHours, decimal.Zero)
	case domain.UnitsCustom:
		return calc.UnitsValue
	}

	switch calc.Unit {
	case domain.PerShift:
		return valueOr(inputs.ShiftsPerMonth, defaultShiftsPerMonth)
	case domain.PerDay:
		return valueOr(inputs.DaysPerMonth, defaultDaysPerMonth)
	case domain.PerMonth:
		return decimal.NewFromInt(1)
	default:
		return inputs.WorkingHoursFund
	}
}

func applyRounding(amount decimal.Decimal, mode domain.RoundingMode) decimal.Decimal {
	switch mode {
	case domain.RoundNone:
		return amount
	case domain.RoundCeil:
		return amount.Ceil()
	case domain.RoundFloor:
		return amount.Floor()
	default:
		return amount.Round(0)
	}
}
