package calculation

import (
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// BaseMonthly resolves the monthly base pay of a position. Hourly positions
// use round(hourly rate × fund); monthly ones use the stored salary.
func BaseMonthly(p domain.Position) decimal.Decimal {
	if p.IsHourly() {
		return p.BaseHourlyRate.Mul(p.Fund()).Round(0)
	}
	return p.BaseSalary
}

// BuildInputs prepares the valuation context of a position for one mode.
// Min and max pin the performance percent to 0 and 100; an override replaces
// it in every mode.
func BuildInputs(p domain.Position, mode domain.Mode, o domain.Overrides) domain.CalculationInputs {
	base := BaseMonthly(p)
	fund := p.Fund()

	inputs := domain.CalculationInputs{
		BaseSalary:       base,
		WorkingHoursFund: fund,
		HourlyBase:       base.Div(fund),
		NightHours:       o.NightHours,
		AfternoonHours:   o.AfternoonHours,
		WeekendHours:     o.WeekendHours,
		ShiftsPerMonth:   o.ShiftsPerMonth,
		DaysPerMonth:     o.DaysPerMonth,
	}

	switch {
	case o.PerformancePercent != nil:
		inputs.PerformancePercent = domain.Dec(*o.PerformancePercent)
	case mode == domain.ModeMin:
		inputs.PerformancePercent = domain.Dec(decimal.Zero)
	case mode == domain.ModeMax:
		inputs.PerformancePercent = domain.Dec(hundred)
	}
	return inputs
}

// GrossSalary is base + housing + every benefit, rounded to whole CZK
func GrossSalary(p domain.Position, mode domain.Mode, o domain.Overrides) decimal.Decimal {
	inputs := BuildInputs(p, mode, o)

	total := inputs.BaseSalary.Add(p.HousingAllowance)
	for _, b := range p.Benefits {
		total = total.Add(BenefitValue(b, inputs, mode))
	}
	return total.Round(0)
}

// BenefitBreakdown values and labels every benefit of a position
func BenefitBreakdown(p domain.Position, mode domain.Mode, o domain.Overrides) []domain.BenefitLine {
	inputs := BuildInputs(p, mode, o)

	lines := make([]domain.BenefitLine, 0, len(p.Benefits))
	for _, b := range p.Benefits {
		lines = append(lines, domain.BenefitLine{
			Key:      b.Key,
			Name:     b.Name,
			Category: b.Category,
			Label:    BenefitLabel(b),
			Amount:   BenefitValue(b, inputs, mode),
		})
	}
	return lines
}
