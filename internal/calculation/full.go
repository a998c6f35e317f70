package calculation

import (
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// FullSalary evaluates a position in every mode. Min, max and expected ignore
// the performance override; the current figures use it. Hourly values are
// rounded to 2 decimals and the detailed breakdown comes from the max case.
func FullSalary(p domain.Position, table domain.RateTable, d domain.UserDeductions, o domain.Overrides) domain.FullSalary {
	fixed := o
	fixed.PerformancePercent = nil

	grossMin := GrossSalary(p, domain.ModeMin, fixed)
	grossMax := GrossSalary(p, domain.ModeMax, fixed)
	grossExpected := GrossSalary(p, domain.ModeExpected, fixed)
	grossCurrent := GrossSalary(p, domain.ModeExpected, o)

	netMin := NetSalary(grossMin, table, d)
	netMax := NetSalary(grossMax, table, d)
	netExpected := NetSalary(grossExpected, table, d)
	netCurrent := NetSalary(grossCurrent, table, d)

	fund := p.Fund()
	return domain.FullSalary{
		PositionID:   p.ID,
		PositionName: p.Name,
		BaseSalary:   BaseMonthly(p),
		Housing:      p.HousingAllowance,
		Fund:         fund,

		GrossMin:      grossMin,
		GrossExpected: grossExpected,
		GrossMax:      grossMax,
		GrossCurrent:  grossCurrent,

		NetMin:      netMin.Net,
		NetExpected: netExpected.Net,
		NetMax:      netMax.Net,
		NetCurrent:  netCurrent.Net,

		HourlyGrossMin: perHour(grossMin, fund),
		HourlyGrossMax: perHour(grossMax, fund),
		HourlyNetMin:   perHour(netMin.Net, fund),
		HourlyNetMax:   perHour(netMax.Net, fund),

		Breakdown: netMax,
		Current:   netCurrent,
		Benefits:  BenefitBreakdown(p, domain.ModeExpected, o),
	}
}

func perHour(amount, fund decimal.Decimal) decimal.Decimal {
	return amount.Div(fund).Round(2)
}
