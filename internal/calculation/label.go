package calculation

import (
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

var unitSuffix = map[domain.BenefitUnit]string{
	domain.PerHour:  "Kč/h",
	domain.PerShift: "Kč/směna",
	domain.PerDay:   "Kč/den",
	domain.PerMonth: "Kč/měs",
}

// BenefitLabel renders the value of a benefit for display, e.g. "2000 Kč",
// "500–1500 Kč", "12%" or "18.5 Kč/h"
func BenefitLabel(b domain.Benefit) string {
	value := labelValue(b)

	switch calc := b.Calculation.(type) {
	case domain.Percentage:
		return value + "%"
	case domain.Rate:
		suffix, ok := unitSuffix[calc.Unit]
		if !ok {
			suffix = unitSuffix[domain.PerHour]
		}
		return value + " " + suffix
	default:
		return value + " Kč"
	}
}

func labelValue(b domain.Benefit) string {
	if b.IsRanged() {
		lo := valueOr(b.Range.Min, decimal.Zero)
		hi := valueOr(b.Range.Max, decimal.Zero)
		return lo.String() + "–" + hi.String()
	}
	if b.Calculation == nil {
		return "0"
	}
	return b.Calculation.ScalarValue().String()
}
