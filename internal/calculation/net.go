package calculation

import (
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// TaxBase rounds gross up to the next whole hundred CZK
func TaxBase(gross decimal.Decimal) decimal.Decimal {
	return gross.Div(hundred).Ceil().Mul(hundred)
}

// NetSalary computes insurance, tax and net pay from a monthly gross.
//
// Personal credits can take the tax down to zero but not below. Child
// credits are applied afterwards without a floor, so the final tax may be
// negative (a tax bonus that increases net pay).
func NetSalary(gross decimal.Decimal, table domain.RateTable, d domain.UserDeductions) domain.NetBreakdown {
	social := gross.Mul(table.Value(domain.RateSocialInsurance)).Div(hundred).Round(0)
	health := gross.Mul(table.Value(domain.RateHealthInsurance)).Div(hundred).Round(0)

	taxBase := TaxBase(gross)
	taxBefore := taxBase.Mul(table.Value(domain.RateIncomeTax)).Div(hundred).Round(0)

	credits := ResolveCredits(table, d)
	taxAfterPersonal := decimal.Max(decimal.Zero, taxBefore.Sub(credits.Personal))
	taxFinal := taxAfterPersonal.Sub(credits.Children)

	net := gross.Sub(social).Sub(health).Sub(taxFinal).Round(0)

	return domain.NetBreakdown{
		Gross:            gross,
		Net:              net,
		Social:           social,
		Health:           health,
		TaxBase:          taxBase,
		TaxBeforeCredits: taxBefore,
		TaxCredits:       credits.Total(),
		TaxAfterPersonal: taxAfterPersonal,
		TaxAfterCredits:  taxFinal,
		PersonalCredits:  credits.Personal,
		ChildCredits:     credits.Children,
	}
}
