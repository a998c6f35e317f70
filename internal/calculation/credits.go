package calculation

import (
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// ResolveCredits derives the monthly tax credits a person is entitled to.
// Personal credits (taxpayer, disability tier, ZTP/P, student) and child
// credits are returned separately.
func ResolveCredits(table domain.RateTable, d domain.UserDeductions) domain.TaxCredits {
	personal := decimal.Zero
	if d.Taxpayer {
		personal = personal.Add(table.Value(domain.CreditTaxpayer))
	}
	if key, ok := d.Disability.RateKey(); ok {
		personal = personal.Add(table.Value(key))
	}
	if d.ZTPP {
		personal = personal.Add(table.Value(domain.CreditZTPP))
	}
	if d.Student {
		personal = personal.Add(table.Value(domain.CreditStudent))
	}

	return domain.TaxCredits{
		Personal: personal,
		Children: ChildCredits(table, d.Children),
	}
}

// ChildCredits applies the tiers: first child, second child, and the third
// tier for every child from the third on
func ChildCredits(table domain.RateTable, n int) decimal.Decimal {
	total := decimal.Zero
	if n >= 1 {
		total = total.Add(table.Value(domain.CreditChild1))
	}
	if n >= 2 {
		total = total.Add(table.Value(domain.CreditChild2))
	}
	if n >= 3 {
		total = total.Add(table.Value(domain.CreditChild3).Mul(decimal.NewFromInt(int64(n - 2))))
	}
	return total
}
