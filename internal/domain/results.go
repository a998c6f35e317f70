package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TaxCredits keeps personal and child credits apart; they are applied
// differently when computing the final tax
type TaxCredits struct {
	Personal decimal.Decimal `json:"personal"`
	Children decimal.Decimal `json:"children"`
}

// Total is the sum of both buckets
func (c TaxCredits) Total() decimal.Decimal {
	return c.Personal.Add(c.Children)
}

// NetBreakdown is the result of a net salary calculation.
//
// TaxCredits is the sum of all claimed credits even when the personal part
// was capped at zero tax. AppliedCredits returns what was actually taken off.
type NetBreakdown struct {
	Gross            decimal.Decimal `json:"gross"`
	Net              decimal.Decimal `json:"net"`
	Social           decimal.Decimal `json:"social"`
	Health           decimal.Decimal `json:"health"`
	TaxBase          decimal.Decimal `json:"tax_base"`
	TaxBeforeCredits decimal.Decimal `json:"tax_before_credits"`
	TaxCredits       decimal.Decimal `json:"tax_credits"`
	TaxAfterPersonal decimal.Decimal `json:"tax_after_personal"`
	TaxAfterCredits  decimal.Decimal `json:"tax_after_credits"`
	PersonalCredits  decimal.Decimal `json:"personal_credits"`
	ChildCredits     decimal.Decimal `json:"child_credits"`
}

// AppliedCredits is the credit amount that actually reduced the tax
func (b NetBreakdown) AppliedCredits() decimal.Decimal {
	return b.TaxBeforeCredits.Sub(b.TaxAfterCredits)
}

// TaxBonus is the amount paid out through child credits, zero when the final
// tax is not negative
func (b NetBreakdown) TaxBonus() decimal.Decimal {
	if b.TaxAfterCredits.IsNegative() {
		return b.TaxAfterCredits.Neg()
	}
	return decimal.Zero
}

// Deductions is the total withheld from gross (insurance plus final tax)
func (b NetBreakdown) Deductions() decimal.Decimal {
	return b.Social.Add(b.Health).Add(b.TaxAfterCredits)
}

// BenefitLine is one benefit's label and value for display
type BenefitLine struct {
	Key      string          `json:"key"`
	Name     string          `json:"name"`
	Category BenefitCategory `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
}

// FullSalary summarises one position across modes
type FullSalary struct {
	PositionID   uuid.UUID       `json:"position_id"`
	PositionName string          `json:"position_name"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Housing      decimal.Decimal `json:"housing_allowance"`
	Fund         decimal.Decimal `json:"working_hours_fund"`

	GrossMin      decimal.Decimal `json:"gross_min"`
	GrossExpected decimal.Decimal `json:"gross_expected"`
	GrossMax      decimal.Decimal `json:"gross_max"`
	GrossCurrent  decimal.Decimal `json:"gross_current"`

	NetMin      decimal.Decimal `json:"net_min"`
	NetExpected decimal.Decimal `json:"net_expected"`
	NetMax      decimal.Decimal `json:"net_max"`
	NetCurrent  decimal.Decimal `json:"net_current"`

	HourlyGrossMin decimal.Decimal `json:"hourly_gross_min"`
	HourlyGrossMax decimal.Decimal `json:"hourly_gross_max"`
	HourlyNetMin   decimal.Decimal `json:"hourly_net_min"`
	HourlyNetMax   decimal.Decimal `json:"hourly_net_max"`

	// Breakdown is taken from the max case
	Breakdown NetBreakdown  `json:"breakdown"`
	Current   NetBreakdown  `json:"current"`
	Benefits  []BenefitLine `json:"benefits"`
}

// TotalBonuses is the current gross without base and housing
func (f FullSalary) TotalBonuses() decimal.Decimal {
	return f.GrossCurrent.Sub(f.BaseSalary).Sub(f.Housing)
}

// SweepPoint is one step of a performance sweep
type SweepPoint struct {
	Percent decimal.Decimal `json:"percent"`
	Gross   decimal.Decimal `json:"gross"`
	Net     decimal.Decimal `json:"net"`
}
