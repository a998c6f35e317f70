package calculation

import (
	"testing"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxBase(t *testing.T) {
	tests := []struct {
		gross string
		want  string
	}{
		{"0", "0"},
		{"29999", "30000"},
		{"30000", "30000"},
		{"30001", "30100"},
		{"30099.5", "30100"},
		{"35000", "35000"},
	}
	for _, tt := range tests {
		t.Run(tt.gross, func(t *testing.T) {
			got := TaxBase(dec(tt.gross))
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestNetSalary_Example(t *testing.T) {
	gross := GrossSalary(examplePosition(), domain.ModeExpected, domain.Overrides{})
	bd := NetSalary(gross, domain.DefaultRateTable(), domain.DefaultDeductions())

	assert.True(t, dec("35000").Equal(bd.Gross))
	assert.True(t, dec("2485").Equal(bd.Social), "social %s", bd.Social)
	assert.True(t, dec("1575").Equal(bd.Health), "health %s", bd.Health)
	assert.True(t, dec("35000").Equal(bd.TaxBase), "tax base %s", bd.TaxBase)
	assert.True(t, dec("5250").Equal(bd.TaxBeforeCredits), "tax %s", bd.TaxBeforeCredits)
	assert.True(t, dec("2570").Equal(bd.PersonalCredits))
	assert.True(t, bd.ChildCredits.IsZero())
	assert.True(t, dec("2680").Equal(bd.TaxAfterPersonal))
	assert.True(t, dec("2680").Equal(bd.TaxAfterCredits))
	assert.True(t, dec("2570").Equal(bd.TaxCredits))
	assert.True(t, dec("28260").Equal(bd.Net), "net %s", bd.Net)
	assert.True(t, bd.TaxBonus().IsZero())
}

func TestNetSalary_PersonalCreditFloor(t *testing.T) {
	bd := NetSalary(dec("10000"), domain.DefaultRateTable(), domain.DefaultDeductions())

	assert.True(t, dec("1500").Equal(bd.TaxBeforeCredits))
	assert.True(t, bd.TaxAfterPersonal.IsZero(), "personal credit must stop at zero, got %s", bd.TaxAfterPersonal)
	assert.True(t, bd.TaxAfterCredits.IsZero())
	assert.True(t, dec("8840").Equal(bd.Net), "net %s", bd.Net)

	// the reported total keeps the full credit; the applied part is smaller
	assert.True(t, dec("2570").Equal(bd.TaxCredits))
	assert.True(t, dec("1500").Equal(bd.AppliedCredits()))
}

func TestNetSalary_ChildBonus(t *testing.T) {
	d := domain.DefaultDeductions()
	d.Children = 2

	bd := NetSalary(dec("20000"), domain.DefaultRateTable(), d)

	assert.True(t, dec("3000").Equal(bd.TaxBeforeCredits))
	assert.True(t, dec("430").Equal(bd.TaxAfterPersonal))
	assert.True(t, dec("3127").Equal(bd.ChildCredits))
	assert.True(t, dec("-2697").Equal(bd.TaxAfterCredits), "final tax %s", bd.TaxAfterCredits)
	assert.True(t, bd.TaxAfterCredits.IsNegative())
	assert.True(t, dec("20377").Equal(bd.Net), "net %s", bd.Net)
	assert.True(t, bd.Net.GreaterThan(bd.Gross.Sub(bd.Social).Sub(bd.Health)))
	assert.True(t, dec("2697").Equal(bd.TaxBonus()))
	assert.True(t, dec("5697").Equal(bd.TaxCredits))
	assert.True(t, dec("5697").Equal(bd.AppliedCredits()))
}

func TestNetSalary_ChildrenWithoutTaxpayerCredit(t *testing.T) {
	d := domain.UserDeductions{Children: 1, Disability: domain.DisabilityNone}
	bd := NetSalary(dec("5000"), domain.DefaultRateTable(), d)

	// 750 tax, no personal credit, 1267 child credit
	assert.True(t, dec("750").Equal(bd.TaxAfterPersonal))
	assert.True(t, dec("-517").Equal(bd.TaxAfterCredits))
}

func TestNetSalary_CustomRates(t *testing.T) {
	table := domain.NewRateTable([]domain.RateSetting{
		{Key: domain.RateSocialInsurance, Value: dec("6.5")},
		{Key: domain.RateHealthInsurance, Value: dec("4.5")},
		{Key: domain.RateIncomeTax, Value: dec("15")},
		{Key: domain.CreditTaxpayer, Value: dec("2570")},
	})
	bd := NetSalary(dec("40000"), table, domain.DefaultDeductions())

	assert.True(t, dec("2600").Equal(bd.Social))
	assert.True(t, dec("1800").Equal(bd.Health))
	assert.True(t, dec("3430").Equal(bd.TaxAfterCredits))
	assert.True(t, dec("32170").Equal(bd.Net))
}

func TestNetSalary_MonotonicInGross(t *testing.T) {
	table := domain.DefaultRateTable()
	deductions := []domain.UserDeductions{
		domain.DefaultDeductions(),
		{Taxpayer: true, Children: 3, Disability: domain.DisabilityTier2, Student: true},
		{Disability: domain.DisabilityNone},
	}

	for _, d := range deductions {
		// on the 100 CZK grid of the tax base net never decreases
		prev := NetSalary(decimal.Zero, table, d).Net
		for g := int64(100); g <= 120000; g += 100 {
			net := NetSalary(decimal.NewFromInt(g), table, d).Net
			require.True(t, net.GreaterThanOrEqual(prev), "gross %d: net %s < %s", g, net, prev)
			prev = net
		}

		// between grid points a single step of the tax base bounds the drop
		prev = NetSalary(dec("29990"), table, d).Net
		for g := int64(29991); g <= 30210; g++ {
			net := NetSalary(decimal.NewFromInt(g), table, d).Net
			require.True(t, net.Sub(prev).GreaterThanOrEqual(dec("-16")), "gross %d: net dropped from %s to %s", g, prev, net)
			prev = net
		}
	}
}

func TestNetSalary_Idempotent(t *testing.T) {
	d := domain.UserDeductions{Taxpayer: true, Children: 4, Disability: domain.DisabilityTier3, ZTPP: true}
	first := NetSalary(dec("41234"), domain.DefaultRateTable(), d)
	second := NetSalary(dec("41234"), domain.DefaultRateTable(), d)
	assert.Equal(t, first.Net.String(), second.Net.String())
	assert.Equal(t, first.TaxAfterCredits.String(), second.TaxAfterCredits.String())
}
