package calculation

import (
	"testing"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// examplePosition is the monthly 30000 + 3000 housing + 2000 fixed case
func examplePosition() domain.Position {
	return domain.Position{
		Name:             "Operátor výroby",
		PayBasis:         domain.PayMonthly,
		BaseSalary:       dec("30000"),
		HousingAllowance: dec("3000"),
		WorkingHoursFund: dec("157.5"),
		Benefits: []domain.Benefit{
			{Key: "stravenky", Name: "Stravenky", Calculation: domain.FixedAmount{Value: dec("2000")}},
		},
	}
}

func rangedPosition() domain.Position {
	return domain.Position{
		Name:             "Seřizovač",
		PayBasis:         domain.PayMonthly,
		BaseSalary:       dec("30000"),
		HousingAllowance: dec("3000"),
		Benefits: []domain.Benefit{
			{Key: "vykon", Name: "Výkonnostní prémie", Calculation: domain.FixedAmount{},
				Range: &domain.Range{IsRange: true, Min: decPtr("1000"), Max: decPtr("3000"), Expected: decPtr("2000")}},
			{Key: "osobni", Name: "Osobní ohodnocení", Calculation: domain.Percentage{Base: domain.BaseSalary},
				Range: &domain.Range{IsRange: true, Min: decPtr("0"), Max: decPtr("10"), Expected: decPtr("5")}},
			{Key: "noc", Name: "Noční", Calculation: domain.Rate{Value: dec("25"), Unit: domain.PerHour, UnitsSource: domain.UnitsWorkingHoursFund}},
		},
	}
}

func TestBaseMonthly(t *testing.T) {
	tests := []struct {
		name     string
		position domain.Position
		want     string
	}{
		{"monthly uses stored salary", domain.Position{PayBasis: domain.PayMonthly, BaseSalary: dec("30000"), BaseHourlyRate: dec("1")}, "30000"},
		{"empty basis is monthly", domain.Position{BaseSalary: dec("28000")}, "28000"},
		{"hourly uses rate times fund", domain.Position{PayBasis: domain.PayHourly, BaseHourlyRate: dec("200"), WorkingHoursFund: dec("160")}, "32000"},
		{"hourly with default fund", domain.Position{PayBasis: domain.PayHourly, BaseHourlyRate: dec("200")}, "31500"},
		{"hourly is rounded", domain.Position{PayBasis: domain.PayHourly, BaseHourlyRate: dec("190.33")}, "29977"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BaseMonthly(tt.position)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestBuildInputs(t *testing.T) {
	p := domain.Position{PayBasis: domain.PayMonthly, BaseSalary: dec("31500")}

	in := BuildInputs(p, domain.ModeExpected, domain.Overrides{})
	assert.True(t, dec("157.5").Equal(in.WorkingHoursFund))
	assert.True(t, dec("200").Equal(in.HourlyBase))
	assert.Nil(t, in.PerformancePercent)

	in = BuildInputs(p, domain.ModeMin, domain.Overrides{})
	if assert.NotNil(t, in.PerformancePercent) {
		assert.True(t, in.PerformancePercent.IsZero())
	}

	in = BuildInputs(p, domain.ModeMax, domain.Overrides{})
	if assert.NotNil(t, in.PerformancePercent) {
		assert.True(t, dec("100").Equal(*in.PerformancePercent))
	}

	o := domain.Overrides{NightHours: decPtr("40")}.WithPerformance(dec("30"))
	in = BuildInputs(p, domain.ModeMax, o)
	if assert.NotNil(t, in.PerformancePercent) {
		assert.True(t, dec("30").Equal(*in.PerformancePercent), "override wins in max mode")
	}
	if assert.NotNil(t, in.NightHours) {
		assert.True(t, dec("40").Equal(*in.NightHours))
	}
}

func TestGrossSalary_Example(t *testing.T) {
	got := GrossSalary(examplePosition(), domain.ModeExpected, domain.Overrides{})
	assert.True(t, dec("35000").Equal(got), "got %s", got)
}

func TestGrossSalary_Modes(t *testing.T) {
	p := rangedPosition()
	night := "3938" // 25 × 157.5 = 3937.5

	tests := []struct {
		name string
		mode domain.Mode
		o    domain.Overrides
		want string
	}{
		// 30000 + 3000 + 1000 + 0 + night
		{"min", domain.ModeMin, domain.Overrides{}, "37938"},
		// 30000 + 3000 + 2000 + 1500 + night
		{"expected", domain.ModeExpected, domain.Overrides{}, "40438"},
		// 30000 + 3000 + 3000 + 3000 + night
		{"max", domain.ModeMax, domain.Overrides{}, "42938"},
		// 30000 + 3000 + 1500 + 750 + night
		{"performance 25 in min mode", domain.ModeMin, domain.Overrides{}.WithPerformance(dec("25")), "39188"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GrossSalary(p, tt.mode, tt.o)
			assert.True(t, dec(tt.want).Equal(got), "want %s, got %s (night part %s)", tt.want, got, night)
		})
	}
}

func TestGrossSalary_MonotonicInMode(t *testing.T) {
	positions := []domain.Position{examplePosition(), rangedPosition()}
	for _, p := range positions {
		lo := GrossSalary(p, domain.ModeMin, domain.Overrides{})
		mid := GrossSalary(p, domain.ModeExpected, domain.Overrides{})
		hi := GrossSalary(p, domain.ModeMax, domain.Overrides{})
		assert.True(t, lo.LessThanOrEqual(mid), "%s: min %s > expected %s", p.Name, lo, mid)
		assert.True(t, mid.LessThanOrEqual(hi), "%s: expected %s > max %s", p.Name, mid, hi)
	}
}

func TestGrossSalary_Idempotent(t *testing.T) {
	p := rangedPosition()
	o := domain.Overrides{}.WithPerformance(dec("33.3"))
	first := GrossSalary(p, domain.ModeExpected, o)
	second := GrossSalary(p, domain.ModeExpected, o)
	assert.True(t, first.Equal(second))
}

func TestBenefitBreakdown(t *testing.T) {
	lines := BenefitBreakdown(rangedPosition(), domain.ModeMax, domain.Overrides{})
	if assert.Len(t, lines, 3) {
		assert.Equal(t, "vykon", lines[0].Key)
		assert.Equal(t, "1000–3000 Kč", lines[0].Label)
		assert.True(t, dec("3000").Equal(lines[0].Amount))
		assert.Equal(t, "0–10%", lines[1].Label)
		assert.True(t, dec("3000").Equal(lines[1].Amount))
		assert.Equal(t, "25 Kč/h", lines[2].Label)
		assert.True(t, decimal.NewFromInt(3938).Equal(lines[2].Amount))
	}
}
