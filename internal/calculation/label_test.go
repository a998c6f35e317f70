package calculation

import (
	"testing"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBenefitLabel(t *testing.T) {
	ranged := func(min, max string) *domain.Range {
		return &domain.Range{IsRange: true, Min: decPtr(min), Max: decPtr(max)}
	}

	tests := []struct {
		name    string
		benefit domain.Benefit
		want    string
	}{
		{"fixed", domain.Benefit{Calculation: domain.FixedAmount{Value: dec("2000")}}, "2000 Kč"},
		{"fixed range", domain.Benefit{Calculation: domain.FixedAmount{}, Range: ranged("500", "1500")}, "500–1500 Kč"},
		{"percentage", domain.Benefit{Calculation: domain.Percentage{Value: dec("12")}}, "12%"},
		{"percentage range", domain.Benefit{Calculation: domain.Percentage{}, Range: ranged("10", "15")}, "10–15%"},
		{"hourly rate", domain.Benefit{Calculation: domain.Rate{Value: dec("18.5"), Unit: domain.PerHour}}, "18.5 Kč/h"},
		{"shift rate", domain.Benefit{Calculation: domain.Rate{Value: dec("150"), Unit: domain.PerShift}}, "150 Kč/směna"},
		{"daily rate", domain.Benefit{Calculation: domain.Rate{Value: dec("200"), Unit: domain.PerDay}}, "200 Kč/den"},
		{"monthly rate", domain.Benefit{Calculation: domain.Rate{Value: dec("500"), Unit: domain.PerMonth}}, "500 Kč/měs"},
		{"ranged rate", domain.Benefit{Calculation: domain.Rate{Unit: domain.PerHour}, Range: ranged("15", "25")}, "15–25 Kč/h"},
		{"no calculation", domain.Benefit{}, "0 Kč"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BenefitLabel(tt.benefit))
		})
	}
}
