package calculation

import (
	"testing"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFullSalary(t *testing.T) {
	p := domain.Position{
		Name:             "Skladník",
		PayBasis:         domain.PayMonthly,
		BaseSalary:       dec("30000"),
		HousingAllowance: dec("3000"),
		Benefits: []domain.Benefit{
			{Key: "vykon", Calculation: domain.FixedAmount{},
				Range: &domain.Range{IsRange: true, Min: decPtr("1000"), Max: decPtr("3000"), Expected: decPtr("2000")}},
		},
	}
	o := domain.Overrides{}.WithPerformance(dec("75"))

	full := FullSalary(p, domain.DefaultRateTable(), domain.DefaultDeductions(), o)

	assert.Equal(t, "Skladník", full.PositionName)
	assert.True(t, dec("34000").Equal(full.GrossMin), "gross min %s", full.GrossMin)
	assert.True(t, dec("35000").Equal(full.GrossExpected), "gross expected %s", full.GrossExpected)
	assert.True(t, dec("36000").Equal(full.GrossMax), "gross max %s", full.GrossMax)
	assert.True(t, dec("35500").Equal(full.GrossCurrent), "gross current %s", full.GrossCurrent)

	assert.True(t, dec("27526").Equal(full.NetMin), "net min %s", full.NetMin)
	assert.True(t, dec("28260").Equal(full.NetExpected), "net expected %s", full.NetExpected)
	assert.True(t, dec("28994").Equal(full.NetMax), "net max %s", full.NetMax)

	assert.True(t, dec("215.87").Equal(full.HourlyGrossMin), "hourly gross min %s", full.HourlyGrossMin)
	assert.True(t, dec("228.57").Equal(full.HourlyGrossMax), "hourly gross max %s", full.HourlyGrossMax)
	assert.True(t, dec("174.77").Equal(full.HourlyNetMin), "hourly net min %s", full.HourlyNetMin)
	assert.True(t, dec("184.09").Equal(full.HourlyNetMax), "hourly net max %s", full.HourlyNetMax)

	// breakdown comes from the max case
	assert.True(t, dec("36000").Equal(full.Breakdown.Gross))
	assert.True(t, full.Breakdown.Net.Equal(full.NetMax))
	assert.True(t, dec("35500").Equal(full.Current.Gross))

	// 35500 - 30000 - 3000
	assert.True(t, dec("2500").Equal(full.TotalBonuses()))

	if assert.Len(t, full.Benefits, 1) {
		assert.True(t, dec("2500").Equal(full.Benefits[0].Amount))
	}
}

func TestFullSalary_NoOverrideMatchesExpected(t *testing.T) {
	full := FullSalary(examplePosition(), domain.DefaultRateTable(), domain.DefaultDeductions(), domain.Overrides{})

	assert.True(t, full.GrossCurrent.Equal(full.GrossExpected))
	assert.True(t, full.NetCurrent.Equal(full.NetExpected))
	assert.True(t, dec("28260").Equal(full.NetCurrent))
	assert.True(t, full.GrossMin.Equal(full.GrossMax), "no ranged benefits")
}
