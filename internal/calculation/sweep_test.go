package calculation

import (
	"context"
	"errors"
	"testing"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bonusPosition(max string) domain.Position {
	return domain.Position{
		Name:       "Technik",
		PayBasis:   domain.PayMonthly,
		BaseSalary: dec("30000"),
		Benefits: []domain.Benefit{
			{Key: "bonus", Calculation: domain.FixedAmount{},
				Range: &domain.Range{IsRange: true, Min: decPtr("0"), Max: decPtr(max)}},
		},
	}
}

func TestPerformanceSweep(t *testing.T) {
	points, err := PerformanceSweep(context.Background(), bonusPosition("1000"), domain.DefaultRateTable(), domain.DefaultDeductions(), dec("25"))
	require.NoError(t, err)
	require.Len(t, points, 5)

	wantGross := []string{"30000", "30250", "30500", "30750", "31000"}
	for i, p := range points {
		assert.True(t, dec(wantGross[i]).Equal(p.Gross), "point %d gross %s", i, p.Gross)
		assert.True(t, NetSalary(p.Gross, domain.DefaultRateTable(), domain.DefaultDeductions()).Net.Equal(p.Net))
		if i > 0 {
			assert.True(t, p.Net.GreaterThanOrEqual(points[i-1].Net))
		}
	}
}

func TestPerformanceSweep_UnevenStepEndsAtHundred(t *testing.T) {
	points, err := PerformanceSweep(context.Background(), bonusPosition("1000"), domain.DefaultRateTable(), domain.DefaultDeductions(), dec("30"))
	require.NoError(t, err)

	var percents []string
	for _, p := range points {
		percents = append(percents, p.Percent.String())
	}
	assert.Equal(t, []string{"0", "30", "60", "90", "100"}, percents)
}

func TestPerformanceSweep_DefaultStep(t *testing.T) {
	points, err := PerformanceSweep(context.Background(), bonusPosition("1000"), domain.DefaultRateTable(), domain.DefaultDeductions(), decimal.Zero)
	require.NoError(t, err)
	assert.Len(t, points, 11)
}

func TestPerformanceSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := PerformanceSweep(ctx, bonusPosition("1000"), domain.DefaultRateTable(), domain.DefaultDeductions(), dec("10"))
	assert.True(t, errors.Is(err, context.Canceled))
}
