package calculation

import (
	"context"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultSweepStep is used when a sweep is asked for a non-positive step
var DefaultSweepStep = decimal.NewFromInt(10)

// PerformanceSweep evaluates gross and net from 0 to 100 percent performance.
// The last point is always 100 even when the step does not divide it.
func PerformanceSweep(ctx context.Context, p domain.Position, table domain.RateTable, d domain.UserDeductions, step decimal.Decimal) ([]domain.SweepPoint, error) {
	if !step.IsPositive() {
		step = DefaultSweepStep
	}

	var points []domain.SweepPoint
	for percent := decimal.Zero; ; percent = percent.Add(step) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if percent.GreaterThan(hundred) {
			percent = hundred
		}

		gross := GrossSalary(p, domain.ModeExpected, domain.Overrides{}.WithPerformance(percent))
		points = append(points, domain.SweepPoint{
			Percent: percent,
			Gross:   gross,
			Net:     NetSalary(gross, table, d).Net,
		})

		if percent.Equal(hundred) {
			return points, nil
		}
	}
}
