package calculation

import (
	"context"
	"fmt"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// TargetError reports a failed performance search
type TargetError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *TargetError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *TargetError) Unwrap() error { return e.Cause }

// TargetResult is the outcome of SolvePerformanceForNet
type TargetResult struct {
	Percent    decimal.Decimal     `json:"percent"`
	Gross      decimal.Decimal     `json:"gross"`
	Breakdown  domain.NetBreakdown `json:"breakdown"`
	Iterations int                 `json:"iterations"`
}

const maxTargetIterations = 60

// DefaultTargetTolerance is the percent precision of the search
var DefaultTargetTolerance = decimal.NewFromFloat(0.01)

// SolvePerformanceForNet finds the lowest performance percent at which the
// position pays at least targetNet. Net is non-decreasing in performance for
// ranges with min <= max, so a binary search over 0..100 is enough.
func SolvePerformanceForNet(ctx context.Context, p domain.Position, table domain.RateTable, d domain.UserDeductions, targetNet, tol decimal.Decimal) (*TargetResult, error) {
	if !tol.IsPositive() {
		tol = DefaultTargetTolerance
	}

	evaluate := func(percent decimal.Decimal) (decimal.Decimal, domain.NetBreakdown) {
		gross := GrossSalary(p, domain.ModeExpected, domain.Overrides{}.WithPerformance(percent))
		return gross, NetSalary(gross, table, d)
	}

	gross, bd := evaluate(decimal.Zero)
	if bd.Net.GreaterThanOrEqual(targetNet) {
		return &TargetResult{Percent: decimal.Zero, Gross: gross, Breakdown: bd}, nil
	}

	gross, bd = evaluate(hundred)
	if bd.Net.LessThan(targetNet) {
		return nil, &TargetError{
			Operation: "solve_performance",
			Message: fmt.Sprintf("target net %s is unreachable, %s pays at most %s",
				targetNet.StringFixed(0), p.Name, bd.Net.StringFixed(0)),
		}
	}

	lo, hi := decimal.Zero, hundred
	best := TargetResult{Percent: hi, Gross: gross, Breakdown: bd}
	two := decimal.NewFromInt(2)

	for i := 1; i <= maxTargetIterations; i++ {
		select {
		case <-ctx.Done():
			return nil, &TargetError{Operation: "solve_performance", Message: "search cancelled", Cause: ctx.Err()}
		default:
		}

		best.Iterations = i
		if hi.Sub(lo).LessThanOrEqual(tol) {
			break
		}

		mid := lo.Add(hi).Div(two)
		g, b := evaluate(mid)
		if b.Net.GreaterThanOrEqual(targetNet) {
			hi = mid
			best.Percent, best.Gross, best.Breakdown = mid, g, b
		} else {
			lo = mid
		}
	}

	return &best, nil
}
