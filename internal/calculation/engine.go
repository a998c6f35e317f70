package calculation

import (
	"context"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// Engine binds a rate table to the salary functions. It is read-only after
// construction and safe for concurrent use.
type Engine struct {
	Rates  domain.RateTable
	logger Logger
}

// NewEngine creates an engine over the given rate table
func NewEngine(rates domain.RateTable) *Engine {
	return &Engine{Rates: rates, logger: NopLogger()}
}

// NewDefaultEngine creates an engine that uses the legal default rates only
func NewDefaultEngine() *Engine {
	return NewEngine(domain.DefaultRateTable())
}

// SetLogger sets the logger used for debug output. Call before sharing the engine.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger()
	}
	e.logger = l
}

// Gross returns the monthly gross of a position
func (e *Engine) Gross(p domain.Position, mode domain.Mode, o domain.Overrides) decimal.Decimal {
	gross := GrossSalary(p, mode, o)
	e.logger.Debugf("gross %q mode=%s performance=%s -> %s", p.Name, mode, percentString(o.PerformancePercent), gross)
	return gross
}

// Benefits values each benefit of a position
func (e *Engine) Benefits(p domain.Position, mode domain.Mode, o domain.Overrides) []domain.BenefitLine {
	return BenefitBreakdown(p, mode, o)
}

// Net returns the net breakdown for a gross amount
func (e *Engine) Net(gross decimal.Decimal, d domain.UserDeductions) domain.NetBreakdown {
	bd := NetSalary(gross, e.Rates, d)
	e.logger.Debugf("net gross=%s social=%s health=%s base=%s tax=%s personal=%s children=%s final=%s net=%s",
		gross, bd.Social, bd.Health, bd.TaxBase, bd.TaxBeforeCredits,
		bd.PersonalCredits, bd.ChildCredits, bd.TaxAfterCredits, bd.Net)
	return bd
}

// Credits resolves the tax credits for a set of elections
func (e *Engine) Credits(d domain.UserDeductions) domain.TaxCredits {
	return ResolveCredits(e.Rates, d)
}

// Calculate returns gross and net for one mode
func (e *Engine) Calculate(p domain.Position, mode domain.Mode, o domain.Overrides, d domain.UserDeductions) domain.NetBreakdown {
	return e.Net(e.Gross(p, mode, o), d)
}

// Full evaluates a position in every mode
func (e *Engine) Full(p domain.Position, d domain.UserDeductions, o domain.Overrides) domain.FullSalary {
	full := FullSalary(p, e.Rates, d, o)
	e.logger.Debugf("full %q gross %s..%s net %s..%s current=%s",
		p.Name, full.GrossMin, full.GrossMax, full.NetMin, full.NetMax, full.NetCurrent)
	return full
}

// Sweep runs a performance sweep
func (e *Engine) Sweep(ctx context.Context, p domain.Position, d domain.UserDeductions, step decimal.Decimal) ([]domain.SweepPoint, error) {
	points, err := PerformanceSweep(ctx, p, e.Rates, d, step)
	if err != nil {
		e.logger.Warnf("sweep %q stopped: %v", p.Name, err)
		return nil, err
	}
	return points, nil
}

// Target finds the performance percent needed to reach a net amount
func (e *Engine) Target(ctx context.Context, p domain.Position, d domain.UserDeductions, targetNet, tol decimal.Decimal) (*TargetResult, error) {
	res, err := SolvePerformanceForNet(ctx, p, e.Rates, d, targetNet, tol)
	if err != nil {
		e.logger.Infof("target %s for %q: %v", targetNet, p.Name, err)
		return nil, err
	}
	e.logger.Debugf("target %s for %q reached at %s%% after %d iterations", targetNet, p.Name, res.Percent.StringFixed(2), res.Iterations)
	return res, nil
}

func percentString(p *decimal.Decimal) string {
	if p == nil {
		return "-"
	}
	return p.String()
}
