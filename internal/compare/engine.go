package compare

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jobcomp/jobcomp/internal/calculation"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// CompareEngine orchestrates position comparison
type CompareEngine struct {
	CalcEngine        *calculation.Engine
	MetricsCalculator *MetricsCalculator
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.Engine) *CompareEngine {
	return &CompareEngine{
		CalcEngine:        calcEngine,
		MetricsCalculator: NewMetricsCalculator(),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Positions  []string // IDs or names; empty compares every position
	Deductions domain.UserDeductions
	Overrides  domain.Overrides
	ConfigPath string
}

// Compare evaluates the selected positions concurrently. The first selected
// position is the base for differences.
func (ce *CompareEngine) Compare(ctx context.Context, catalog *domain.Catalog, options CompareOptions) (*ComparisonSet, error) {
	positions, err := selectPositions(catalog, options.Positions)
	if err != nil {
		return nil, err
	}

	results := make([]ComparisonResult, len(positions))
	errs := make([]error, len(positions))

	var wg sync.WaitGroup
	for i := range positions {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i] = ce.evaluate(catalog, positions[i], options)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to calculate position %s: %w", positions[i].Name, err)
		}
	}

	for i := 1; i < len(results); i++ {
		results[i] = ce.MetricsCalculator.CalculateComparison(results[i], results[0])
	}

	compSet := &ComparisonSet{
		ConfigPath:         options.ConfigPath,
		Deductions:         options.Deductions,
		PerformancePercent: options.Overrides.PerformancePercent,
		Results:            results,
		Rows:               ce.MetricsCalculator.BuildRows(results),
	}
	compSet.Recommendations = GenerateRecommendations(compSet)
	return compSet, nil
}

func (ce *CompareEngine) evaluate(catalog *domain.Catalog, p domain.Position, options CompareOptions) ComparisonResult {
	full := ce.CalcEngine.Full(p, options.Deductions, options.Overrides)

	benefits := make(map[string]decimal.Decimal, len(full.Benefits))
	for _, line := range full.Benefits {
		// first benefit wins when names collide
		if name := benefitName(line); !hasKey(benefits, name) {
			benefits[name] = line.Amount
		}
	}

	result := ComparisonResult{
		PositionID:   p.ID,
		PositionName: p.Name,
		Salary:       full,
		Benefits:     benefits,
	}
	if c, ok := catalog.Company(p.CompanyID); ok {
		result.CompanyName = c.Name
	}
	return result
}

func selectPositions(catalog *domain.Catalog, refs []string) ([]domain.Position, error) {
	if len(refs) == 0 {
		if len(catalog.Positions) == 0 {
			return nil, fmt.Errorf("no positions to compare")
		}
		return catalog.Positions, nil
	}

	positions := make([]domain.Position, 0, len(refs))
	for _, ref := range refs {
		p, ok := catalog.FindPosition(ref)
		if !ok {
			return nil, fmt.Errorf("position %s not found", ref)
		}
		positions = append(positions, p)
	}
	return positions, nil
}

// benefitName is the row key of a benefit; positions share a row when their
// benefits carry the same name
func benefitName(line domain.BenefitLine) string {
	if name := strings.TrimSpace(line.Name); name != "" {
		return name
	}
	return line.Key
}

func hasKey(m map[string]decimal.Decimal, k string) bool {
	_, ok := m[k]
	return ok
}
