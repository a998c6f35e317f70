package compare

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
)

// ComparisonResult is one position evaluated for comparison
type ComparisonResult struct {
	PositionID   uuid.UUID         `json:"positionId"`
	PositionName string            `json:"positionName"`
	CompanyName  string            `json:"companyName,omitempty"`
	Salary       domain.FullSalary `json:"salary"`

	// Benefit amounts at the current performance, keyed by trimmed benefit name
	Benefits map[string]decimal.Decimal `json:"benefits"`

	// Comparison to the first position
	NetDiffFromBase decimal.Decimal `json:"netDiffFromBase"`
	NetPctFromBase  decimal.Decimal `json:"netPctFromBase"`
}

// Metric identifies a comparison row
type Metric string

const (
	MetricBaseSalary   Metric = "base_salary"
	MetricHousing      Metric = "housing_allowance"
	MetricBenefit      Metric = "benefit"
	MetricTotalBonuses Metric = "total_bonuses"
	MetricGross        Metric = "gross"
	MetricSocial       Metric = "social"
	MetricHealth       Metric = "health"
	MetricTax          Metric = "tax"
	MetricNet          Metric = "net"
	MetricNetMin       Metric = "net_min"
	MetricNetMax       Metric = "net_max"
)

// Row is one line of the comparison table. Values has one entry per
// position; nil means the position has no such item.
type Row struct {
	Metric Metric             `json:"metric"`
	Label  string             `json:"label"`
	Values []*decimal.Decimal `json:"values"`
	Best   []bool             `json:"best"`
}

// ComparisonSet is the full comparison of several positions
type ComparisonSet struct {
	ConfigPath         string                `json:"configPath"`
	Deductions         domain.UserDeductions `json:"deductions"`
	PerformancePercent *decimal.Decimal      `json:"performancePercent,omitempty"`
	Results            []ComparisonResult    `json:"results"`
	Rows               []Row                 `json:"rows"`
	Recommendations    []string              `json:"recommendations"`
}

// Base returns the first result, which the differences refer to
func (cs *ComparisonSet) Base() *ComparisonResult {
	if len(cs.Results) == 0 {
		return nil
	}
	return &cs.Results[0]
}

// MetricsCalculator derives comparison rows and differences
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateComparison fills the differences of a result against the base
func (mc *MetricsCalculator) CalculateComparison(result, base ComparisonResult) ComparisonResult {
	result.NetDiffFromBase = result.Salary.NetCurrent.Sub(base.Salary.NetCurrent)
	result.NetPctFromBase = decimal.Zero
	if !base.Salary.NetCurrent.IsZero() {
		result.NetPctFromBase = result.NetDiffFromBase.
			Div(base.Salary.NetCurrent).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}
	return result
}

// BuildRows lays out the comparison table with best-value markers. Lower is
// better for insurance rows, higher for everything else. No marker is set
// when all values in a row are equal or the best value is not positive.
func (mc *MetricsCalculator) BuildRows(results []ComparisonResult) []Row {
	pick := func(f func(r ComparisonResult) decimal.Decimal) []*decimal.Decimal {
		values := make([]*decimal.Decimal, len(results))
		for i, r := range results {
			values[i] = domain.Dec(f(r))
		}
		return values
	}

	rows := []Row{
		{Metric: MetricBaseSalary, Label: "Základní mzda", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.BaseSalary })},
		{Metric: MetricHousing, Label: "Příspěvek na bydlení", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.Housing })},
	}

	for _, name := range benefitNames(results) {
		values := make([]*decimal.Decimal, len(results))
		for i, r := range results {
			if v, ok := r.Benefits[name]; ok {
				values[i] = domain.Dec(v)
			}
		}
		rows = append(rows, Row{Metric: MetricBenefit, Label: name, Values: values})
	}

	rows = append(rows,
		Row{Metric: MetricTotalBonuses, Label: "Bonusy celkem", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.TotalBonuses() })},
		Row{Metric: MetricGross, Label: "Hrubá mzda", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.GrossCurrent })},
		Row{Metric: MetricSocial, Label: "Sociální pojištění", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.Current.Social })},
		Row{Metric: MetricHealth, Label: "Zdravotní pojištění", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.Current.Health })},
		Row{Metric: MetricTax, Label: "Daň", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.Current.TaxAfterCredits })},
		Row{Metric: MetricNetMin, Label: "Čistá mzda (min)", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.NetMin })},
		Row{Metric: MetricNetMax, Label: "Čistá mzda (max)", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.NetMax })},
		Row{Metric: MetricNet, Label: "Čistá mzda", Values: pick(func(r ComparisonResult) decimal.Decimal { return r.Salary.NetCurrent })},
	)

	for i := range rows {
		switch rows[i].Metric {
		case MetricTax:
			rows[i].Best = make([]bool, len(results))
		case MetricSocial, MetricHealth:
			rows[i].Best = markBest(rows[i].Values, false)
		default:
			rows[i].Best = markBest(rows[i].Values, true)
		}
	}
	return rows
}

// markBest flags every value equal to the best one
func markBest(values []*decimal.Decimal, higherIsBetter bool) []bool {
	best := make([]bool, len(values))

	var target *decimal.Decimal
	allSame := true
	for _, v := range values {
		if v == nil {
			allSame = false
			continue
		}
		if target == nil {
			target = v
			continue
		}
		if !v.Equal(*target) {
			allSame = false
		}
		if (higherIsBetter && v.GreaterThan(*target)) || (!higherIsBetter && v.LessThan(*target)) {
			target = v
		}
	}
	if target == nil || allSame || !target.IsPositive() {
		return best
	}

	for i, v := range values {
		best[i] = v != nil && v.Equal(*target)
	}
	return best
}

// benefitNames returns the distinct benefit names in first-seen order
func benefitNames(results []ComparisonResult) []string {
	seen := make(map[string]bool)
	var names []string
	for _, r := range results {
		for _, line := range r.Salary.Benefits {
			name := benefitName(line)
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return names
}

// GenerateRecommendations summarises the comparison in a few sentences
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}
	if len(compSet.Results) < 2 {
		return recommendations
	}

	best := compSet.Results[0]
	worst := compSet.Results[0]
	for _, r := range compSet.Results[1:] {
		if r.Salary.NetCurrent.GreaterThan(best.Salary.NetCurrent) {
			best = r
		}
		if r.Salary.NetCurrent.LessThan(worst.Salary.NetCurrent) {
			worst = r
		}
	}
	if best.PositionID != worst.PositionID && !best.Salary.NetCurrent.Equal(worst.Salary.NetCurrent) {
		recommendations = append(recommendations, fmt.Sprintf(
			"Best net pay: %s pays %s Kč more per month than %s",
			best.PositionName, best.Salary.NetCurrent.Sub(worst.Salary.NetCurrent).StringFixed(0), worst.PositionName))
	}

	widest := compSet.Results[0]
	for _, r := range compSet.Results[1:] {
		if spread(r).GreaterThan(spread(widest)) {
			widest = r
		}
	}
	if spread(widest).IsPositive() {
		recommendations = append(recommendations, fmt.Sprintf(
			"Most performance-dependent: %s net varies by %s Kč between min and max",
			widest.PositionName, spread(widest).StringFixed(0)))
	}

	for _, r := range compSet.Results {
		if r.Salary.Current.TaxBonus().IsPositive() {
			recommendations = append(recommendations, fmt.Sprintf(
				"%s: child credits exceed the tax, %s Kč is paid out as a tax bonus",
				r.PositionName, r.Salary.Current.TaxBonus().StringFixed(0)))
		}
	}
	return recommendations
}

func spread(r ComparisonResult) decimal.Decimal {
	return r.Salary.NetMax.Sub(r.Salary.NetMin)
}
