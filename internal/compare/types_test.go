package compare

import (
	"testing"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dp(s string) *decimal.Decimal {
	return domain.Dec(decimal.RequireFromString(s))
}

func TestMarkBest(t *testing.T) {
	tests := []struct {
		name   string
		values []*decimal.Decimal
		higher bool
		want   []bool
	}{
		{"highest wins", []*decimal.Decimal{dp("100"), dp("200"), dp("150")}, true, []bool{false, true, false}},
		{"lowest wins", []*decimal.Decimal{dp("100"), dp("200"), dp("150")}, false, []bool{true, false, false}},
		{"ties share the marker", []*decimal.Decimal{dp("200"), dp("200"), dp("150")}, true, []bool{true, true, false}},
		{"all equal has no marker", []*decimal.Decimal{dp("200"), dp("200")}, true, []bool{false, false}},
		{"zero best has no marker", []*decimal.Decimal{dp("0"), dp("-5")}, true, []bool{false, false}},
		{"missing cell loses", []*decimal.Decimal{nil, dp("500")}, true, []bool{false, true}},
		{"all missing", []*decimal.Decimal{nil, nil}, true, []bool{false, false}},
		{"single value", []*decimal.Decimal{dp("1")}, true, []bool{false}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markBest(tt.values, tt.higher))
		})
	}
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()
	base := ComparisonResult{PositionName: "A", Salary: domain.FullSalary{NetCurrent: decimal.NewFromInt(20000)}}
	other := ComparisonResult{PositionName: "B", Salary: domain.FullSalary{NetCurrent: decimal.NewFromInt(21000)}}

	got := mc.CalculateComparison(other, base)
	assert.True(t, got.NetDiffFromBase.Equal(decimal.NewFromInt(1000)))
	assert.True(t, got.NetPctFromBase.Equal(decimal.NewFromInt(5)))

	zero := ComparisonResult{}
	got = mc.CalculateComparison(other, zero)
	assert.True(t, got.NetPctFromBase.IsZero())
}

func TestBenefitNames_TrimmedAndOrdered(t *testing.T) {
	results := []ComparisonResult{
		{Salary: domain.FullSalary{Benefits: []domain.BenefitLine{{Key: "a", Name: "Stravenky "}, {Key: "b", Name: "Noční"}}}},
		{Salary: domain.FullSalary{Benefits: []domain.BenefitLine{{Key: "c", Name: " Stravenky"}, {Key: "d"}}}},
	}
	assert.Equal(t, []string{"Stravenky", "Noční", "d"}, benefitNames(results))
}

func TestGenerateRecommendations(t *testing.T) {
	compSet := &ComparisonSet{Results: []ComparisonResult{
		{PositionName: "A", Salary: domain.FullSalary{NetCurrent: decimal.NewFromInt(20000), NetMin: decimal.NewFromInt(19000), NetMax: decimal.NewFromInt(21000)}},
		{PositionName: "B", Salary: domain.FullSalary{NetCurrent: decimal.NewFromInt(22000), NetMin: decimal.NewFromInt(22000), NetMax: decimal.NewFromInt(22000)}},
	}}
	compSet.Results[1].PositionID[0] = 1

	recs := GenerateRecommendations(compSet)
	assert.Len(t, recs, 2)
	assert.Contains(t, recs[0], "B pays 2000 Kč more per month than A")
	assert.Contains(t, recs[1], "A net varies by 2000 Kč")
}

func TestGenerateRecommendations_SinglePosition(t *testing.T) {
	compSet := &ComparisonSet{Results: []ComparisonResult{{PositionName: "A"}}}
	assert.Empty(t, GenerateRecommendations(compSet))
}

func TestGenerateRecommendations_TaxBonus(t *testing.T) {
	compSet := &ComparisonSet{Results: []ComparisonResult{
		{PositionName: "A", Salary: domain.FullSalary{Current: domain.NetBreakdown{TaxAfterCredits: decimal.NewFromInt(-2697)}}},
		{PositionName: "B"},
	}}
	recs := GenerateRecommendations(compSet)
	assert.Len(t, recs, 1)
	assert.Contains(t, recs[0], "2697 Kč is paid out as a tax bonus")
}
