package compare

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jobcomp/jobcomp/internal/calculation"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *domain.Catalog {
	company := domain.Company{ID: uuid.New(), Name: "Strojírny Brno"}
	return &domain.Catalog{
		Companies: []domain.Company{company},
		Positions: []domain.Position{
			{
				ID:               uuid.New(),
				CompanyID:        company.ID,
				Name:             "Operátor výroby",
				PayBasis:         domain.PayMonthly,
				BaseSalary:       decimal.NewFromInt(30000),
				HousingAllowance: decimal.NewFromInt(3000),
				Benefits: []domain.Benefit{
					{Key: "stravenky", Name: "Stravenky", Calculation: domain.FixedAmount{Value: decimal.NewFromInt(2000)}},
				},
			},
			{
				ID:         uuid.New(),
				Name:       "Skladník",
				PayBasis:   domain.PayMonthly,
				BaseSalary: decimal.NewFromInt(28000),
				Benefits: []domain.Benefit{
					{Key: "jidlo", Name: "Stravenky ", Calculation: domain.FixedAmount{Value: decimal.NewFromInt(2000)}},
					{Key: "dochazka", Name: "Docházka", Calculation: domain.FixedAmount{},
						Range: &domain.Range{IsRange: true, Min: dp("0"), Max: dp("2000")}},
				},
			},
		},
	}
}

func rowByLabel(rows []Row, label string) (Row, bool) {
	for _, r := range rows {
		if r.Label == label {
			return r, true
		}
	}
	return Row{}, false
}

func TestCompareEngine_Compare(t *testing.T) {
	ce := NewCompareEngine(calculation.NewDefaultEngine())
	catalog := testCatalog()

	compSet, err := ce.Compare(context.Background(), catalog, CompareOptions{
		Deductions: domain.DefaultDeductions(),
		ConfigPath: "positions.yaml",
	})
	require.NoError(t, err)
	require.Len(t, compSet.Results, 2)

	a, b := compSet.Results[0], compSet.Results[1]
	assert.Equal(t, "Strojírny Brno", a.CompanyName)
	assert.Empty(t, b.CompanyName)
	assert.True(t, a.Salary.NetCurrent.Equal(decimal.NewFromInt(28260)), "net %s", a.Salary.NetCurrent)
	assert.True(t, b.NetDiffFromBase.Equal(b.Salary.NetCurrent.Sub(a.Salary.NetCurrent)))

	stravenky, ok := rowByLabel(compSet.Rows, "Stravenky")
	require.True(t, ok, "benefits with padded names share a row")
	assert.Equal(t, []bool{false, false}, stravenky.Best)

	dochazka, ok := rowByLabel(compSet.Rows, "Docházka")
	require.True(t, ok)
	assert.Nil(t, dochazka.Values[0])
	require.NotNil(t, dochazka.Values[1])

	housing, _ := rowByLabel(compSet.Rows, "Příspěvek na bydlení")
	assert.Equal(t, []bool{true, false}, housing.Best)

	social, _ := rowByLabel(compSet.Rows, "Sociální pojištění")
	assert.Equal(t, []bool{false, true}, social.Best, "lower insurance is better")

	tax, _ := rowByLabel(compSet.Rows, "Daň")
	assert.Equal(t, []bool{false, false}, tax.Best)

	net, _ := rowByLabel(compSet.Rows, "Čistá mzda")
	assert.Equal(t, []bool{true, false}, net.Best)

	assert.NotEmpty(t, compSet.Recommendations)
}

func TestCompareEngine_SelectByName(t *testing.T) {
	ce := NewCompareEngine(calculation.NewDefaultEngine())
	catalog := testCatalog()

	compSet, err := ce.Compare(context.Background(), catalog, CompareOptions{
		Positions:  []string{"Skladník", catalog.Positions[0].ID.String()},
		Deductions: domain.DefaultDeductions(),
	})
	require.NoError(t, err)
	require.Len(t, compSet.Results, 2)
	assert.Equal(t, "Skladník", compSet.Base().PositionName)
}

func TestCompareEngine_Errors(t *testing.T) {
	ce := NewCompareEngine(calculation.NewDefaultEngine())

	_, err := ce.Compare(context.Background(), testCatalog(), CompareOptions{Positions: []string{"Neexistuje"}})
	assert.ErrorContains(t, err, "not found")

	_, err = ce.Compare(context.Background(), &domain.Catalog{}, CompareOptions{})
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ce.Compare(ctx, testCatalog(), CompareOptions{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCompareEngine_PerformanceOverride(t *testing.T) {
	ce := NewCompareEngine(calculation.NewDefaultEngine())
	catalog := testCatalog()

	compSet, err := ce.Compare(context.Background(), catalog, CompareOptions{
		Positions:  []string{"Skladník"},
		Deductions: domain.DefaultDeductions(),
		Overrides:  domain.Overrides{}.WithPerformance(decimal.NewFromInt(50)),
	})
	require.NoError(t, err)
	require.NotNil(t, compSet.PerformancePercent)

	dochazka, ok := rowByLabel(compSet.Rows, "Docházka")
	require.True(t, ok)
	assert.True(t, dochazka.Values[0].Equal(decimal.NewFromInt(1000)))
}

func TestCompareEngine_DuplicateBenefitNames(t *testing.T) {
	ce := NewCompareEngine(calculation.NewDefaultEngine())
	catalog := &domain.Catalog{
		Positions: []domain.Position{{
			ID:         uuid.New(),
			Name:       "Expedient",
			PayBasis:   domain.PayMonthly,
			BaseSalary: decimal.NewFromInt(26000),
			Benefits: []domain.Benefit{
				{Key: "premie", Name: "Prémie", Calculation: domain.FixedAmount{Value: decimal.NewFromInt(1500)}},
				{Key: "premie2", Name: " Prémie", Calculation: domain.FixedAmount{Value: decimal.NewFromInt(500)}},
			},
		}},
	}

	compSet, err := ce.Compare(context.Background(), catalog, CompareOptions{Deductions: domain.DefaultDeductions()})
	require.NoError(t, err)

	assert.True(t, compSet.Results[0].Benefits["Prémie"].Equal(decimal.NewFromInt(1500)))
	row, ok := rowByLabel(compSet.Rows, "Prémie")
	require.True(t, ok)
	require.NotNil(t, row.Values[0])
	assert.True(t, row.Values[0].Equal(decimal.NewFromInt(1500)), "got %s", row.Values[0])
	assert.True(t, compSet.Results[0].Salary.GrossCurrent.Equal(decimal.NewFromInt(28000)))
}
