package components

import (
	"testing"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParameterSlider_Clamps(t *testing.T) {
	s := NewParameterSlider("Výkon", 95, 0, 100, 10)
	s.Increment()
	assert.Equal(t, 100, s.Value)
	s.Increment()
	assert.Equal(t, 100, s.Value)

	s.SetValue(-20)
	assert.Equal(t, 0, s.Value)
	s.Decrement()
	assert.Equal(t, 0, s.Value)

	s.SetValue(50)
	assert.InDelta(t, 0.5, s.Fraction(), 1e-9)
	assert.True(t, decimal.NewFromInt(50).Equal(s.Decimal()))
	assert.Contains(t, s.WithUnit(" %").Render(), "50 %")
}

func TestMetricCard_Change(t *testing.T) {
	c := NewMetricCard("Čistá", decimal.NewFromInt(28260))
	assert.True(t, c.Change().IsZero())

	c.WithReference(decimal.NewFromInt(27526), false)
	assert.True(t, c.Change().Equal(decimal.NewFromInt(734)))
	assert.Contains(t, c.Render(), "734 Kč")
}

func TestDeductionList_Adjust(t *testing.T) {
	l := NewDeductionList(domain.DefaultDeductions())

	l.Toggle()
	assert.False(t, l.Deductions.Taxpayer)

	l.Down()
	l.Adjust(1)
	l.Adjust(1)
	l.Adjust(-1)
	assert.Equal(t, 1, l.Deductions.Children)
	l.Adjust(-5)
	assert.Equal(t, 0, l.Deductions.Children)

	l.Down()
	l.Adjust(1)
	assert.Equal(t, domain.DisabilityTier1, l.Deductions.Disability)
	l.Adjust(-1)
	l.Adjust(-1)
	assert.Equal(t, domain.DisabilityTier3, l.Deductions.Disability)

	l.Down()
	l.Down()
	l.Down()
	assert.Equal(t, RowStudent, l.Cursor)
	l.Toggle()
	assert.True(t, l.Deductions.Student)

	for i := 0; i < 10; i++ {
		l.Up()
	}
	assert.Equal(t, RowTaxpayer, l.Cursor)
}
