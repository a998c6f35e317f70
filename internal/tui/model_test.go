package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jobcomp/jobcomp/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedModel(t *testing.T) Model {
	t.Helper()
	catalog, err := config.NewInputParser().LoadCatalog("../../testdata/positions.yaml")
	require.NoError(t, err)

	m := NewModel("positions.yaml", nil)
	updated, _ := m.Update(CatalogLoadedMsg{Catalog: catalog})
	return updated.(Model)
}

func press(m Model, keys ...tea.KeyMsg) Model {
	for _, k := range keys {
		updated, _ := m.Update(k)
		m = updated.(Model)
	}
	return m
}

var (
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
)

func TestModel_LoadsAndCalculates(t *testing.T) {
	m := loadedModel(t)
	assert.False(t, m.loading)
	assert.Equal(t, "Operátor výroby", m.Salary().PositionName)
	assert.Equal(t, "35000", m.Salary().GrossCurrent.String())
	assert.Equal(t, "28260", m.Salary().NetCurrent.String())
	assert.Contains(t, m.View(), "Operátor výroby")
}

func TestModel_SelectPosition(t *testing.T) {
	m := press(loadedModel(t), keyDown, keyDown, keyDown, keyDown)
	assert.Equal(t, 2, m.selected)
	assert.Equal(t, "Skladník", m.Salary().PositionName)

	m = press(m, keyUp)
	assert.Equal(t, 1, m.selected)
}

func TestModel_PerformanceSlider(t *testing.T) {
	m := press(loadedModel(t), keyDown, keyDown, keyTab)
	require.Equal(t, FocusPerformance, m.focus)
	before := m.Salary().GrossCurrent

	for i := 0; i < 10; i++ {
		m = press(m, keyRight)
	}
	assert.Equal(t, 100, m.performance.Value)
	assert.True(t, m.Salary().GrossCurrent.GreaterThan(before))
	assert.True(t, m.Salary().GrossCurrent.Equal(m.Salary().GrossMax))

	for i := 0; i < 20; i++ {
		m = press(m, keyLeft)
	}
	assert.True(t, m.Salary().GrossCurrent.Equal(m.Salary().GrossMin))
}

func TestModel_DeductionToggles(t *testing.T) {
	m := press(loadedModel(t), keyTab, keyTab)
	require.Equal(t, FocusDeductions, m.focus)

	m = press(m, keySpace)
	assert.False(t, m.deductions.Deductions.Taxpayer)
	assert.True(t, m.Salary().Current.TaxCredits.IsZero())

	m = press(m, keyDown, keyRight, keyRight)
	assert.Equal(t, 2, m.deductions.Deductions.Children)
	assert.True(t, m.Salary().Current.ChildCredits.IsPositive())
}

func TestModel_TabCycles(t *testing.T) {
	m := press(loadedModel(t), keyTab, keyTab, keyTab)
	assert.Equal(t, FocusPositions, m.focus)
	assert.Equal(t, "Výkon", FocusPerformance.String())
}

func TestModel_Error(t *testing.T) {
	updated, _ := NewModel("missing.yaml", nil).Update(ErrorMsg{Err: errors.New("boom")})
	m := updated.(Model)
	assert.Contains(t, m.View(), "boom")
}

func TestModel_Quit(t *testing.T) {
	_, cmd := loadedModel(t).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_InitLoadsCatalog(t *testing.T) {
	msg := NewModel("../../testdata/positions.yaml", nil).Init()()
	loaded, ok := msg.(CatalogLoadedMsg)
	require.True(t, ok, "got %T", msg)
	assert.Len(t, loaded.Catalog.Positions, 3)

	msg = NewModel("missing.yaml", nil).Init()()
	assert.IsType(t, ErrorMsg{}, msg)
}
