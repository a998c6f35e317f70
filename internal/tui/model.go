package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jobcomp/jobcomp/internal/calculation"
	"github.com/jobcomp/jobcomp/internal/config"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/jobcomp/jobcomp/internal/tui/components"
)

// Model is the comparator state
type Model struct {
	width  int
	height int

	configPath string
	catalog    *domain.Catalog
	engine     *calculation.Engine

	selected    int
	focus       Focus
	performance *components.ParameterSlider
	deductions  *components.DeductionList

	// salary of the selected position at the slider's performance
	salary domain.FullSalary

	keys keyMap
	help help.Model

	err     error
	loading bool
}

// NewModel creates the comparator for a positions file
func NewModel(configPath string, engine *calculation.Engine) Model {
	if engine == nil {
		engine = calculation.NewDefaultEngine()
	}
	return Model{
		configPath:  configPath,
		engine:      engine,
		performance: components.NewParameterSlider("Výkon", 50, 0, 100, 5).WithUnit(" %"),
		deductions:  components.NewDeductionList(domain.DefaultDeductions()),
		keys:        keys,
		help:        help.New(),
		width:       100,
		height:      30,
		loading:     true,
	}
}

// Init starts loading the positions file
func (m Model) Init() tea.Cmd {
	return loadCatalogCmd(m.configPath)
}

func loadCatalogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		catalog, err := config.NewInputParser().LoadCatalog(path)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return CatalogLoadedMsg{Catalog: catalog}
	}
}

// Salary returns the figures currently displayed
func (m Model) Salary() domain.FullSalary {
	return m.salary
}

func (m *Model) recalculate() {
	if m.catalog == nil || len(m.catalog.Positions) == 0 {
		return
	}
	p := m.catalog.Positions[m.selected]
	o := domain.Overrides{}.WithPerformance(m.performance.Decimal())
	m.salary = m.engine.Full(p, m.deductions.Deductions, o)
}
