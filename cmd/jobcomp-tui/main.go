package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jobcomp/jobcomp/internal/calculation"
	"github.com/jobcomp/jobcomp/internal/config"
	"github.com/jobcomp/jobcomp/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: jobcomp-tui <positions-file>")
		os.Exit(1)
	}
	configPath := os.Args[1]

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Error: Positions file not found: %s\n", configPath)
		os.Exit(1)
	}

	engine, err := newEngine()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewModel(configPath, engine),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// newEngine uses $JOBCOMP_RATES when set. Logging stays off so it does not
// draw over the alternate screen.
func newEngine() (*calculation.Engine, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}
	if settings.RatesFile == "" {
		return calculation.NewDefaultEngine(), nil
	}
	loaded, err := config.NewInputParser().LoadRateTable(settings.RatesFile, settings.AsOf)
	if err != nil {
		return nil, err
	}
	return calculation.NewEngine(loaded.Table), nil
}
