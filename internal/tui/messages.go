package tui

import "github.com/jobcomp/jobcomp/internal/domain"

// Focus is the panel receiving keys
type Focus int

const (
	FocusPositions Focus = iota
	FocusPerformance
	FocusDeductions
	focusCount
)

func (f Focus) String() string {
	switch f {
	case FocusPositions:
		return "Pozice"
	case FocusPerformance:
		return "Výkon"
	case FocusDeductions:
		return "Slevy"
	default:
		return "Unknown"
	}
}

// CatalogLoadedMsg signals the positions file has been loaded
type CatalogLoadedMsg struct {
	Catalog *domain.Catalog
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}
