package output

import (
	"fmt"

	"github.com/jobcomp/jobcomp/internal/domain"
)

// Assumptions lists the rates a calculation was made with
func Assumptions(table domain.RateTable) []string {
	settings := table.Settings()
	lines := make([]string, 0, len(settings))
	for _, s := range settings {
		if s.Category == domain.CategoryDeduction {
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s", s.Name, FormatPercentage(s.Value)))
	}
	lines = append(lines, "Základ daně zaokrouhlen na celé stovky nahoru")
	return lines
}
