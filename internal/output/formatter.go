package output

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/jobcomp/jobcomp/internal/domain"
)

// Report is everything a formatter needs to render one position
type Report struct {
	CompanyName string                `json:"company_name,omitempty"`
	Salary      domain.FullSalary     `json:"salary"`
	Deductions  domain.UserDeductions `json:"deductions"`
	Rates       domain.RateTable      `json:"-"`
	GeneratedAt time.Time             `json:"generated_at"`
}

// NewReport stamps a salary summary with the current time
func NewReport(companyName string, salary domain.FullSalary, d domain.UserDeductions, rates domain.RateTable) *Report {
	return &Report{
		CompanyName: companyName,
		Salary:      salary,
		Deductions:  d,
		Rates:       rates,
		GeneratedAt: time.Now(),
	}
}

// Formatter renders a report into bytes
type Formatter interface {
	Name() string
	Format(r *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface
type FormatterFunc struct {
	ID string
	F  func(r *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(r *Report) ([]byte, error) { return f.F(r) }

var registry = map[string]Formatter{
	"console":      ConsoleFormatter{},
	"console-lite": ConsoleLiteFormatter{},
	"csv":          CSVFormatter{},
	"json":         JSONFormatter{Pretty: true},
	"pdf":          PayslipPDF{},
}

var aliases = map[string]string{
	"verbose": "console",
	"text":    "console",
	"summary": "console-lite",
	"payslip": "pdf",
}

// AvailableFormatterNames lists registered formatter names, sorted
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the accepted alternative names, sorted
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetFormatterByName resolves a formatter or alias; nil when unknown
func GetFormatterByName(name string) Formatter {
	if target, ok := aliases[name]; ok {
		name = target
	}
	return registry[name]
}

// WriteFormatted renders the report and writes it to a timestamped file in
// the working directory, returning the file name
func WriteFormatted(f Formatter, r *Report, ext string) (string, error) {
	data, err := f.Format(r)
	if err != nil {
		return "", fmt.Errorf("failed to format report: %w", err)
	}
	filename := fmt.Sprintf("salary_report_%s.%s", time.Now().Format("20060102_150405"), ext)
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return filename, nil
}
