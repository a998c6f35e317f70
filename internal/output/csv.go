package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes one item,amount row per salary component
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(r *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	s := r.Salary
	b := s.Current

	rows := [][]string{
		{"Item", "Kind", "Amount"},
		{"base_salary", "earning", s.BaseSalary.StringFixed(0)},
		{"housing_allowance", "earning", s.Housing.StringFixed(0)},
	}
	for _, line := range s.Benefits {
		rows = append(rows, []string{displayName(line), "benefit", line.Amount.StringFixed(0)})
	}
	rows = append(rows,
		[]string{"gross", "total", s.GrossCurrent.StringFixed(0)},
		[]string{"social", "deduction", b.Social.StringFixed(0)},
		[]string{"health", "deduction", b.Health.StringFixed(0)},
		[]string{"tax_base", "info", b.TaxBase.StringFixed(0)},
		[]string{"tax_before_credits", "info", b.TaxBeforeCredits.StringFixed(0)},
		[]string{"tax_credits", "info", b.TaxCredits.StringFixed(0)},
		[]string{"tax", "deduction", b.TaxAfterCredits.StringFixed(0)},
		[]string{"net", "total", b.Net.StringFixed(0)},
		[]string{"net_min", "range", s.NetMin.StringFixed(0)},
		[]string{"net_max", "range", s.NetMax.StringFixed(0)},
	)
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
