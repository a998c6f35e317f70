package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats the comparison table as CSV, one column per position
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"Metric", "Label"}
	for _, r := range compSet.Results {
		header = append(header, r.PositionName)
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	for _, row := range compSet.Rows {
		if err := writer.Write(cf.formatRow(row)); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow renders a row; missing values are empty and best values carry a
// trailing asterisk
func (cf *CSVFormatter) formatRow(row Row) []string {
	record := []string{string(row.Metric), row.Label}
	for i, v := range row.Values {
		cell := ""
		if v != nil {
			cell = v.StringFixed(0)
			if i < len(row.Best) && row.Best[i] {
				cell += "*"
			}
		}
		record = append(record, cell)
	}
	return record
}
