package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// GenerateReport renders the report with the named formatter and writes it
func GenerateReport(w io.Writer, r *Report, format string) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	data, err := f.Format(r)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// FormatCurrency formats whole crowns with space-separated thousands
func FormatCurrency(amount decimal.Decimal) string {
	return groupThousands(amount.Round(0)) + " Kč"
}

// FormatHourly formats an hourly amount with two decimals
func FormatHourly(amount decimal.Decimal) string {
	return strings.Replace(amount.StringFixed(2), ".", ",", 1) + " Kč/h"
}

// FormatPercentage formats a decimal as percentage
func FormatPercentage(amount decimal.Decimal) string {
	return amount.String() + " %"
}

func groupThousands(d decimal.Decimal) string {
	s := d.Abs().StringFixed(0)
	var sb strings.Builder
	if d.IsNegative() {
		sb.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(c)
	}
	return sb.String()
}
