package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jobcomp/jobcomp/internal/domain"
)

// ConsoleFormatter renders the detailed salary breakdown
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	s := r.Salary

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "VÝPOČET MZDY: %s\n", s.PositionName)
	if r.CompanyName != "" {
		fmt.Fprintf(&buf, "Firma: %s\n", r.CompanyName)
	}
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "PŘEDPOKLADY:")
	for _, a := range Assumptions(r.Rates) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SLOŽKY MZDY:")
	fmt.Fprintf(&buf, "  %-28s %14s\n", "Základní mzda", FormatCurrency(s.BaseSalary))
	if !s.Housing.IsZero() {
		fmt.Fprintf(&buf, "  %-28s %14s\n", "Příspěvek na bydlení", FormatCurrency(s.Housing))
	}
	for _, line := range s.Benefits {
		fmt.Fprintf(&buf, "  %-28s %14s  (%s)\n", displayName(line), FormatCurrency(line.Amount), line.Label)
	}
	fmt.Fprintf(&buf, "  %-28s %14s\n", "HRUBÁ MZDA", FormatCurrency(s.GrossCurrent))
	fmt.Fprintln(&buf)

	writeBreakdown(&buf, s.Current)

	fmt.Fprintln(&buf, "ROZPĚTÍ:")
	fmt.Fprintf(&buf, "  %-10s %14s %14s %14s\n", "", "min", "očekávaná", "max")
	fmt.Fprintf(&buf, "  %-10s %14s %14s %14s\n", "Hrubá", FormatCurrency(s.GrossMin), FormatCurrency(s.GrossExpected), FormatCurrency(s.GrossMax))
	fmt.Fprintf(&buf, "  %-10s %14s %14s %14s\n", "Čistá", FormatCurrency(s.NetMin), FormatCurrency(s.NetExpected), FormatCurrency(s.NetMax))
	fmt.Fprintf(&buf, "  Hodinově hrubá %s – %s, čistá %s – %s (fond %s h)\n",
		FormatHourly(s.HourlyGrossMin), FormatHourly(s.HourlyGrossMax),
		FormatHourly(s.HourlyNetMin), FormatHourly(s.HourlyNetMax), s.Fund.String())

	return buf.Bytes(), nil
}

func writeBreakdown(buf *bytes.Buffer, b domain.NetBreakdown) {
	fmt.Fprintln(buf, "SRÁŽKY:")
	fmt.Fprintf(buf, "  %-28s %14s\n", "Sociální pojištění", FormatCurrency(b.Social))
	fmt.Fprintf(buf, "  %-28s %14s\n", "Zdravotní pojištění", FormatCurrency(b.Health))
	fmt.Fprintf(buf, "  %-28s %14s\n", "Základ daně", FormatCurrency(b.TaxBase))
	fmt.Fprintf(buf, "  %-28s %14s\n", "Daň před slevami", FormatCurrency(b.TaxBeforeCredits))
	fmt.Fprintf(buf, "  %-28s %14s\n", "Slevy na dani", FormatCurrency(b.TaxCredits))
	fmt.Fprintf(buf, "  %-28s %14s\n", "Daň po slevách", FormatCurrency(b.TaxAfterCredits))
	if bonus := b.TaxBonus(); bonus.IsPositive() {
		fmt.Fprintf(buf, "  %-28s %14s\n", "Daňový bonus", FormatCurrency(bonus))
	}
	fmt.Fprintf(buf, "  %-28s %14s\n", "ČISTÁ MZDA", FormatCurrency(b.Net))
	fmt.Fprintln(buf)
}

func displayName(line domain.BenefitLine) string {
	if name := strings.TrimSpace(line.Name); name != "" {
		return name
	}
	return line.Key
}

// ConsoleLiteFormatter prints a short min/expected/max summary
type ConsoleLiteFormatter struct{}

func (c ConsoleLiteFormatter) Name() string { return "console-lite" }

func (c ConsoleLiteFormatter) Format(r *Report) ([]byte, error) {
	var buf bytes.Buffer
	s := r.Salary
	fmt.Fprintf(&buf, "%s\n", s.PositionName)
	fmt.Fprintf(&buf, "  hrubá %s (min %s, max %s)\n", FormatCurrency(s.GrossCurrent), FormatCurrency(s.GrossMin), FormatCurrency(s.GrossMax))
	fmt.Fprintf(&buf, "  čistá %s (min %s, max %s)\n", FormatCurrency(s.NetCurrent), FormatCurrency(s.NetMin), FormatCurrency(s.NetMax))
	return buf.Bytes(), nil
}
