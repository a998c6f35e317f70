package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// PayslipPDF renders a one-page payslip-style breakdown
type PayslipPDF struct{}

func (p PayslipPDF) Name() string { return "pdf" }

// The core PDF fonts only cover Latin-1, so Czech letters are folded to ASCII.
var czechFold = strings.NewReplacer(
	"á", "a", "č", "c", "ď", "d", "é", "e", "ě", "e", "í", "i", "ň", "n",
	"ó", "o", "ř", "r", "š", "s", "ť", "t", "ú", "u", "ů", "u", "ý", "y", "ž", "z",
	"Á", "A", "Č", "C", "Ď", "D", "É", "E", "Ě", "E", "Í", "I", "Ň", "N",
	"Ó", "O", "Ř", "R", "Š", "S", "Ť", "T", "Ú", "U", "Ů", "U", "Ý", "Y", "Ž", "Z",
	"–", "-",
)

func (p PayslipPDF) Format(r *Report) ([]byte, error) {
	s := r.Salary
	b := s.Current

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(czechFold.Replace("Výplatní páska "+s.PositionName), false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, czechFold.Replace("Výplatní páska"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, czechFold.Replace(fmt.Sprintf("Pozice: %s", s.PositionName)))
	pdf.Ln(7)
	if r.CompanyName != "" {
		pdf.Cell(0, 8, czechFold.Replace(fmt.Sprintf("Firma: %s", r.CompanyName)))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Datum: %s", r.GeneratedAt.Format("2006-01-02")))
	pdf.Ln(10)

	row := func(label string, amount decimal.Decimal, bold bool) {
		style := ""
		if bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, 11)
		pdf.CellFormat(110, 7, czechFold.Replace(label), "", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, czechFold.Replace(FormatCurrency(amount)), "", 1, "R", false, 0, "")
	}

	row("Základní mzda", s.BaseSalary, false)
	if !s.Housing.IsZero() {
		row("Příspěvek na bydlení", s.Housing, false)
	}
	for _, line := range s.Benefits {
		row(displayName(line), line.Amount, false)
	}
	row("Hrubá mzda", s.GrossCurrent, true)
	pdf.Ln(4)

	row("Sociální pojištění", b.Social, false)
	row("Zdravotní pojištění", b.Health, false)
	row("Daň před slevami", b.TaxBeforeCredits, false)
	row("Slevy na dani", b.TaxCredits, false)
	row("Daň po slevách", b.TaxAfterCredits, false)
	if bonus := b.TaxBonus(); bonus.IsPositive() {
		row("Daňový bonus", bonus, false)
	}
	pdf.Ln(2)
	row("Čistá mzda", b.Net, true)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render payslip: %w", err)
	}
	return buf.Bytes(), nil
}
