package components

import (
	"fmt"
	"strings"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/jobcomp/jobcomp/internal/tui/tuistyles"
)

// Deduction list rows
const (
	RowTaxpayer = iota
	RowChildren
	RowDisability
	RowZTPP
	RowStudent
	deductionRows
)

var disabilityCycle = []domain.DisabilityTier{
	domain.DisabilityNone, domain.DisabilityTier1, domain.DisabilityTier2, domain.DisabilityTier3,
}

// DeductionList edits a set of tax credit elections
type DeductionList struct {
	Deductions domain.UserDeductions
	Cursor     int
	IsFocused  bool
}

// NewDeductionList starts from the given elections
func NewDeductionList(d domain.UserDeductions) *DeductionList {
	return &DeductionList{Deductions: d}
}

// Up moves the cursor up
func (l *DeductionList) Up() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// Down moves the cursor down
func (l *DeductionList) Down() {
	if l.Cursor < deductionRows-1 {
		l.Cursor++
	}
}

// Toggle flips the row under the cursor; on counted rows it steps forward
func (l *DeductionList) Toggle() { l.Adjust(1) }

// Adjust changes the row under the cursor by delta. Flags ignore the sign.
func (l *DeductionList) Adjust(delta int) {
	d := &l.Deductions
	switch l.Cursor {
	case RowTaxpayer:
		d.Taxpayer = !d.Taxpayer
	case RowChildren:
		d.Children = max(0, d.Children+delta)
	case RowDisability:
		i := 0
		for j, t := range disabilityCycle {
			if t == d.Disability {
				i = j
			}
		}
		i = (i + delta + len(disabilityCycle)) % len(disabilityCycle)
		d.Disability = disabilityCycle[i]
	case RowZTPP:
		d.ZTPP = !d.ZTPP
	case RowStudent:
		d.Student = !d.Student
	}
}

func check(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

// Render draws the list with the cursor row highlighted
func (l *DeductionList) Render() string {
	d := l.Deductions
	disability := string(d.Disability)
	if disability == "" {
		disability = string(domain.DisabilityNone)
	}
	rows := []string{
		fmt.Sprintf("%s Sleva na poplatníka", check(d.Taxpayer)),
		fmt.Sprintf("    Děti: %d", d.Children),
		fmt.Sprintf("    Invalidita: %s", disability),
		fmt.Sprintf("%s Držitel ZTP/P", check(d.ZTPP)),
		fmt.Sprintf("%s Student", check(d.Student)),
	}

	var sb strings.Builder
	sb.WriteString(tuistyles.ParameterLabelStyle.Render("Slevy na dani") + "\n")
	for i, row := range rows {
		if l.IsFocused && i == l.Cursor {
			sb.WriteString(tuistyles.SelectedItemStyle.Render("> " + row))
		} else {
			sb.WriteString(tuistyles.UnselectedItemStyle.Render("  " + row))
		}
		if i < len(rows)-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
