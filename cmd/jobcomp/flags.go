package main

import (
	"fmt"

	"github.com/jobcomp/jobcomp/internal/config"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func addDeductionFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Int("children", 0, "Number of dependent children")
	f.String("disability", "none", "Disability tier: none, inv1, inv2, inv3")
	f.Bool("ztpp", false, "Claim the ZTP/P holder credit")
	f.Bool("student", false, "Claim the student credit")
	f.Bool("no-taxpayer", false, "Do not claim the basic taxpayer credit")
}

func deductionsFromFlags(cmd *cobra.Command) (domain.UserDeductions, error) {
	f := cmd.Flags()
	children, _ := f.GetInt("children")
	disability, _ := f.GetString("disability")
	ztpp, _ := f.GetBool("ztpp")
	student, _ := f.GetBool("student")
	noTaxpayer, _ := f.GetBool("no-taxpayer")

	tier, err := domain.ParseDisabilityTier(disability)
	if err != nil {
		return domain.UserDeductions{}, err
	}
	d := domain.UserDeductions{
		Taxpayer:   !noTaxpayer,
		Children:   children,
		Disability: tier,
		ZTPP:       ztpp,
		Student:    student,
	}
	if err := config.ValidateDeductions(d); err != nil {
		return domain.UserDeductions{}, err
	}
	return d, nil
}

func addOverrideFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("performance", "", "Performance percent 0-100 for ranged benefits")
	f.String("night-hours", "", "Night hours per month")
	f.String("afternoon-hours", "", "Afternoon hours per month")
	f.String("weekend-hours", "", "Weekend hours per month")
	f.String("shifts", "", "Shifts per month (default 16)")
	f.String("days", "", "Working days per month (default 20)")
}

func overridesFromFlags(cmd *cobra.Command) (domain.Overrides, error) {
	var o domain.Overrides
	fields := []struct {
		flag   string
		target **decimal.Decimal
	}{
		{"performance", &o.PerformancePercent},
		{"night-hours", &o.NightHours},
		{"afternoon-hours", &o.AfternoonHours},
		{"weekend-hours", &o.WeekendHours},
		{"shifts", &o.ShiftsPerMonth},
		{"days", &o.DaysPerMonth},
	}
	for _, field := range fields {
		v, err := decimalFlag(cmd, field.flag)
		if err != nil {
			return o, err
		}
		*field.target = v
	}
	if o.PerformancePercent != nil {
		if err := config.ValidatePerformance(*o.PerformancePercent); err != nil {
			return o, err
		}
	}
	return o, nil
}

// decimalFlag parses a string flag as a decimal; nil when the flag is empty
func decimalFlag(cmd *cobra.Command, name string) (*decimal.Decimal, error) {
	s, _ := cmd.Flags().GetString(name)
	if s == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", name, s, err)
	}
	if d.IsNegative() {
		return nil, fmt.Errorf("--%s cannot be negative", name)
	}
	return &d, nil
}

// selectPositions returns the named positions, or all of them
func selectPositions(catalog *domain.Catalog, refs []string) ([]domain.Position, error) {
	if len(refs) == 0 {
		return catalog.Positions, nil
	}
	out := make([]domain.Position, 0, len(refs))
	for _, ref := range refs {
		p, ok := catalog.FindPosition(ref)
		if !ok {
			return nil, fmt.Errorf("position %q not found", ref)
		}
		out = append(out, p)
	}
	return out, nil
}

// singlePosition resolves --position, defaulting to the only or first position
func singlePosition(cmd *cobra.Command, catalog *domain.Catalog) (domain.Position, error) {
	ref, _ := cmd.Flags().GetString("position")
	if ref == "" {
		return catalog.Positions[0], nil
	}
	p, ok := catalog.FindPosition(ref)
	if !ok {
		return domain.Position{}, fmt.Errorf("position %q not found", ref)
	}
	return p, nil
}

func companyName(catalog *domain.Catalog, p domain.Position) string {
	if c, ok := catalog.Company(p.CompanyID); ok {
		return c.Name
	}
	return ""
}
