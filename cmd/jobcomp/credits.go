package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/jobcomp/jobcomp/internal/output"
	"github.com/spf13/cobra"
)

func creditsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "credits",
		Short: "List the rate table and resolve tax credits",
		Long: `Print the insurance and tax rates, the tax credit table, and the monthly
credits the given elections resolve to.`,
		Example: `  jobcomp credits --children 3 --disability inv1
  jobcomp credits --rates tax_settings.yaml --as-of 2023-06-01`,
		Args: cobra.NoArgs,
		RunE: runCredits,
	}
	addDeductionFlags(cmd)
	return cmd
}

func runCredits(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	d, err := deductionsFromFlags(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "POJIŠTĚNÍ A DAŇ")
	for _, s := range a.engine.Rates.Settings() {
		if s.Category != domain.CategoryDeduction {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.Key, s.Name, output.FormatPercentage(s.Value))
		}
	}
	fmt.Fprintln(tw, "SLEVY NA DANI")
	for _, s := range a.engine.Rates.Deductions() {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", s.Key, s.Name, output.FormatCurrency(s.Value))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	credits := a.engine.Credits(d)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Osobní slevy: %s\n", output.FormatCurrency(credits.Personal))
	fmt.Fprintf(out, "Slevy na děti: %s\n", output.FormatCurrency(credits.Children))
	fmt.Fprintf(out, "Celkem: %s\n", output.FormatCurrency(credits.Total()))
	return nil
}
