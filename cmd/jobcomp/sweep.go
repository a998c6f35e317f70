package main

import (
	"encoding/csv"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/jobcomp/jobcomp/internal/calculation"
	"github.com/jobcomp/jobcomp/internal/output"
	"github.com/spf13/cobra"
)

func sweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sweep [positions-file]",
		Short:   "Show gross and net across performance levels",
		Example: `  jobcomp sweep positions.yaml --position "Seřizovač CNC" --step 25`,
		Args:    cobra.ExactArgs(1),
		RunE:    runSweep,
	}
	cmd.Flags().StringP("position", "p", "", "Position ID or name (default first)")
	cmd.Flags().String("step", "10", "Performance step in percent")
	cmd.Flags().StringP("format", "f", "table", "Output format: table, csv, json")
	addDeductionFlags(cmd)
	return cmd
}

func runSweep(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	catalog, err := a.parser.LoadCatalog(args[0])
	if err != nil {
		return err
	}
	p, err := singlePosition(cmd, catalog)
	if err != nil {
		return err
	}
	d, err := deductionsFromFlags(cmd)
	if err != nil {
		return err
	}
	step, err := decimalFlag(cmd, "step")
	if err != nil {
		return err
	}
	if step == nil || !step.IsPositive() {
		step = &calculation.DefaultSweepStep
	}

	points, err := a.engine.Sweep(cmd.Context(), p, d, *step)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table":
		fmt.Fprintf(out, "%s\n%8s %14s %14s\n", p.Name, "výkon", "hrubá", "čistá")
		for _, pt := range points {
			fmt.Fprintf(out, "%7s%% %14s %14s\n", pt.Percent.String(), output.FormatCurrency(pt.Gross), output.FormatCurrency(pt.Net))
		}
	case "csv":
		w := csv.NewWriter(out)
		if err := w.Write([]string{"percent", "gross", "net"}); err != nil {
			return err
		}
		for _, pt := range points {
			if err := w.Write([]string{pt.Percent.String(), pt.Gross.StringFixed(0), pt.Net.StringFixed(0)}); err != nil {
				return err
			}
		}
		w.Flush()
		return w.Error()
	case "json":
		data, err := json.MarshalIndent(points, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

func targetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target [positions-file]",
		Short: "Find the performance needed to reach a net salary",
		Example: `  jobcomp target positions.yaml --position "Seřizovač CNC" --net 30000`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTarget,
	}
	cmd.Flags().StringP("position", "p", "", "Position ID or name (default first)")
	cmd.Flags().String("net", "", "Target monthly net salary in CZK (required)")
	cmd.Flags().String("tolerance", calculation.DefaultTargetTolerance.String(), "Search precision in percent")
	_ = cmd.MarkFlagRequired("net")
	addDeductionFlags(cmd)
	return cmd
}

func runTarget(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	catalog, err := a.parser.LoadCatalog(args[0])
	if err != nil {
		return err
	}
	p, err := singlePosition(cmd, catalog)
	if err != nil {
		return err
	}
	d, err := deductionsFromFlags(cmd)
	if err != nil {
		return err
	}
	net, err := decimalFlag(cmd, "net")
	if err != nil {
		return err
	}
	if net == nil {
		return fmt.Errorf("--net is required")
	}
	tol, err := decimalFlag(cmd, "tolerance")
	if err != nil {
		return err
	}
	if tol == nil {
		tol = &calculation.DefaultTargetTolerance
	}

	res, err := a.engine.Target(cmd.Context(), p, d, *net, *tol)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: výkon %s %% → hrubá %s, čistá %s\n",
		p.Name, res.Percent.Round(2).String(),
		output.FormatCurrency(res.Gross), output.FormatCurrency(res.Breakdown.Net))
	return nil
}
