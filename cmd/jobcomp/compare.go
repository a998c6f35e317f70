package main

import (
	"fmt"

	"github.com/jobcomp/jobcomp/internal/compare"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [positions-file]",
		Short: "Compare positions side by side",
		Long: `Compare the pay of several positions. The first position is the base the
differences are measured against. Best values per row are marked with *.`,
		Example: `  jobcomp compare positions.yaml
  jobcomp compare positions.yaml -p "Skladník" -p "Operátor výroby" --performance 100
  jobcomp compare positions.yaml --format csv`,
		Args: cobra.ExactArgs(1),
		RunE: runCompare,
	}
	cmd.Flags().StringSliceP("position", "p", nil, "Position ID or name (repeatable; default all)")
	cmd.Flags().StringP("format", "f", "table", "Output format: table, compact, csv, json")
	addDeductionFlags(cmd)
	addOverrideFlags(cmd)
	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	catalog, err := a.parser.LoadCatalog(args[0])
	if err != nil {
		return err
	}
	d, err := deductionsFromFlags(cmd)
	if err != nil {
		return err
	}
	o, err := overridesFromFlags(cmd)
	if err != nil {
		return err
	}
	refs, _ := cmd.Flags().GetStringSlice("position")

	compSet, err := compare.NewCompareEngine(a.engine).Compare(cmd.Context(), catalog, compare.CompareOptions{
		Positions:  refs,
		Deductions: d,
		Overrides:  o,
		ConfigPath: args[0],
	})
	if err != nil {
		return fmt.Errorf("comparison failed: %w", err)
	}

	var out string
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "table":
		out = (&compare.TableFormatter{}).Format(compSet)
	case "compact":
		out = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
	case "csv":
		out, err = (&compare.CSVFormatter{}).Format(compSet)
	case "json":
		out, err = (&compare.JSONFormatter{}).Format(compSet)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
