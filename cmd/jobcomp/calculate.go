package main

import (
	"bytes"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/jobcomp/jobcomp/internal/output"
	"github.com/spf13/cobra"
)

func calculateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calculate [positions-file]",
		Short: "Calculate gross and net pay for positions",
		Long: `Calculate the full salary summary (min, expected, max and current gross and net)
for every position in the file, or only the ones named with --position.

With --mode only the gross and net breakdown of that mode is printed.`,
		Example: `  jobcomp calculate positions.yaml --position "Skladník" --children 2
  jobcomp calculate positions.yaml --performance 80 --format json
  jobcomp calculate positions.yaml --position "Skladník" --format pdf --out paska.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: runCalculate,
	}
	cmd.Flags().StringSliceP("position", "p", nil, "Position ID or name (repeatable; default all)")
	cmd.Flags().String("mode", "", "Print only one mode: min, max or expected")
	cmd.Flags().StringP("format", "f", "console", "Output format: "+fmt.Sprint(output.AvailableFormatterNames()))
	cmd.Flags().StringP("out", "o", "", "Write output to this file")
	addDeductionFlags(cmd)
	addOverrideFlags(cmd)
	return cmd
}

func runCalculate(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	catalog, err := a.parser.LoadCatalog(args[0])
	if err != nil {
		return err
	}
	refs, _ := cmd.Flags().GetStringSlice("position")
	positions, err := selectPositions(catalog, refs)
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

	if modeName, _ := cmd.Flags().GetString("mode"); modeName != "" {
		mode, err := domain.ParseMode(modeName)
		if err != nil {
			return err
		}
		return printModes(cmd, a, positions, mode, o, d)
	}

	format, _ := cmd.Flags().GetString("format")
	f := output.GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s", format)
	}
	outFile, _ := cmd.Flags().GetString("out")
	if f.Name() == "pdf" && len(positions) > 1 {
		return fmt.Errorf("pdf output needs a single --position")
	}

	reports := make([]*output.Report, 0, len(positions))
	for _, p := range positions {
		reports = append(reports, output.NewReport(companyName(catalog, p), a.engine.Full(p, d, o), d, a.engine.Rates))
	}

	if f.Name() == "pdf" && outFile == "" {
		filename, err := output.WriteFormatted(f, reports[0], "pdf")
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", filename)
		return nil
	}

	var buf bytes.Buffer
	for _, r := range reports {
		data, err := f.Format(r)
		if err != nil {
			return err
		}
		buf.Write(data)
	}

	if outFile == "" {
		_, err = cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(outFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", outFile, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outFile)
	return nil
}

type modeResult struct {
	Position string              `json:"position"`
	Mode     domain.Mode         `json:"mode"`
	Result   domain.NetBreakdown `json:"result"`
}

func printModes(cmd *cobra.Command, a *app, positions []domain.Position, mode domain.Mode, o domain.Overrides, d domain.UserDeductions) error {
	results := make([]modeResult, 0, len(positions))
	for _, p := range positions {
		results = append(results, modeResult{Position: p.Name, Mode: mode, Result: a.engine.Calculate(p, mode, o, d)})
	}

	out := cmd.OutOrStdout()
	if format, _ := cmd.Flags().GetString("format"); format == "json" {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	for _, r := range results {
		fmt.Fprintf(out, "%s (%s): hrubá %s, čistá %s, daň %s\n",
			r.Position, r.Mode,
			output.FormatCurrency(r.Result.Gross), output.FormatCurrency(r.Result.Net),
			output.FormatCurrency(r.Result.TaxAfterCredits))
	}
	return nil
}
