package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/jobcomp/jobcomp/internal/calculation"
	"github.com/jobcomp/jobcomp/internal/config"
	"github.com/jobcomp/jobcomp/internal/domain"
	"github.com/jobcomp/jobcomp/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jobcomp %s (commit %s, built %s)\n", version, commit, date)
			if info := buildInfo(); info != "" {
				fmt.Fprintln(cmd.OutOrStdout(), info)
			}
		},
	}
}

func buildInfo() string {
	if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
		return bi.Main.Path + " " + bi.GoVersion
	}
	return ""
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "jobcomp",
		Short: "Czech salary calculator and job offer comparison",
		Long: `Calculates gross and net monthly pay for job positions under Czech payroll rules
(social and health insurance, 15 % income tax, tax credits) and compares
positions side by side.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := root.PersistentFlags()
	pf.String("rates", "", "Tax settings YAML file (default: $JOBCOMP_RATES or built-in rates)")
	pf.String("as-of", "", "Use the rate rows valid on this date (YYYY-MM-DD)")
	pf.Bool("debug", false, "Enable debug output for detailed calculations")
	pf.String("log-level", "", "Log level: debug, info, warn, error (default: $JOBCOMP_LOG_LEVEL or info)")
	pf.Bool("log-json", false, "Write logs as JSON")

	root.AddCommand(calculateCmd())
	root.AddCommand(compareCmd())
	root.AddCommand(sweepCmd())
	root.AddCommand(targetCmd())
	root.AddCommand(creditsCmd())
	root.AddCommand(validateCmd())
	root.AddCommand(serveCmd())
	root.AddCommand(versionCmd())
	return root
}

// app is the per-invocation setup shared by the commands
type app struct {
	settings *config.Settings
	parser   *config.InputParser
	logger   *logging.Logger
	engine   *calculation.Engine
}

// newApp reads settings from the environment, applies the global flags on
// top and builds the engine over the selected rate table
func newApp(cmd *cobra.Command) (*app, error) {
	settings, err := config.LoadSettings()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("rates"); v != "" {
		settings.RatesFile = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		settings.LogLevel = v
	}
	if d, _ := flags.GetBool("debug"); d {
		settings.LogLevel = "debug"
	}
	if v, _ := flags.GetString("as-of"); v != "" {
		asOf, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, fmt.Errorf("invalid --as-of: %w", err)
		}
		settings.AsOf = asOf
	}

	jsonLogs, _ := flags.GetBool("log-json")
	logger, err := logging.New(settings.LogLevel, jsonLogs)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	a := &app{settings: settings, parser: config.NewInputParser(), logger: logger}

	table := domain.DefaultRateTable()
	if settings.RatesFile != "" {
		loaded, err := a.parser.LoadRateTable(settings.RatesFile, settings.AsOf)
		if err != nil {
			return nil, err
		}
		for _, w := range loaded.Warnings {
			logger.Warnf("%s: %s", settings.RatesFile, w)
		}
		table = loaded.Table
	} else {
		logger.Debugf("no rates file given, using built-in defaults")
	}

	a.engine = calculation.NewEngine(table)
	a.engine.SetLogger(logger)
	return a, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
