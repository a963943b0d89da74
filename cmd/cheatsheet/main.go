// Package main provides the CLI entry point for the army cheatsheet generator.
package main

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet"
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/models"
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/output"
	"github.com/ukaji3/cheatsheet-go/pkg/cheatsheet/phase"
)

const usage = "Usage: cheatsheet <roster.json>"

// errUsage is returned after the usage line has been printed.
var errUsage = errors.New("missing roster argument")

var (
	configPath string
	outputPath string
	sheetName  string
	strict     bool
	verbose    bool
	verify     bool

	opts   cheatsheet.Options
	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cheatsheet <roster.json>",
		Short: "Build a phase-by-phase ability cheatsheet from a roster export",
		Long: `cheatsheet reads a roster JSON export, files every unit ability under the
game phases its text refers to, and writes the deduplicated table to
army_cheatsheet.xlsx.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), usage)
				return errUsage
			}
			return cobra.MaximumNArgs(1)(cmd, args)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: run,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML options file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", cheatsheet.DefaultOutput, "Output spreadsheet path")
	rootCmd.Flags().StringVar(&sheetName, "sheet", cheatsheet.DefaultSheet, "Sheet name")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail on malformed Abilities profiles instead of skipping them")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "Read the written spreadsheet back and check it")

	rootCmd.AddCommand(newPhasesCmd())
	return rootCmd
}

// setup loads options, applies explicitly set flags on top, and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	if configPath != "" {
		opts, err = cheatsheet.LoadOptions(configPath)
		if err != nil {
			return err
		}
	} else {
		opts = cheatsheet.DefaultOptions()
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		opts.Output = outputPath
	}
	if flags.Changed("sheet") {
		opts.Sheet = sheetName
	}
	if flags.Changed("strict") {
		opts.Strict = strict
	}
	if flags.Changed("verbose") {
		opts.Verbose = verbose
	}

	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if opts.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	opts.Logger = logger
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	report, err := cheatsheet.Generate(args[0], opts)
	if err != nil {
		return err
	}

	if verify {
		if err := verifyOutput(report.Output, opts.Sheet, report.Rows); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
		logger.Debug("verified output", zap.String("path", report.Output), zap.Int("rows", len(report.Rows)))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", report.Output)
	return nil
}

// verifyOutput reads the written sheet back and checks its rows and print area.
func verifyOutput(path, sheet string, want []models.Row) error {
	rows, err := output.ReadRows(path, sheet)
	if err != nil {
		return err
	}
	if !slices.Equal(rows, want) {
		return fmt.Errorf("%s holds %d rows, expected %d", path, len(rows), len(want))
	}

	area, ok, err := output.ReadPrintArea(path, sheet)
	if err != nil {
		return err
	}
	wantArea := output.Area{R1: 1, C1: 1, R2: len(want) + 1, C2: len(models.Header)}
	if !ok || area != wantArea {
		return fmt.Errorf("%s print area is %+v, expected %+v", path, area, wantArea)
	}
	return nil
}

func newPhasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "phases",
		Short: "List the phases and the patterns that select them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range phase.All() {
				fmt.Fprintln(out, p)
				for _, pattern := range phase.Patterns(p) {
					fmt.Fprintf(out, "  %s\n", pattern)
				}
			}
			return nil
		},
	}
}
