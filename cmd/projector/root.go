package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modproj/projector/internal/calculation"
	"github.com/modproj/projector/internal/config"
	"github.com/modproj/projector/internal/domain"
	"github.com/modproj/projector/internal/output"
)

// app carries the shared state of a command invocation.
type app struct {
	out      io.Writer
	errOut   io.Writer
	defaults config.CLIDefaults
	verbose  bool
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "projector",
		Short:         "Monthly financial projection for a portfolio of modules on rented or owned land",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := config.LoadCLIDefaults()
			if err != nil {
				return err
			}
			a.defaults = defaults
			if !cmd.Flags().Changed("verbose") {
				a.verbose = defaults.Debug
			}
			return nil
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log year-boundary events to stderr")

	root.AddCommand(
		newRunCmd(a),
		newCompareCmd(a),
		newValidateCmd(a),
		newExampleCmd(a),
	)
	return root
}

// engine builds a calculation engine logging to stderr.
func (a *app) engine() *calculation.CalculationEngine {
	ce := calculation.NewCalculationEngine()
	ce.Debug = a.verbose
	ce.SetLogger(calculation.NewWriterLogger(a.errOut, a.verbose))
	return ce
}

// emit renders the comparison to stdout, or to a file when an output directory is set.
func (a *app) emit(results *domain.StrategyComparison, format, dir string) error {
	if dir == "" {
		return output.Render(a.out, results, format)
	}
	files, err := output.GenerateReport(results, format, dir)
	if err != nil {
		return err
	}
	for _, f := range files {
		fmt.Fprintf(a.out, "Report written to %s\n", f)
	}
	return nil
}

func (a *app) loadConfig(path string) (*domain.Configuration, error) {
	if path == "" {
		return nil, fmt.Errorf("a configuration file is required (--config)")
	}
	return config.NewInputParser().LoadFromFile(path)
}

// pick returns the flag value when set on the command line, else the fallback.
func pick(cmd *cobra.Command, flag, value, fallback string) string {
	if cmd.Flags().Changed(flag) || fallback == "" {
		return value
	}
	return fallback
}

func parseStrategies(names []string) ([]domain.Strategy, error) {
	var out []domain.Strategy
	for _, n := range names {
		for _, part := range strings.Split(n, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			s, err := domain.ParseStrategy(part)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}
