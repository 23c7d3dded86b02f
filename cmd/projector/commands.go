package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modproj/projector/internal/config"
	"github.com/modproj/projector/internal/domain"
	"github.com/modproj/projector/internal/output"
)

func newRunCmd(a *app) *cobra.Command {
	var (
		configPath string
		strategy   string
		format     string
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Project the configuration under a single reinvestment strategy",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(configPath)
			if err != nil {
				return err
			}

			name := pick(cmd, "strategy", strategy, a.defaults.Strategy)
			if name == "" {
				name = string(cfg.Parameters.DefaultStrategy)
			}
			if name == "" {
				name = string(domain.StrategyAlternate)
			}
			s, err := domain.ParseStrategy(name)
			if err != nil {
				return err
			}

			results, err := a.engine().RunStrategies(cmd.Context(), cfg, s)
			if err != nil {
				return err
			}
			return a.emit(results, pick(cmd, "format", format, a.defaults.Format), pick(cmd, "output", outputDir, a.defaults.OutputDir))
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration")
	cmd.Flags().StringVarP(&strategy, "strategy", "s", "", "reinvestment strategy: buy, rent or alternate")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write the report to a timestamped file in this directory")
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		configPath string
		strategies []string
		format     string
		outputDir  string
	)
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Project the configuration under several strategies and compare them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(configPath)
			if err != nil {
				return err
			}
			selected, err := parseStrategies(strategies)
			if err != nil {
				return err
			}
			results, err := a.engine().RunStrategies(cmd.Context(), cfg, selected...)
			if err != nil {
				return err
			}
			return a.emit(results, pick(cmd, "format", format, a.defaults.Format), pick(cmd, "output", outputDir, a.defaults.OutputDir))
		},
	}
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration")
	cmd.Flags().StringSliceVarP(&strategies, "strategies", "s", nil, "strategies to compare (default all)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write the report to a timestamped file in this directory")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config>",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Configuration %s is valid (%d months)\n", args[0], cfg.HorizonMonths())
			return nil
		},
	}
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example <output-file>",
		Short: "Write an example configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, args[0]); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(a.out, "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}
