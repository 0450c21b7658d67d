// SPDX-License-Identifier: MIT

// Command polymetrics measures the polygons listed in a YAML survey.
package main

import (
	"os"

	"github.com/katalvlaran/polymetrics/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	logLevel string
	noColor  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}
	rootCmd := &cobra.Command{
		Use:           "polymetrics",
		Short:         "Edge, angle, area and bordering metrics for surveyed polygons",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&g.noColor, "no-color", false, "disable coloured log levels")

	rootCmd.AddCommand(reportCmd(g))
	rootCmd.AddCommand(chartCmd(g))
	rootCmd.AddCommand(validateCmd(g))

	return rootCmd
}

// newLogger builds the command logger; it writes to the command's stderr.
func (g *globalFlags) newLogger(cmd *cobra.Command) (*zap.Logger, error) {
	cfg := logger.DefaultConfig()
	cfg.Level = g.logLevel
	cfg.Color = !g.noColor
	cfg.Output = cmd.ErrOrStderr()

	return logger.New(cfg)
}

func reportCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "report [survey.yaml]",
		Short: "Print the metrics of every polygon in the survey",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(log *zap.Logger) error {
				return runReport(cmd.OutOrStdout(), args[0], log)
			})
		},
	}
}

func chartCmd(g *globalFlags) *cobra.Command {
	var out, title string

	cmd := &cobra.Command{
		Use:   "chart [survey.yaml]",
		Short: "Render the survey polygons and centroids as an HTML chart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(log *zap.Logger) error {
				return runChart(args[0], out, title, log)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "polygons.html", "output HTML file")
	cmd.Flags().StringVar(&title, "title", "Polygon metrics", "chart title")
	return cmd
}

func validateCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [survey.yaml]",
		Short: "Check that every polygon in the survey can be built and measured",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return g.run(cmd, func(log *zap.Logger) error {
				return runValidate(cmd.OutOrStdout(), args[0], log)
			})
		},
	}
}

// run wires the logger around fn and logs its error before returning it.
func (g *globalFlags) run(cmd *cobra.Command, fn func(*zap.Logger) error) error {
	log, err := g.newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if err := fn(log); err != nil {
		log.Error("command failed", zap.String("command", cmd.Name()), zap.Error(err))
		return err
	}

	return nil
}
