package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cellframe/config"
	"cellframe/core"
	"cellframe/logger"
)

var version = "0.1.0"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "cellframe",
		Short:         "Columnar tables with incremental statistics",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cellframe v%s\n", version)
		},
	})

	var configFile, logLevel string
	var options reportOptions
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Load a frame definition and print per-column statistics",
		Long: `Load a YAML frame definition, build the table it describes and print,
for every column, its values, rolling means, mean, summary, most common
values and the rate of change of its rolling mean.

Example:
  cellframe report --config frame.yaml --points 3 --drop-row 0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Config{Level: logLevel})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()
			return runReport(cmd, log, configFile, options)
		},
	}
	reportCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to the frame definition YAML file (required)")
	_ = reportCmd.MarkFlagRequired("config")
	reportCmd.Flags().IntVar(&options.Points, "points", 3, "Number of rolling means per rate-of-change fit")
	reportCmd.Flags().IntVar(&options.Top, "top", 3, "Number of most common values to show")
	reportCmd.Flags().IntSliceVar(&options.DropRows, "drop-row", nil, "Row indexes to drop, in order, before reporting")
	reportCmd.Flags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")

	root.AddCommand(reportCmd)
	return root
}

func runReport(cmd *cobra.Command, log *zap.Logger, configFile string, options reportOptions) error {
	var frame config.FrameConfig
	if err := config.Load(configFile, &frame); err != nil {
		return err
	}

	table, err := config.Build(&frame)
	if err != nil {
		return fmt.Errorf("failed to build frame: %w", err)
	}
	table.SetLogger(log)

	cache, err := core.NewReportCache(frame.Cache)
	if err != nil {
		return err
	}
	defer cache.Close()
	table.SetReportCache(cache)

	for _, index := range options.DropRows {
		if err := table.DropRow(index); err != nil {
			return err
		}
	}

	log.Info("frame loaded",
		zap.String("config", configFile),
		zap.Int("rows", table.Len()),
		zap.Int("columns", table.Width()))
	return writeReport(cmd.OutOrStdout(), table, options)
}
