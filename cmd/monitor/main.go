// sorter-monitor watches a sorter's assignment room and prints every
// sku_assigned event to the terminal.
// Usage: sorter-monitor --config configs/monitor.example.yaml
//
// It reconnects at a fixed interval after any disconnect and exits 1 once
// the reconnect budget is spent. Ctrl+C disconnects and exits 0.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/greenex/sorter-monitor/internal/config"
	"github.com/greenex/sorter-monitor/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "sorter-monitor",
		Short:         "Watch SKU assignment events for one sorter",
		Version:       version.Get().Short(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadAndValidate(configPath)
			if err != nil {
				slog.Error("failed to load config", "error", err, "config", configPath)
				return err
			}

			logger, err := newLogger(cfg.Log, os.Stderr)
			if err != nil {
				slog.Error("failed to set up logging", "error", err)
				return err
			}
			slog.SetDefault(logger)

			logger.Info("starting sorter monitor",
				"version", version.Version,
				"commit", version.Commit,
				"config", configPath,
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := run(ctx, cfg, logger, cmd.OutOrStdout()); err != nil {
				logger.Error("sorter monitor stopped", "error", err)
				return err
			}
			return nil
		},
	}
	rootCmd.Flags().StringVar(&configPath, "config", "", "path to YAML config file (defaults apply when empty)")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	})

	return rootCmd
}
