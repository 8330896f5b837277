package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/greenex/sorter-monitor/internal/config"
	"github.com/greenex/sorter-monitor/internal/display"
	"github.com/greenex/sorter-monitor/internal/metrics"
	"github.com/greenex/sorter-monitor/internal/monitor"
	"github.com/greenex/sorter-monitor/internal/version"
)

// run monitors the configured sorter until ctx is cancelled or the
// reconnect budget is spent. Cancellation is a clean shutdown and
// returns nil; exhaustion returns monitor.ErrReconnectExhausted.
func run(ctx context.Context, cfg *config.MonitorConfig, logger *slog.Logger, out io.Writer) error {
	term := display.NewTerminal(out, display.Options{Color: cfg.Display.Color})

	registry := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(registry)

	mon := monitor.New(monitor.FromConfig(cfg), monitor.Tee(term, recorder), logger)

	term.Banner(display.Banner{
		URL:         mon.URL(),
		SorterID:    mon.SorterID(),
		MaxAttempts: cfg.Reconnect.MaxAttempts,
		Version:     version.Get().Short(),
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)

	if cfg.Metrics.ListenAddr != "" {
		handler := metrics.NewHandler(registry, mon, cfg.Metrics.Path)
		g.Go(func() error {
			return metrics.Serve(gctx, cfg.Metrics.ListenAddr, handler, logger)
		})
	}

	g.Go(func() error {
		// The metrics server lives as long as the monitor.
		defer cancel()

		mon.Connect()

		select {
		case <-mon.Done():
			return mon.Err()
		case <-gctx.Done():
		}

		interrupted := ctx.Err() != nil
		if interrupted {
			term.Interrupted()
		}
		shutdown(mon, cfg.Connection.ShutdownGrace, logger)
		if interrupted {
			term.Goodbye()
		}
		return nil
	})

	return g.Wait()
}

// shutdown disconnects mon and waits up to grace for the close to be reported.
func shutdown(mon *monitor.Monitor, grace time.Duration, logger *slog.Logger) {
	mon.Disconnect()

	timer := time.NewTimer(grace)
	defer timer.Stop()

	select {
	case <-mon.Done():
	case <-timer.C:
		logger.Warn("connection did not close within grace period", "grace", grace)
	}
}
