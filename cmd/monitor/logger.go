package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/greenex/sorter-monitor/internal/config"
)

// newLogger builds the diagnostic logger. Logs go to w (stderr in
// production) so they never interleave with the operator display.
func newLogger(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	opts := &slog.HandlerOptions{Level: level}

	switch strings.ToLower(cfg.Format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log.format: unsupported format %q", cfg.Format)
	}
}
