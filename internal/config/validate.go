package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks that all required fields are set and values are valid.
func (c *MonitorConfig) Validate() error {
	if c.Server.BaseURL == "" {
		return errors.New("server.base_url is required")
	}
	u, err := url.Parse(c.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("server.base_url is invalid: %w", err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("server.base_url scheme must be ws or wss, got %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("server.base_url must include a host")
	}
	if !strings.HasPrefix(c.Server.PathPrefix, "/") {
		return fmt.Errorf("server.path_prefix must start with /, got %q", c.Server.PathPrefix)
	}
	if c.Server.SorterID < 1 {
		return fmt.Errorf("server.sorter_id must be >= 1, got %d", c.Server.SorterID)
	}

	if c.Reconnect.Interval <= 0 {
		return errors.New("reconnect.interval must be > 0")
	}
	if c.Reconnect.MaxAttempts < 1 {
		return errors.New("reconnect.max_attempts must be >= 1")
	}

	if c.Connection.HandshakeTimeout <= 0 {
		return errors.New("connection.handshake_timeout must be > 0")
	}
	if c.Connection.PingTimeout <= 0 {
		return errors.New("connection.ping_timeout must be > 0")
	}
	if c.Connection.BufferSize < 1 {
		return errors.New("connection.buffer_size must be >= 1")
	}
	if c.Connection.ReadLimit < 0 {
		return errors.New("connection.read_limit must be >= 0")
	}
	if c.Connection.ShutdownGrace < 0 {
		return errors.New("connection.shutdown_grace must be >= 0")
	}

	if c.Display.UnassignedPreview < 1 {
		return errors.New("display.unassigned_preview must be >= 1")
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be one of debug, info, warn, error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}

	if c.Metrics.ListenAddr != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with /, got %q", c.Metrics.Path)
	}

	return nil
}
