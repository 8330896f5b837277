package config

import (
	"fmt"
	"time"
)

// MonitorConfig is the root configuration for a sorter monitor.
type MonitorConfig struct {
	Server     ServerConfig     `yaml:"server"`
	Reconnect  ReconnectConfig  `yaml:"reconnect"`
	Connection ConnectionConfig `yaml:"connection"`
	Display    DisplayConfig    `yaml:"display"`
	Log        LogConfig        `yaml:"log"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// ServerConfig identifies the sorter backend and the sorter to watch.
type ServerConfig struct {
	BaseURL    string `yaml:"base_url"`    // e.g. ws://localhost:8081
	PathPrefix string `yaml:"path_prefix"` // room path, the sorter id is appended
	SorterID   int    `yaml:"sorter_id"`
}

// URL returns the assignment room URL for the configured sorter.
func (s ServerConfig) URL() string {
	return fmt.Sprintf("%s%s%d", s.BaseURL, s.PathPrefix, s.SorterID)
}

// ReconnectConfig holds the linear reconnect policy.
type ReconnectConfig struct {
	Interval    time.Duration `yaml:"interval"`
	MaxAttempts int           `yaml:"max_attempts"`
}

// ConnectionConfig holds WebSocket client settings.
type ConnectionConfig struct {
	HandshakeTimeout time.Duration `yaml:"handshake_timeout"`
	PingTimeout      time.Duration `yaml:"ping_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	BufferSize       int           `yaml:"buffer_size"`
	ReadLimit        int64         `yaml:"read_limit"` // 0 = unlimited
	ShutdownGrace    time.Duration `yaml:"shutdown_grace"`
}

// DisplayConfig controls terminal rendering.
type DisplayConfig struct {
	Color             *bool `yaml:"color"` // nil = detect from the terminal
	UnassignedPreview int   `yaml:"unassigned_preview"`
}

// LogConfig controls diagnostic logging (stderr).
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// MetricsConfig holds Prometheus metrics settings.
// An empty ListenAddr disables the HTTP listener.
type MetricsConfig struct {
	ListenAddr string `yaml:"listen_addr"`
	Path       string `yaml:"path"`
}
