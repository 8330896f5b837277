package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL              = "ws://localhost:8081"
	DefaultPathPrefix           = "/ws/assignment_"
	DefaultSorterID             = 1
	DefaultReconnectInterval    = 3 * time.Second
	DefaultMaxReconnectAttempts = 10
	DefaultHandshakeTimeout     = 10 * time.Second
	DefaultPingTimeout          = 90 * time.Second // backend pings every 54s
	DefaultWriteTimeout         = 5 * time.Second
	DefaultBufferSize           = 256
	DefaultShutdownGrace        = 500 * time.Millisecond
	DefaultUnassignedPreview    = 5
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"
	DefaultMetricsPath          = "/metrics"
)

// Default returns a configuration with every default applied.
func Default() *MonitorConfig {
	cfg := &MonitorConfig{}
	cfg.applyDefaults()
	return cfg
}

func (c *MonitorConfig) applyDefaults() {
	// Server defaults
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = DefaultBaseURL
	}
	if c.Server.PathPrefix == "" {
		c.Server.PathPrefix = DefaultPathPrefix
	}
	if c.Server.SorterID == 0 {
		c.Server.SorterID = DefaultSorterID
	}

	// Reconnect defaults
	if c.Reconnect.Interval == 0 {
		c.Reconnect.Interval = DefaultReconnectInterval
	}
	if c.Reconnect.MaxAttempts == 0 {
		c.Reconnect.MaxAttempts = DefaultMaxReconnectAttempts
	}

	// Connection defaults
	if c.Connection.HandshakeTimeout == 0 {
		c.Connection.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if c.Connection.PingTimeout == 0 {
		c.Connection.PingTimeout = DefaultPingTimeout
	}
	if c.Connection.WriteTimeout == 0 {
		c.Connection.WriteTimeout = DefaultWriteTimeout
	}
	if c.Connection.BufferSize == 0 {
		c.Connection.BufferSize = DefaultBufferSize
	}
	if c.Connection.ShutdownGrace == 0 {
		c.Connection.ShutdownGrace = DefaultShutdownGrace
	}

	if c.Display.UnassignedPreview == 0 {
		c.Display.UnassignedPreview = DefaultUnassignedPreview
	}

	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}
}
