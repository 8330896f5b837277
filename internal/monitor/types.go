package monitor

import (
	"errors"
	"log/slog"
	"time"

	"github.com/greenex/sorter-monitor/internal/config"
	"github.com/greenex/sorter-monitor/internal/connection"
	"github.com/greenex/sorter-monitor/internal/event"
)

// Errors
var (
	ErrReconnectExhausted = errors.New("max reconnect attempts reached")
	ErrInvalidURL         = errors.New("invalid websocket url")
)

// State is the connection state of a Monitor.
type State int32

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// Config configures a Monitor.
type Config struct {
	BaseURL              string        // e.g. ws://localhost:8081
	PathPrefix           string        // e.g. /ws/assignment_
	SorterID             int           // appended to PathPrefix
	ReconnectInterval    time.Duration // fixed delay between attempts
	MaxReconnectAttempts int           // consecutive failed attempts before giving up
	UnassignedPreview    int           // unassigned SKUs listed per event

	// Client carries the WebSocket settings; its URL is filled in by the Monitor.
	Client connection.ClientConfig
}

// DefaultConfig returns the stock monitor settings for sorter 1.
func DefaultConfig() Config {
	return Config{
		BaseURL:              config.DefaultBaseURL,
		PathPrefix:           config.DefaultPathPrefix,
		SorterID:             config.DefaultSorterID,
		ReconnectInterval:    config.DefaultReconnectInterval,
		MaxReconnectAttempts: config.DefaultMaxReconnectAttempts,
		UnassignedPreview:    event.DefaultPreviewLimit,
		Client:               connection.DefaultClientConfig(),
	}
}

// FromConfig maps a loaded configuration file onto monitor settings.
func FromConfig(cfg *config.MonitorConfig) Config {
	return Config{
		BaseURL:              cfg.Server.BaseURL,
		PathPrefix:           cfg.Server.PathPrefix,
		SorterID:             cfg.Server.SorterID,
		ReconnectInterval:    cfg.Reconnect.Interval,
		MaxReconnectAttempts: cfg.Reconnect.MaxAttempts,
		UnassignedPreview:    cfg.Display.UnassignedPreview,
		Client: connection.ClientConfig{
			HandshakeTimeout: cfg.Connection.HandshakeTimeout,
			PingTimeout:      cfg.Connection.PingTimeout,
			WriteTimeout:     cfg.Connection.WriteTimeout,
			BufferSize:       cfg.Connection.BufferSize,
			ReadLimit:        cfg.Connection.ReadLimit,
		},
	}
}

// server returns the room address settings in configuration form.
func (c Config) server() config.ServerConfig {
	return config.ServerConfig{
		BaseURL:    c.BaseURL,
		PathPrefix: c.PathPrefix,
		SorterID:   c.SorterID,
	}
}

// Reporter receives everything the monitor observes, in order.
type Reporter interface {
	Connecting(url string)
	Connected(url string)
	Assignment(ev *event.AssignmentEvent, summary event.Summary)
	UnknownMessage(raw string)
	MalformedMessage(raw string, err error)
	TransportError(err error)
	Closed(code int, reason string)
	Reconnecting(attempt, maxAttempts int, delay time.Duration)
	GaveUp(maxAttempts int)
	Disconnecting()
}

// ClientFactory creates the WebSocket client for one session.
type ClientFactory func(cfg connection.ClientConfig, logger *slog.Logger) connection.Client
