package connection

import (
	"errors"
	"time"
)

// Errors
var (
	ErrStaleConnection = errors.New("connection stale (no ping)")
	ErrAlreadyClosed   = errors.New("already closed")
	ErrAlreadyOpen     = errors.New("already connected")
)

// TimestampedMessage wraps raw message data with receive timestamp.
type TimestampedMessage struct {
	Data       []byte    // Raw message bytes from WebSocket
	ReceivedAt time.Time // Local timestamp when ReadMessage() returned
}

// ClientConfig configures a WebSocket client.
type ClientConfig struct {
	URL              string        // e.g. ws://localhost:8081/ws/assignment_1
	HandshakeTimeout time.Duration // Dial handshake timeout
	PingTimeout      time.Duration // Max time without ping/pong before considering connection stale
	WriteTimeout     time.Duration // Write deadline for control frames
	BufferSize       int           // Message channel buffer size
	ReadLimit        int64         // Max frame size in bytes (0 = unlimited)
}

// DefaultClientConfig returns sensible defaults.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		HandshakeTimeout: 10 * time.Second,
		PingTimeout:      90 * time.Second,
		WriteTimeout:     5 * time.Second,
		BufferSize:       256,
	}
}

// pingInterval is how often the client sends its own keepalive ping.
func (c ClientConfig) pingInterval() time.Duration {
	if c.PingTimeout <= 0 {
		return 30 * time.Second
	}
	return c.PingTimeout / 3
}
