package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/greenex/sorter-monitor/internal/connection"
	"github.com/greenex/sorter-monitor/internal/event"
)

// Monitor watches one sorter's assignment room.
type Monitor struct {
	cfg       Config
	url       string
	reporter  Reporter
	logger    *slog.Logger
	newClient ClientFactory

	mu       sync.Mutex
	state    State
	attempts int
	disabled bool // set by Disconnect
	pending  bool // a reconnect is scheduled
	timer    *time.Timer
	session  *session

	finished bool
	err      error
	done     chan struct{}
}

// session is one connection attempt and, if it opens, its lifetime.
type session struct {
	id     string
	ctx    context.Context
	cancel context.CancelFunc
	client connection.Client
	logger *slog.Logger
}

// Option customizes a Monitor.
type Option func(*Monitor)

// WithClientFactory replaces the WebSocket client constructor.
func WithClientFactory(f ClientFactory) Option {
	return func(m *Monitor) {
		m.newClient = f
	}
}

// New creates a Monitor. Nothing is dialed until Connect is called.
func New(cfg Config, reporter Reporter, logger *slog.Logger, opts ...Option) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	if reporter == nil {
		reporter = Tee()
	}
	if cfg.UnassignedPreview < 1 {
		cfg.UnassignedPreview = event.DefaultPreviewLimit
	}

	m := &Monitor{
		cfg:       cfg,
		url:       cfg.server().URL(),
		reporter:  reporter,
		logger:    logger,
		newClient: connection.NewClient,
		done:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// URL returns the assignment room URL.
func (m *Monitor) URL() string {
	return m.url
}

// SorterID returns the watched sorter.
func (m *Monitor) SorterID() int {
	return m.cfg.SorterID
}

// State returns the current connection state.
func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Attempts returns the number of consecutive reconnect attempts.
func (m *Monitor) Attempts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.attempts
}

// Done is closed once the monitor has stopped for good: after Disconnect
// has released the connection, or when the reconnect budget is exhausted.
func (m *Monitor) Done() <-chan struct{} {
	return m.done
}

// Err returns ErrReconnectExhausted if the monitor gave up, nil otherwise.
func (m *Monitor) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.err
}

// Connect starts a connection attempt without blocking. It does nothing
// while a session is live or a reconnect is scheduled, and after Disconnect.
func (m *Monitor) Connect() {
	m.connect(false)
}

func (m *Monitor) connect(fromTimer bool) {
	m.mu.Lock()
	if fromTimer {
		m.timer = nil
		m.pending = false
	}
	if m.disabled || m.finished || m.session != nil || m.pending {
		m.mu.Unlock()
		return
	}

	id := uuid.NewString()
	ctx, cancel := context.WithCancel(context.Background())
	s := &session{
		id:     id,
		ctx:    ctx,
		cancel: cancel,
		logger: m.logger.With("session", id, "sorter_id", m.cfg.SorterID),
	}
	m.session = s
	m.state = StateConnecting
	m.mu.Unlock()

	m.reporter.Connecting(m.url)

	if err := validateURL(m.url); err != nil {
		s.logger.Warn("cannot build websocket connection", "error", err)
		m.reporter.TransportError(err)
		m.closed(s, websocket.CloseAbnormalClosure, "")
		return
	}

	go m.run(s)
}

// Disconnect disables reconnection and closes the live connection, if any.
// It is safe to call at any time and more than once.
func (m *Monitor) Disconnect() {
	m.mu.Lock()
	if m.disabled {
		m.mu.Unlock()
		return
	}
	m.disabled = true
	if m.timer != nil {
		m.timer.Stop()
		m.timer = nil
	}
	m.pending = false
	s := m.session
	var client connection.Client
	if s != nil {
		client = s.client
	}
	m.state = StateDisconnected
	if s == nil {
		m.finishLocked(nil)
	}
	m.mu.Unlock()

	m.reporter.Disconnecting()

	if s != nil {
		s.cancel()
		if client != nil {
			client.Close()
		}
	}
}

// run owns one session from dial to close.
func (m *Monitor) run(s *session) {
	clientCfg := m.cfg.Client
	clientCfg.URL = m.url
	client := m.newClient(clientCfg, s.logger)

	m.mu.Lock()
	s.client = client
	m.mu.Unlock()

	if err := client.Connect(s.ctx); err != nil {
		client.Close()
		if s.ctx.Err() != nil {
			m.closed(s, websocket.CloseNormalClosure, "")
			return
		}
		s.logger.Debug("dial failed", "error", err)
		m.reporter.TransportError(err)
		m.closed(s, websocket.CloseAbnormalClosure, "")
		return
	}

	if !m.opened(s) {
		client.Close()
		m.closed(s, websocket.CloseNormalClosure, "")
		return
	}

	s.logger.Info("assignment room joined", "url", m.url)
	m.reporter.Connected(m.url)

	for {
		select {
		case <-s.ctx.Done():
			client.Close()
			m.closed(s, websocket.CloseNormalClosure, "")
			return

		case err := <-client.Errors():
			// Frames read before the error are already buffered.
			m.drain(s, client)
			client.Close()
			if !connection.IsCloseFrame(err) {
				m.reporter.TransportError(err)
			}
			code, reason := connection.CloseStatus(err)
			s.logger.Debug("session ended", "code", code, "reason", reason, "error", err)
			m.closed(s, code, reason)
			return

		case msg := <-client.Messages():
			m.handleFrame(s, msg)
		}
	}
}

func (m *Monitor) drain(s *session, client connection.Client) {
	for {
		select {
		case msg := <-client.Messages():
			m.handleFrame(s, msg)
		default:
			return
		}
	}
}

// opened marks s connected unless it was cancelled meanwhile.
func (m *Monitor) opened(s *session) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session != s || s.ctx.Err() != nil {
		return false
	}
	m.state = StateConnected
	m.attempts = 0
	return true
}

// closed reports the end of s and decides whether to reconnect.
func (m *Monitor) closed(s *session, code int, reason string) {
	s.cancel()
	m.reporter.Closed(code, reason)

	m.mu.Lock()
	if m.session == s {
		m.session = nil
		m.state = StateDisconnected
	}
	if m.disabled {
		m.finishLocked(nil)
		m.mu.Unlock()
		return
	}
	m.mu.Unlock()

	m.scheduleReconnect()
}

// scheduleReconnect arms the single reconnect timer, or gives up when the
// attempt budget is spent.
func (m *Monitor) scheduleReconnect() {
	m.mu.Lock()
	if m.disabled || m.finished || m.pending {
		m.mu.Unlock()
		return
	}

	maxAttempts := m.cfg.MaxReconnectAttempts
	if m.attempts >= maxAttempts {
		m.state = StateDisconnected
		m.finishLocked(ErrReconnectExhausted)
		m.mu.Unlock()

		m.logger.Error("giving up on sorter backend", "url", m.url, "attempts", maxAttempts)
		m.reporter.GaveUp(maxAttempts)
		return
	}

	m.attempts++
	attempt := m.attempts
	m.pending = true
	m.mu.Unlock()

	delay := m.cfg.ReconnectInterval
	m.reporter.Reconnecting(attempt, maxAttempts, delay)

	m.mu.Lock()
	if m.pending && !m.disabled {
		m.timer = time.AfterFunc(delay, func() { m.connect(true) })
	}
	m.mu.Unlock()
}

// finishLocked closes done once. m.mu must be held.
func (m *Monitor) finishLocked(err error) {
	if m.finished {
		return
	}
	m.finished = true
	m.err = err
	close(m.done)
}

// handleFrame decodes a frame and reports each document in order.
func (m *Monitor) handleFrame(s *session, msg connection.TimestampedMessage) {
	for _, doc := range event.Decode(msg.Data) {
		switch doc.Kind {
		case event.KindAssignment:
			summary := event.Summarize(doc.Assignment, m.cfg.UnassignedPreview)
			s.logger.Debug("sku assignment received",
				"total", summary.Total,
				"assigned", len(summary.Assigned),
				"unassigned", summary.UnassignedCount,
				"latency", time.Since(msg.ReceivedAt),
			)
			m.reporter.Assignment(doc.Assignment, summary)

		case event.KindUnknown:
			m.reporter.UnknownMessage(doc.Raw)

		default:
			s.logger.Debug("dropping malformed frame", "error", doc.Err)
			m.reporter.MalformedMessage(doc.Raw, doc.Err)
		}
	}
}

func validateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "ws" && u.Scheme != "wss" {
		return fmt.Errorf("%w: scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return nil
}
