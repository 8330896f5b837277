package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/greenex/sorter-monitor/internal/event"
)

const namespace = "sorter_monitor"

// Frame kinds used as the "kind" label.
const (
	KindAssignment = "assignment"
	KindUnknown    = "unknown"
	KindMalformed  = "malformed"
)

// Recorder records monitor activity as Prometheus metrics.
type Recorder struct {
	frames          *prometheus.CounterVec
	reconnects      prometheus.Counter
	transportErrors prometheus.Counter
	connected       prometheus.Gauge
	skus            *prometheus.GaugeVec
	lastEvent       prometheus.Gauge

	now func() time.Time
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "frames_total",
				Help:      "Documents received from the assignment room by kind",
			},
			[]string{"kind"},
		),
		reconnects: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "reconnect_attempts_total",
				Help:      "Reconnect attempts scheduled after a close",
			},
		),
		transportErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "transport_errors_total",
				Help:      "WebSocket dial and read failures",
			},
		),
		connected: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "connected",
				Help:      "1 while the assignment room is joined, 0 otherwise",
			},
		),
		skus: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "skus",
				Help:      "SKUs in the last assignment event by state",
			},
			[]string{"state"},
		),
		lastEvent: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_event_timestamp_seconds",
				Help:      "Unix time of the last assignment event",
			},
		),
		now: time.Now,
	}

	// Pre-create label values so they export as 0.
	for _, kind := range []string{KindAssignment, KindUnknown, KindMalformed} {
		r.frames.WithLabelValues(kind)
	}

	reg.MustRegister(r.frames, r.reconnects, r.transportErrors, r.connected, r.skus, r.lastEvent)
	return r
}

// Connecting implements monitor.Reporter.
func (r *Recorder) Connecting(string) {}

// Connected implements monitor.Reporter.
func (r *Recorder) Connected(string) {
	r.connected.Set(1)
}

// Assignment implements monitor.Reporter.
func (r *Recorder) Assignment(ev *event.AssignmentEvent, s event.Summary) {
	r.frames.WithLabelValues(KindAssignment).Inc()
	r.skus.WithLabelValues("assigned").Set(float64(len(s.Assigned)))
	r.skus.WithLabelValues("unassigned").Set(float64(s.UnassignedCount))

	// Events without a parseable timestamp count as received now.
	ts, err := time.Parse(time.RFC3339Nano, ev.Timestamp)
	if err != nil {
		ts = r.now()
	}
	r.lastEvent.Set(float64(ts.UnixNano()) / 1e9)
}

// UnknownMessage implements monitor.Reporter.
func (r *Recorder) UnknownMessage(string) {
	r.frames.WithLabelValues(KindUnknown).Inc()
}

// MalformedMessage implements monitor.Reporter.
func (r *Recorder) MalformedMessage(string, error) {
	r.frames.WithLabelValues(KindMalformed).Inc()
}

// TransportError implements monitor.Reporter.
func (r *Recorder) TransportError(error) {
	r.transportErrors.Inc()
}

// Closed implements monitor.Reporter.
func (r *Recorder) Closed(int, string) {
	r.connected.Set(0)
}

// Reconnecting implements monitor.Reporter.
func (r *Recorder) Reconnecting(int, int, time.Duration) {
	r.reconnects.Inc()
}

// GaveUp implements monitor.Reporter.
func (r *Recorder) GaveUp(int) {
	r.connected.Set(0)
}

// Disconnecting implements monitor.Reporter.
func (r *Recorder) Disconnecting() {}
