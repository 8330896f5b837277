// Package metrics exposes monitor activity to Prometheus.
//
// Recorder implements monitor.Reporter and keeps these collectors up to date:
//   - sorter_monitor_frames_total{kind}: decoded documents by kind
//   - sorter_monitor_reconnect_attempts_total: scheduled reconnects
//   - sorter_monitor_transport_errors_total: dial and read failures
//   - sorter_monitor_connected: 1 while the room is joined
//   - sorter_monitor_skus{state}: assigned/unassigned counts from the last event
//   - sorter_monitor_last_event_timestamp_seconds: timestamp of the last event
//
// NewHandler serves the registry on the configured path next to /health.
package metrics
