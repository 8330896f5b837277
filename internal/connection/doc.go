// Package connection implements the WebSocket client used by the monitor.
//
// A Client owns exactly one connection:
//   - Dials with a handshake timeout
//   - Answers server pings and sends its own keepalive pings
//   - Reports a stale connection when no ping/pong arrives within PingTimeout
//   - Delivers frames in arrival order, never dropping them
package connection
