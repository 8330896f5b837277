// Package monitor implements the sorter assignment monitor.
//
// The Monitor:
//   - Holds one WebSocket session to <base-url>/ws/assignment_<sorter-id>
//   - Decodes frames and forwards sku_assigned events to a Reporter
//   - Reconnects after a fixed delay, at most MaxReconnectAttempts times in a row
//   - Finishes with ErrReconnectExhausted when the attempt budget runs out
//
// All user-visible output goes through Reporter, so the connection logic
// can be exercised without a terminal.
package monitor
