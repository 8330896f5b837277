// Package event defines the sorter backend's assignment room messages.
//
// The backend publishes JSON objects on /ws/assignment_<sorter-id>. Only
// "sku_assigned" carries a payload the monitor renders; other types
// (sku_flow_stats, box_status, ...) are passed through as unknown.
package event
