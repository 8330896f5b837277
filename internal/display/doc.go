// Package display renders monitor activity to an operator's terminal.
//
// Every line carries a [HH:MM:SS] timestamp and a color for its kind.
// Operator text is Spanish, matching the sorter backend's audience.
package display
