package monitor

import (
	"time"

	"github.com/greenex/sorter-monitor/internal/event"
)

// Tee returns a Reporter that forwards every call to each reporter in order.
func Tee(reporters ...Reporter) Reporter {
	return tee(reporters)
}

type tee []Reporter

func (t tee) Connecting(url string) {
	for _, r := range t {
		r.Connecting(url)
	}
}

func (t tee) Connected(url string) {
	for _, r := range t {
		r.Connected(url)
	}
}

func (t tee) Assignment(ev *event.AssignmentEvent, summary event.Summary) {
	for _, r := range t {
		r.Assignment(ev, summary)
	}
}

func (t tee) UnknownMessage(raw string) {
	for _, r := range t {
		r.UnknownMessage(raw)
	}
}

func (t tee) MalformedMessage(raw string, err error) {
	for _, r := range t {
		r.MalformedMessage(raw, err)
	}
}

func (t tee) TransportError(err error) {
	for _, r := range t {
		r.TransportError(err)
	}
}

func (t tee) Closed(code int, reason string) {
	for _, r := range t {
		r.Closed(code, reason)
	}
}

func (t tee) Reconnecting(attempt, maxAttempts int, delay time.Duration) {
	for _, r := range t {
		r.Reconnecting(attempt, maxAttempts, delay)
	}
}

func (t tee) GaveUp(maxAttempts int) {
	for _, r := range t {
		r.GaveUp(maxAttempts)
	}
}

func (t tee) Disconnecting() {
	for _, r := range t {
		r.Disconnecting()
	}
}
