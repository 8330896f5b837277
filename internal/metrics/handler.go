package metrics

import (
	"encoding/json"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/greenex/sorter-monitor/internal/monitor"
)

// Source reports the live monitor status for /health.
type Source interface {
	State() monitor.State
	SorterID() int
	Attempts() int
}

// Health is the /health response body.
type Health struct {
	Status            string `json:"status"`
	State             string `json:"state"`
	SorterID          int    `json:"sorter_id"`
	ReconnectAttempts int    `json:"reconnect_attempts"`
}

// NewHandler serves the registry on path and the monitor status on /health.
func NewHandler(reg *prometheus.Registry, src Source, path string) http.Handler {
	if path == "" {
		path = "/metrics"
	}

	mux := http.NewServeMux()
	mux.Handle(path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		state := src.State()
		health := Health{
			Status:            "healthy",
			State:             state.String(),
			SorterID:          src.SorterID(),
			ReconnectAttempts: src.Attempts(),
		}

		w.Header().Set("Content-Type", "application/json")
		if state != monitor.StateConnected {
			health.Status = "unhealthy"
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		json.NewEncoder(w).Encode(health)
	})

	return mux
}
