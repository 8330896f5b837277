package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	yaml := `
server:
  base_url: ws://sorter-gw:9000
  sorter_id: 3
reconnect:
  interval: 250ms
  max_attempts: 4
display:
  color: false
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.BaseURL != "ws://sorter-gw:9000" {
		t.Errorf("Server.BaseURL = %q, want %q", cfg.Server.BaseURL, "ws://sorter-gw:9000")
	}
	if cfg.Server.SorterID != 3 {
		t.Errorf("Server.SorterID = %d, want 3", cfg.Server.SorterID)
	}
	if cfg.Reconnect.Interval != 250*time.Millisecond {
		t.Errorf("Reconnect.Interval = %v, want 250ms", cfg.Reconnect.Interval)
	}
	if cfg.Reconnect.MaxAttempts != 4 {
		t.Errorf("Reconnect.MaxAttempts = %d, want 4", cfg.Reconnect.MaxAttempts)
	}
	if cfg.Display.Color == nil || *cfg.Display.Color {
		t.Errorf("Display.Color = %v, want explicit false", cfg.Display.Color)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := LoadAndValidate("")
	if err != nil {
		t.Fatalf("LoadAndValidate(\"\") failed: %v", err)
	}
	if got, want := cfg.Server.URL(), "ws://localhost:8081/ws/assignment_1"; got != want {
		t.Errorf("Server.URL() = %q, want %q", got, want)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_SORTER_HOST", "10.0.0.7:8081")

	yaml := `
server:
  base_url: ws://${TEST_SORTER_HOST}
  sorter_id: 2
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got, want := cfg.Server.BaseURL, "ws://10.0.0.7:8081"; got != want {
		t.Errorf("Server.BaseURL = %q, want %q", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.HasPrefix(err.Error(), "read config file:") {
		t.Errorf("error = %q, want read config file prefix", err)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeTempFile(t, "server: [unterminated")

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid yaml")
	}
	if !strings.HasPrefix(err.Error(), "parse config yaml:") {
		t.Errorf("error = %q, want parse config yaml prefix", err)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeTempFile(t, "server:\n  sorter_id: 2\n")

	cfg, err := LoadWithDefaults(path)
	if err != nil {
		t.Fatalf("LoadWithDefaults failed: %v", err)
	}

	if cfg.Server.BaseURL != DefaultBaseURL {
		t.Errorf("Server.BaseURL = %q, want default %q", cfg.Server.BaseURL, DefaultBaseURL)
	}
	if cfg.Server.SorterID != 2 {
		t.Errorf("Server.SorterID = %d, want 2", cfg.Server.SorterID)
	}
	if cfg.Reconnect.Interval != DefaultReconnectInterval {
		t.Errorf("Reconnect.Interval = %v, want default %v", cfg.Reconnect.Interval, DefaultReconnectInterval)
	}
	if cfg.Reconnect.MaxAttempts != DefaultMaxReconnectAttempts {
		t.Errorf("Reconnect.MaxAttempts = %d, want default %d", cfg.Reconnect.MaxAttempts, DefaultMaxReconnectAttempts)
	}
	if cfg.Connection.ShutdownGrace != DefaultShutdownGrace {
		t.Errorf("Connection.ShutdownGrace = %v, want default %v", cfg.Connection.ShutdownGrace, DefaultShutdownGrace)
	}
	if cfg.Display.UnassignedPreview != DefaultUnassignedPreview {
		t.Errorf("Display.UnassignedPreview = %d, want default %d", cfg.Display.UnassignedPreview, DefaultUnassignedPreview)
	}
	if cfg.Metrics.Path != DefaultMetricsPath {
		t.Errorf("Metrics.Path = %q, want default %q", cfg.Metrics.Path, DefaultMetricsPath)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*MonitorConfig)
		wantErr string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *MonitorConfig) {},
			wantErr: "",
		},
		{
			name:    "missing base url",
			mutate:  func(c *MonitorConfig) { c.Server.BaseURL = "" },
			wantErr: "server.base_url is required",
		},
		{
			name:    "http scheme",
			mutate:  func(c *MonitorConfig) { c.Server.BaseURL = "http://localhost:8081" },
			wantErr: `server.base_url scheme must be ws or wss, got "http"`,
		},
		{
			name:    "missing host",
			mutate:  func(c *MonitorConfig) { c.Server.BaseURL = "ws://" },
			wantErr: "server.base_url must include a host",
		},
		{
			name:    "relative path prefix",
			mutate:  func(c *MonitorConfig) { c.Server.PathPrefix = "ws/assignment_" },
			wantErr: `server.path_prefix must start with /, got "ws/assignment_"`,
		},
		{
			name:    "negative sorter id",
			mutate:  func(c *MonitorConfig) { c.Server.SorterID = -1 },
			wantErr: "server.sorter_id must be >= 1, got -1",
		},
		{
			name:    "negative max attempts",
			mutate:  func(c *MonitorConfig) { c.Reconnect.MaxAttempts = -3 },
			wantErr: "reconnect.max_attempts must be >= 1",
		},
		{
			name:    "negative interval",
			mutate:  func(c *MonitorConfig) { c.Reconnect.Interval = -time.Second },
			wantErr: "reconnect.interval must be > 0",
		},
		{
			name:    "negative read limit",
			mutate:  func(c *MonitorConfig) { c.Connection.ReadLimit = -1 },
			wantErr: "connection.read_limit must be >= 0",
		},
		{
			name:    "unknown log level",
			mutate:  func(c *MonitorConfig) { c.Log.Level = "trace" },
			wantErr: `log.level must be one of debug, info, warn, error, got "trace"`,
		},
		{
			name:    "unknown log format",
			mutate:  func(c *MonitorConfig) { c.Log.Format = "logfmt" },
			wantErr: `log.format must be text or json, got "logfmt"`,
		},
		{
			name: "metrics path without slash",
			mutate: func(c *MonitorConfig) {
				c.Metrics.ListenAddr = ":9102"
				c.Metrics.Path = "metrics"
			},
			wantErr: `metrics.path must start with /, got "metrics"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
			} else {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantErr)
				} else if err.Error() != tt.wantErr {
					t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
				}
			}
		})
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
