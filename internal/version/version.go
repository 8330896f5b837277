// Package version provides build-time version information.
//
// Variables are set at build time via ldflags:
//
//	go build -ldflags "-X github.com/greenex/sorter-monitor/internal/version.Version=1.0.0 \
//	                   -X github.com/greenex/sorter-monitor/internal/version.Commit=$(git rev-parse --short HEAD) \
//	                   -X github.com/greenex/sorter-monitor/internal/version.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	         ./cmd/monitor
package version

import "fmt"

// Build-time variables (set via ldflags)
var (
	// Version is the semantic version (e.g., "1.0.0")
	Version = "dev"

	// Commit is the git commit hash (short form)
	Commit = "unknown"

	// BuildTime is the UTC build timestamp (ISO 8601)
	BuildTime = "unknown"
)

// Info is a snapshot of the build variables.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"build_time"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

// Short returns the version for the startup banner, e.g. "1.0.0 (a1b2c3d)".
func (i Info) Short() string {
	if i.Commit == "" || i.Commit == "unknown" {
		return i.Version
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.Commit)
}

// String returns the full version line printed by "sorter-monitor version".
func (i Info) String() string {
	return fmt.Sprintf("sorter-monitor %s built %s", i.Short(), i.BuildTime)
}

// String returns a formatted version string.
func String() string {
	return Get().String()
}
