// Package buildinfo holds version information stamped in at link time:
//
//	go build -ldflags "-X github.com/mbforbes/beautyplot/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/mbforbes/beautyplot/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/mbforbes/beautyplot/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info is the JSON form served by the HTTP health check.
type Info struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Get returns the current build information.
func Get() Info {
	return Info{Version: Version, Commit: Commit, Date: Date}
}

// String returns a multi-line summary.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
