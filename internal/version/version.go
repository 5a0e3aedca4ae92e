// Package version provides build version information for worthit.
// Variables are set at build time via ldflags:
//
//	go build -ldflags="-X github.com/jpl-au/worthit/internal/version.Version=v1.0.0 \
//	  -X github.com/jpl-au/worthit/internal/version.GitCommit=abc123 \
//	  -X github.com/jpl-au/worthit/internal/version.BuildTime=2026-01-15T10:30:00Z"
//
// Binaries installed with "go install" carry no ldflags; Get then falls
// back to the module version and VCS data recorded by the Go toolchain.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Build information. Set via ldflags at build time.
var (
	Version   = "dev"     // Version tag (e.g., "v1.0.0")
	GitCommit = "unknown" // Short git commit hash
	BuildTime = "unknown" // RFC3339 build timestamp
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info holds structured version information.
type Info struct {
	BuildTag  string `json:"build_tag"`  // Version tag (e.g., "v1.0.0" or "dev")
	BuildTime string `json:"build_time"` // RFC3339 build timestamp
	GitCommit string `json:"git_commit"` // Short git commit hash
	GoVersion string `json:"go_version"` // Go runtime version
	Platform  string `json:"platform"`   // OS and architecture (e.g., "darwin arm64")
}

// Get returns the current version information.
func Get() Info {
	i := Info{
		BuildTag:  Version,
		BuildTime: BuildTime,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s %s", runtime.GOOS, runtime.GOARCH),
	}
	if bi, ok := readBuildInfo(); ok {
		i.fill(bi)
	}
	return i
}

// fill replaces unset ldflags values with what the toolchain recorded.
func (i *Info) fill(bi *debug.BuildInfo) {
	if i.BuildTag == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		i.BuildTag = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if i.GitCommit == "unknown" && s.Value != "" {
				i.GitCommit = s.Value[:min(len(s.Value), 7)]
			}
		case "vcs.time":
			if i.BuildTime == "unknown" && s.Value != "" {
				i.BuildTime = s.Value
			}
		}
	}
}

// String returns a formatted version string suitable for display.
func (i Info) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Build Tag:    %s\n", i.BuildTag)
	fmt.Fprintf(&b, "Build Time:   %s\n", i.BuildTime)
	fmt.Fprintf(&b, "Go Version:   %s\n", i.GoVersion)
	fmt.Fprintf(&b, "Platform:     %s\n", i.Platform)
	fmt.Fprintf(&b, "Git Commit:   %s\n", i.GitCommit)
	return b.String()
}

// Short returns just the version string (e.g., "v1.0.0" or "dev").
func Short() string {
	return Get().BuildTag
}
