// Package version provides build version information embedding.
package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

var (
	// Set at build time via -ldflags.
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info holds the resolved build identity of the binary.
type Info struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit"`
	GoVersion string    `json:"go_version"`
	Built     time.Time `json:"built"`
	Release   bool      `json:"release"`
	Dirty     bool      `json:"dirty"`
}

// Get resolves build info from the ldflags variables, falling back to
// the VCS metadata the Go toolchain stamps into the binary.
func Get() *Info {
	info := &Info{
		Version: Version,
		Commit:  Commit,
		Release: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if BuildTime != "" {
		if t, err := time.Parse(time.RFC3339, BuildTime); err == nil {
			info.Built = t
		}
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		info.GoVersion = bi.GoVersion
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = shortCommit(s.Value)
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			case "vcs.time":
				if info.Built.IsZero() {
					if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
						info.Built = t
					}
				}
			}
		}
	}
	return info
}

// Short returns "version-commit", with a -dirty suffix for modified
// working trees.
func Short() string {
	info := Get()
	switch {
	case info.Commit == "":
		return info.Version
	case info.Dirty:
		return fmt.Sprintf("%s-%s-dirty", info.Version, info.Commit)
	default:
		return fmt.Sprintf("%s-%s", info.Version, info.Commit)
	}
}

// Full returns the short form plus the build timestamp when known.
func Full() string {
	info := Get()
	s := Short()
	if !info.Built.IsZero() {
		s += fmt.Sprintf(" (built %s)", info.Built.UTC().Format(time.RFC3339))
	}
	return s
}

func shortCommit(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
