// Package version provides build version information embedding for
// dagkit applications.
//
// Version, git commit, branch, and build time are set at compile time
// via -ldflags:
//
//	go build -ldflags "-X github.com/kbukum/dagkit/version.Version=1.0.0"
package version
