package version

import (
	"strings"
	"testing"
)

func saveAndRestore() func() {
	origVersion, origCommit, origBuildTime := Version, Commit, BuildTime
	return func() {
		Version = origVersion
		Commit = origCommit
		BuildTime = origBuildTime
	}
}

func TestGetDefaults(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	Commit = ""
	BuildTime = ""

	info := Get()
	if info.Version != "dev" {
		t.Errorf("Version = %q, want dev", info.Version)
	}
	if info.Release {
		t.Error("dev should not be a release")
	}
}

func TestGetWithLdflags(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	Commit = "abc1234"
	BuildTime = "2024-01-15T10:30:00Z"

	info := Get()
	if !info.Release {
		t.Error("1.0.0 should be a release")
	}
	if info.Commit != "abc1234" {
		t.Errorf("Commit = %q, want abc1234", info.Commit)
	}
	if info.Built.Year() != 2024 {
		t.Errorf("Built year = %d, want 2024", info.Built.Year())
	}
}

func TestGetDirtyVersion(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0-dirty"
	Commit = ""
	BuildTime = ""

	if Get().Release {
		t.Error("dirty version should not be a release")
	}
}

func TestShort(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	Commit = "abc1234"
	BuildTime = ""

	if sv := Short(); sv != "1.0.0-abc1234" {
		t.Errorf("Short() = %q, want 1.0.0-abc1234", sv)
	}
}

func TestShortNoCommitInDev(t *testing.T) {
	defer saveAndRestore()()
	Version = "dev"
	Commit = ""
	BuildTime = ""

	if sv := Short(); !strings.HasPrefix(sv, "dev") {
		t.Errorf("Short() = %q, want dev prefix", sv)
	}
}

func TestFullIncludesBuildTime(t *testing.T) {
	defer saveAndRestore()()
	Version = "1.0.0"
	Commit = "abc1234"
	BuildTime = "2024-01-15T10:30:00Z"

	fv := Full()
	if !strings.Contains(fv, "1.0.0-abc1234") {
		t.Errorf("Full() = %q, want version-commit", fv)
	}
	if !strings.Contains(fv, "built 2024-01-15") {
		t.Errorf("Full() = %q, want build timestamp", fv)
	}
}

func TestShortCommitTruncates(t *testing.T) {
	if got := shortCommit("0123456789abcdef"); got != "0123456" {
		t.Errorf("shortCommit = %q, want 0123456", got)
	}
	if got := shortCommit("abc"); got != "abc" {
		t.Errorf("shortCommit = %q, want abc", got)
	}
}
