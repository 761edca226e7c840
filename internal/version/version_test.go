package version

import (
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestVersionDefault(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
	if !strings.Contains(Version, ".") {
		t.Errorf("Version %q does not look like semver", Version)
	}
}

func TestColoredKeepsValue(t *testing.T) {
	old := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = old })

	orig := Version
	t.Cleanup(func() { Version = orig })

	cases := []string{"0.1.0-dev", "1.2.3", "2.0.0-rc.1"}
	for _, v := range cases {
		Version = v
		if got := Colored(); got != v {
			t.Errorf("Colored() with NoColor = %q, want %q", got, v)
		}
	}
}

func TestColoredPaintsComponents(t *testing.T) {
	old := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = old })

	orig := Version
	Version = "1.2.3-dev"
	t.Cleanup(func() { Version = orig })

	got := Colored()
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("Colored() = %q, expected ANSI escapes", got)
	}
	if !strings.HasSuffix(got, "-dev") {
		t.Errorf("Colored() = %q, prerelease tail must stay plain", got)
	}
}

func TestColoredNonSemver(t *testing.T) {
	orig := Version
	Version = "nightly"
	t.Cleanup(func() { Version = orig })

	if got := Colored(); got != "nightly" {
		t.Errorf("Colored() = %q, want %q", got, "nightly")
	}
}

func TestOverridableMetadata(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	t.Cleanup(func() { GitCommit, BuildDate = origCommit, origDate })

	GitCommit = "abc123def456"
	BuildDate = "2026-01-15T10:30:00Z"

	if GitCommit != "abc123def456" {
		t.Errorf("GitCommit = %q", GitCommit)
	}
	if BuildDate != "2026-01-15T10:30:00Z" {
		t.Errorf("BuildDate = %q", BuildDate)
	}
}
