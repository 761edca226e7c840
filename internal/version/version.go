package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the phix CLI.
// These variables can be overridden at build time via -ldflags:
//
//	-X phix/internal/version.Version=1.2.3 -X phix/internal/version.GitCommit=$(git rev-parse HEAD)
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)
)

// Colored renders Version with each semver component painted its own
// color. Values that do not look like major.minor.patch come back as is.
func Colored() string {
	core, tail, _ := strings.Cut(Version, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return Version
	}
	out := versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2])
	if tail != "" {
		out += "-" + tail
	}
	return out
}
