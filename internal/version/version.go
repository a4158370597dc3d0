package version

import "github.com/fatih/color"

// Build metadata for the movetrace CLI.
// These variables can be overridden at build time via -ldflags.

var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var versionColor = color.New(color.FgGreen, color.Bold)

// Pretty renders the version for terminals, colorized unless color output
// is globally disabled.
func Pretty() string {
	return versionColor.Sprint(Version)
}
