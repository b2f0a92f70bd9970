// Package version provides build version information.
package version

import "fmt"

// Injected at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// GetVersion returns the semantic version string.
func GetVersion() string {
	return version
}

// GetFullVersion returns the version with commit and build date info.
func GetFullVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
}
