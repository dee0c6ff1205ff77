package version

import (
	"fmt"
	"runtime"
)

// Build metadata injected through -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

func GetVersion() string { return Version }

// GetVersionInfo is printed by `smartstep version`.
func GetVersionInfo() string {
	if Version == "dev" {
		return fmt.Sprintf("SmartStep dev (%s/%s)", runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("SmartStep %s (commit: %s, built: %s, %s/%s)",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}

// GetShortVersion is shown in the TUI footer.
func GetShortVersion() string {
	return "SmartStep " + Version
}
