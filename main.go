package main

import (
	"os"

	"github.com/ramanasai/smartstep/cmd"
	"github.com/ramanasai/smartstep/internal/version"
)

// Build metadata injected through -ldflags.
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildDate    = "unknown"
)

func init() {
	version.Version = buildVersion
	version.Commit = buildCommit
	version.Date = buildDate
}

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
