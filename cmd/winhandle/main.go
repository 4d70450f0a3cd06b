package main

import (
	"os"

	"github.com/microsoft/hcsshim/winhandle/cmd/winhandle/cmd"
)

// Version information, set at build time with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersion(version, commit, date)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
