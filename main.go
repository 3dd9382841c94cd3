package main

import (
	"github.com/justin4957/UNStatsExplorer/cmd"
)

var (
	version   = "dev"
	commit    = "none"
	buildTime = "unknown"
)

func main() {
	cmd.SetVersion(version, commit, buildTime)
	cmd.Execute()
}
