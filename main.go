package main

import "github.com/matheuskafuri/hunttech/cmd"

// Overridden with -ldflags "-X main.version=..." in release builds.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}
