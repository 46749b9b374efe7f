package main

import (
	"fmt"
	"os"

	"github.com/superstar-lottery/stardeploy/internal/cli"
	"github.com/superstar-lottery/stardeploy/internal/cli/render"
	"github.com/superstar-lottery/stardeploy/internal/config"
)

// set by -ldflags "-X main.version=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.FormatError(err.Error()))
		os.Exit(1)
	}
}
