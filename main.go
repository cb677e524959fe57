// Package main is the entry point for the docsearch CLI
package main

import (
	"os"

	"docsearch/internal/cli"
)

// set at build time via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	cli.SetVersion(version, commit)
	if err := cli.Execute(); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
