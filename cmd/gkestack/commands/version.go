package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, overwritten at link time via SetVersionInfo.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// SetVersionInfo records the build metadata injected by main.
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Version returns the command that prints the build metadata.
func Version() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the gkestack build version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("gkestack %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}
