// Package main is the entry point for the gkestack CLI.
//
// gkestack is a command-line tool for provisioning a production-ready
// application platform on Google Cloud: a private GKE cluster with its
// VPC network, least-privilege service accounts and a container
// registry, driven through the Pulumi engine with state kept in a
// Cloud Storage bucket.
//
// Commands: init, bootstrap, plan, apply, destroy, outputs, refresh.
//
// For detailed usage information, run:
//
//	gkestack --help
package main

import (
	"fmt"
	"os"

	"github.com/lkhq/gkestack/cmd/gkestack/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
