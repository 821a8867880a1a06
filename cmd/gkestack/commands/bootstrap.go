package commands

import (
	"github.com/spf13/cobra"

	"github.com/lkhq/gkestack/cmd/gkestack/handlers"
)

// Bootstrap returns the command for creating the state backend bucket.
//
// Every other command stores engine state in gs://<bucket>/<prefix>.
// That bucket has to exist before the first plan or apply; bootstrap
// creates it with versioning and uniform bucket-level access, using a
// local state file since the remote backend cannot hold its own
// bootstrap state.
func Bootstrap() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Create the state backend bucket",
		Long: `Create the Cloud Storage bucket that holds engine state.

The bucket is created with object versioning and uniform bucket-level
access, and old state versions are trimmed automatically. State for the
bootstrap itself is kept in the local engine backend (~/.pulumi), since
the remote bucket cannot store the state of its own creation.

Run this once per platform, before the first plan or apply:

  gkestack bootstrap -c gkestack.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Bootstrap(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gkestack.yaml)")

	return cmd
}
