package commands

import (
	"github.com/spf13/cobra"

	"github.com/lkhq/gkestack/cmd/gkestack/handlers"
)

// Refresh returns the command for reconciling state with the cloud.
//
// Refresh reads every resource in the stack back from Google Cloud and
// updates the recorded state to match, without changing any resource.
// Useful after out-of-band changes made in the console.
func Refresh() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Reconcile recorded state with actual cloud resources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Refresh(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gkestack.yaml)")

	return cmd
}
