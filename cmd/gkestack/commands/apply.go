package commands

import (
	"github.com/spf13/cobra"

	"github.com/lkhq/gkestack/cmd/gkestack/handlers"
)

// Apply returns the command for provisioning and updating the platform.
//
// This command handles the complete lifecycle of platform provisioning:
// loading configuration, preparing the engine workspace against the
// remote state backend, and converging cluster, network, service
// accounts and registry to the desired state.
//
// Optional flags:
//
//	--config, -c: Path to platform configuration YAML file (default: auto-detect gkestack.yaml)
//
// Environment variables:
//
//	GOOGLE_CREDENTIALS: GCP service account key JSON (required in CI)
//	PULUMI_CONFIG_PASSPHRASE: Passphrase protecting stack secrets
func Apply() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Create or update the platform",
		Long: `Create or update your GKE platform.

This command provisions all platform resources on Google Cloud: the VPC
network and subnetwork, firewall rules and NAT, four dedicated service
accounts, the GKE cluster with its node pools, and the container
registry repository. Re-running apply converges the platform toward the
configuration; unchanged resources are left alone.

If no config file is specified, it looks for gkestack.yaml in the
current directory. Use 'gkestack init' to create a configuration file.

Examples:
  # Apply using gkestack.yaml in current directory
  gkestack apply

  # Apply a specific config file
  gkestack apply -c production.yaml

  # Re-apply after configuration changes
  gkestack apply`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Apply(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gkestack.yaml)")

	return cmd
}
