package commands

import (
	"github.com/spf13/cobra"

	"github.com/lkhq/gkestack/cmd/gkestack/handlers"
)

// Destroy returns the destroy command.
//
// The destroy command removes all platform resources from Google Cloud.
// The engine deletes resources in reverse dependency order: namespaces,
// node pools, the cluster, registry bindings, service accounts, NAT,
// firewalls, subnetwork and network.
//
// Destruction requires an explicit confirmation: --confirm must equal
// the platform name from the configuration, otherwise the command is
// refused before the engine is ever contacted.
func Destroy() *cobra.Command {
	var (
		configPath string
		confirm    string
	)

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Destroy the platform and all associated resources",
		Long: `Destroy removes all platform resources from Google Cloud.

This command deletes all resources associated with the platform:
  - Kubernetes namespaces
  - GKE cluster and node pools
  - Container registry repository and its IAM bindings
  - Service accounts and their project role bindings
  - Cloud NAT, router and firewall rules
  - Subnetwork and VPC network

The state bucket itself is never deleted; remove it manually once the
platform is gone for good.

You must pass --confirm with the exact platform name:

  gkestack destroy -c gkestack.yaml --confirm my-platform

WARNING: This operation is irreversible. All workloads and data on the
cluster will be lost.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Destroy(cmd.Context(), configPath, confirm)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to platform configuration file (required)")
	cmd.Flags().StringVar(&confirm, "confirm", "", "Platform name, typed out to confirm destruction")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
