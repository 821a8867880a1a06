package commands

import (
	"github.com/spf13/cobra"

	"github.com/lkhq/gkestack/cmd/gkestack/handlers"
)

// Outputs returns the command for printing the platform's stack outputs.
//
// Outputs include the cluster name and endpoint, network and subnetwork
// names, registry URL and the service account emails. Secret outputs
// (the kubeconfig) are masked unless --show-secrets is given.
func Outputs() *cobra.Command {
	var (
		configPath  string
		jsonOutput  bool
		showSecrets bool
	)

	cmd := &cobra.Command{
		Use:   "outputs",
		Short: "Print the platform's stack outputs",
		Long: `Print the outputs recorded in the platform's stack.

Examples:
  # Human-readable output
  gkestack outputs

  # JSON, for scripting
  gkestack outputs --json

  # Include secret values such as the kubeconfig
  gkestack outputs --show-secrets`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Outputs(cmd.Context(), configPath, jsonOutput, showSecrets)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gkestack.yaml)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Print outputs as JSON")
	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "Print secret output values in plain text")

	return cmd
}
