package commands

import (
	"github.com/spf13/cobra"

	"github.com/lkhq/gkestack/cmd/gkestack/handlers"
)

// Plan returns the command for previewing platform changes.
//
// The plan command computes the full diff between the desired platform
// configuration and the recorded state, without changing anything. The
// resulting change summary is printed so it can be reviewed before apply.
//
// Optional flags:
//
//	--config, -c: Path to platform configuration YAML file (default: auto-detect gkestack.yaml)
//
// Environment variables:
//
//	GOOGLE_CREDENTIALS: GCP service account key JSON (required in CI)
//	PULUMI_CONFIG_PASSPHRASE: Passphrase protecting stack secrets
func Plan() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Preview the changes an apply would make",
		Long: `Preview the changes an apply would make.

This command refreshes nothing and changes nothing. It compares the
desired configuration against the state recorded in the backend bucket
and prints the resources that would be created, updated or deleted.

Examples:
  # Preview using gkestack.yaml in the current directory
  gkestack plan

  # Preview a specific configuration
  gkestack plan -c production.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Plan(cmd.Context(), configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: gkestack.yaml)")

	return cmd
}
