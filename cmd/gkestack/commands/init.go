package commands

import (
	"github.com/spf13/cobra"

	"github.com/lkhq/gkestack/cmd/gkestack/handlers"
)

// Init returns the command for interactively creating a platform configuration.
//
// This command guides users through creating a configuration YAML file
// using an interactive wizard with text inputs, single-select, and
// confirmation prompts.
//
// Flags:
//
//	--output, -o: Path to output file (default "gkestack.yaml")
//	--non-interactive: Write a commented template instead of running the wizard
func Init() *cobra.Command {
	var (
		outputPath     string
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Interactively create a platform configuration",
		Long: `Interactively create a platform configuration file.

This command guides you through configuring your platform step by step.
It will ask about:

  - Platform identity (name, GCP project, region)
  - Node machine type and private node access
  - Container registry repository
  - State bucket for the engine backend

Use --non-interactive to write a commented template instead, useful
for CI or for editing by hand.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Init(cmd.Context(), outputPath, nonInteractive)
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "gkestack.yaml", "Output file path")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "Write a commented template instead of running the wizard")

	return cmd
}
