package commands

import (
	"os"

	"github.com/spf13/cobra"
)

// Completion returns the command that emits shell completion scripts.
func Completion() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Emit a completion script for your shell",
		Long: `Emit a tab-completion script for the given shell on stdout.

Pipe or redirect the output into the place your shell picks completions
up from. For a one-off session:

  bash:       source <(gkestack completion bash)
  fish:       gkestack completion fish | source
  powershell: gkestack completion powershell | Out-String | Invoke-Expression

To install permanently, write the script where the shell loads it on
startup, for example:

  gkestack completion bash > /etc/bash_completion.d/gkestack
  gkestack completion zsh  > "${fpath[1]}/_gkestack"
  gkestack completion fish > ~/.config/fish/completions/gkestack.fish

For zsh, make sure compinit runs in your ~/.zshrc, then open a new shell.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
