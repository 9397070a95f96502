package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `Generate shell completion script for winepath.

To load completions:

Bash:
  # Load on shell startup (add to ~/.bashrc)
  $ source <(winepath completion bash)

  # Or install permanently (requires sudo)
  $ winepath completion bash | sudo tee /etc/bash_completion.d/winepath >/dev/null

Zsh:
  # Load on shell startup (add to ~/.zshrc)
  $ source <(winepath completion zsh)

  # Or install permanently (requires sudo)
  $ winepath completion zsh | sudo tee /usr/local/share/zsh/site-functions/_winepath >/dev/null

  # Note: If shell completion is not already enabled:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

Fish:
  $ winepath completion fish > ~/.config/fish/completions/winepath.fish

PowerShell:
  PS> winepath completion powershell | Out-String | Invoke-Expression
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
