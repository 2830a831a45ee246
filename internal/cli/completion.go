package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command for generating shell completions.
func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for streamnet.

To load completions:

Bash:
  $ source <(streamnet completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ streamnet completion bash > /etc/bash_completion.d/streamnet
  # macOS:
  $ streamnet completion bash > $(brew --prefix)/etc/bash_completion.d/streamnet

Zsh:
  $ streamnet completion zsh > "${fpath[1]}/_streamnet"

Fish:
  $ streamnet completion fish | source

PowerShell:
  PS> streamnet completion powershell | Out-String | Invoke-Expression
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
}
