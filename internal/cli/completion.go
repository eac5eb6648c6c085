package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for hashcalc.

To load completions for your shell:

Bash:
  # To load completions for each session, execute once:
  # Linux:
  hashcalc completion bash > /etc/bash_completion.d/hashcalc
  # macOS:
  hashcalc completion bash > /usr/local/etc/bash_completion.d/hashcalc

  # Or add to your ~/.bashrc or ~/.bash_profile:
  source <(hashcalc completion bash)

Zsh:
  # To load completions for each session, execute once:
  hashcalc completion zsh > "${fpath[1]}/_hashcalc"

  # Or add to your ~/.zshrc:
  source <(hashcalc completion zsh)

  # You may need to force rebuild the completion cache:
  rm -f ~/.zcompdump
  compinit

Fish:
  # To load completions for each session, execute once:
  hashcalc completion fish > ~/.config/fish/completions/hashcalc.fish

  # Or add to your ~/.config/fish/config.fish:
  hashcalc completion fish | source

PowerShell:
  # To load completions for each session, run:
  hashcalc completion powershell | Out-String | Invoke-Expression

  # Or add to your PowerShell profile:
  # (Microsoft.PowerShell_profile.ps1 or profile.ps1)
  hashcalc completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  usageArgs(cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs)),
	RunE: func(cmd *cobra.Command, args []string) error {
		shell := args[0]
		out := cmd.OutOrStdout()

		var err error
		switch shell {
		case "bash":
			err = cmd.Root().GenBashCompletion(out)
		case "zsh":
			err = cmd.Root().GenZshCompletion(out)
		case "fish":
			err = cmd.Root().GenFishCompletion(out, true)
		case "powershell":
			err = cmd.Root().GenPowerShellCompletionWithDesc(out)
		default:
			err = fmt.Errorf("unsupported shell type: %s", shell)
		}
		if err != nil {
			return fmt.Errorf("generate completion for %s: %w", shell, err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
