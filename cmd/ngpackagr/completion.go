// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// completionCmd emits a completion script for the requested shell.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate a shell completion script for ng-packagr.

To enable completions, run one of the following:

` + SubtitleStyle.Render("Bash:") + `
  # Add to ~/.bashrc:
  eval "$(ng-packagr completion bash)"

  # Or install system-wide:
  ng-packagr completion bash > /etc/bash_completion.d/ng-packagr

` + SubtitleStyle.Render("Zsh:") + `
  # Add to ~/.zshrc:
  eval "$(ng-packagr completion zsh)"

  # Or install to fpath:
  ng-packagr completion zsh > "${fpath[1]}/_ng-packagr"

` + SubtitleStyle.Render("Fish:") + `
  ng-packagr completion fish > ~/.config/fish/completions/ng-packagr.fish

` + SubtitleStyle.Render("PowerShell:") + `
  ng-packagr completion powershell | Out-String | Invoke-Expression

  # Or add to $PROFILE:
  ng-packagr completion powershell >> $PROFILE
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeCompletionScript(cmd.Root(), args[0])
	},
}

// writeCompletionScript generates the completion script for shell on
// stdout. Unknown shells cannot reach here; Args restricts them.
func writeCompletionScript(root *cobra.Command, shell string) error {
	switch shell {
	case "bash":
		return root.GenBashCompletion(os.Stdout)
	case "zsh":
		return root.GenZshCompletion(os.Stdout)
	case "fish":
		return root.GenFishCompletion(os.Stdout, true)
	case "powershell":
		return root.GenPowerShellCompletionWithDesc(os.Stdout)
	}
	return nil
}
