package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/nspcc-dev/pngme/pkg/png"
	"github.com/spf13/cobra"
)

const completionLongTemplate = `Print shell completion script to stdout.

Bash:
  $ source <(%[1]s completion bash)
  $ %[1]s completion bash > /etc/bash_completion.d/%[1]s

Zsh:
  $ %[1]s completion zsh > "${fpath[1]}/_%[1]s"

Fish:
  $ %[1]s completion fish > ~/.config/fish/completions/%[1]s.fish

PowerShell:
  PS> %[1]s completion powershell | Out-String | Invoke-Expression
`

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion bash|zsh|fish|powershell",
		Short:                 "Generate completion script",
		Long:                  fmt.Sprintf(completionLongTemplate, "pngme"),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, out := cmd.Root(), cmd.OutOrStdout()

			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			default:
				return root.GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// completeFileChunkTypes completes <file> <chunk-type> argument pairs. Chunk
// types are taken from the already specified file.
func completeFileChunkTypes(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return []string{"png"}, cobra.ShellCompDirectiveFilterFileExt
	case 1:
	default:
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	p, err := png.Decode(b)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return chunkTypeNames(p, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// chunkTypeNames returns distinct types of p chunks having the given prefix in
// order of appearance.
func chunkTypeNames(p *png.PNG, prefix string) []string {
	var res []string
	seen := make(map[string]struct{})

	for _, c := range p.Chunks() {
		name := c.Type().String()
		if _, ok := seen[name]; ok || !strings.HasPrefix(name, prefix) {
			continue
		}

		seen[name] = struct{}{}
		res = append(res, name)
	}

	return res
}
