package cli

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/menulayout/pkg/layout"
	"github.com/matzehuels/menulayout/pkg/nav"
	"github.com/matzehuels/menulayout/pkg/pipeline"
)

// completionCommand prints a shell completion script. Besides subcommands
// and flags, the scripts complete scene files, anchors, formats and
// navigation directions (see registerCompletions).
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for menulayout.

Scene arguments complete to .toml and .yaml files and --anchor to the
container areas. --format completes render formats one comma-separated
entry at a time, and "nav" directions complete to left, right, up or down.

  bash:        source <(menulayout completion bash)
  zsh:         menulayout completion zsh > "${fpath[1]}/_menulayout"
  fish:        menulayout completion fish | source
  powershell:  menulayout completion powershell | Out-String | Invoke-Expression`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(os.Stdout, true)
			case "zsh":
				return root.GenZshCompletion(os.Stdout)
			case "fish":
				return root.GenFishCompletion(os.Stdout, true)
			default:
				return root.GenPowerShellCompletionWithDesc(os.Stdout)
			}
		},
	}
}

// Positional argument files per command. Commands not listed take no file.
var completionFiles = map[string][]string{
	"layout":    {"toml", "yaml", "yml"},
	"nav":       {"toml", "yaml", "yml"},
	"hit":       {"toml", "yaml", "yml"},
	"render":    {"toml", "yaml", "yml"},
	"navgraph":  {"toml", "yaml", "yml"},
	"preview":   {"toml", "yaml", "yml"},
	"visualize": {"json"},
}

// registerCompletions attaches argument and flag completion to every
// subcommand of root.
func registerCompletions(root *cobra.Command) {
	for _, cmd := range root.Commands() {
		if exts, ok := completionFiles[cmd.Name()]; ok && cmd.ValidArgsFunction == nil {
			cmd.ValidArgsFunction = completeArgs(cmd.Name(), exts)
		}
		if cmd.Flags().Lookup("anchor") != nil {
			_ = cmd.RegisterFlagCompletionFunc("anchor", completeAnchor)
		}
		if cmd.Flags().Lookup("format") != nil {
			_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
		}
	}
}

// completeArgs completes the scene or layout file in the first position.
// The third argument of nav is a direction.
func completeArgs(name string, exts []string) cobra.CompletionFunc {
	return func(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
		switch {
		case len(args) == 0:
			return exts, cobra.ShellCompDirectiveFilterFileExt
		case name == "nav" && len(args) == 2:
			dirs := make([]string, 0, len(nav.Directions))
			for _, d := range nav.Directions {
				dirs = append(dirs, d.String())
			}
			return dirs, cobra.ShellCompDirectiveNoFileComp
		default:
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
	}
}

func completeAnchor(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return layout.Areas(), cobra.ShellCompDirectiveNoFileComp
}

// completeFormats completes the last entry of a comma-separated format
// list, skipping formats already named.
func completeFormats(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	done := ""
	seen := map[string]bool{}
	if i := strings.LastIndex(toComplete, ","); i >= 0 {
		done = toComplete[:i+1]
		for _, f := range strings.Split(toComplete[:i], ",") {
			seen[strings.TrimSpace(f)] = true
		}
	}

	var out []string
	for _, f := range pipeline.ValidFormats {
		if !seen[f] {
			out = append(out, done+f)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp | cobra.ShellCompDirectiveNoSpace
}
