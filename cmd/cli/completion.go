// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"autodoc/internal/llm"
	"autodoc/internal/source"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// scriptCompletionFunc completes the positional arguments. The output script
// is restricted to files sharing the input's extension.
func scriptCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	switch len(args) {
	case 0:
		return nil, cobra.ShellCompDirectiveDefault
	case 1:
		ext := strings.TrimPrefix(source.Suffix(args[0]), ".")
		if ext == "" {
			return nil, cobra.ShellCompDirectiveDefault
		}
		return []string{ext}, cobra.ShellCompDirectiveFilterFileExt
	default:
		// Hints are free text.
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
}

func providerCompletionFunc(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var suggestions []string
	for _, p := range llm.Providers {
		if strings.HasPrefix(string(p), toComplete) {
			suggestions = append(suggestions, string(p))
		}
	}
	return suggestions, cobra.ShellCompDirectiveNoFileComp
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate the autocompletion script for the specified shell",
		Example:               "  autodoc completion bash > /etc/bash_completion.d/autodoc\n  autodoc completion zsh > \"${fpath[1]}/_autodoc\"",
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return root.GenBashCompletionV2(out, true)
			case "zsh":
				return root.GenZshCompletion(out)
			case "fish":
				return root.GenFishCompletion(out, true)
			case "powershell":
				return root.GenPowerShellCompletionWithDesc(out)
			default:
				return fmt.Errorf("unsupported shell %q", args[0])
			}
		},
	}
}
