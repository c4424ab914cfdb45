// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"autodoc/internal/config"
	"autodoc/internal/llm"
	"autodoc/internal/logger"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	errorColor      = color.New(color.FgRed)
	successColor    = color.New(color.FgGreen)
	identifierColor = color.New(color.FgBlue)
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersionInfo records the build metadata shown by --version.
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// rootOptions holds the flag values of one invocation.
type rootOptions struct {
	provider string
	model    string
	envFile  string
	verbose  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "autodoc <input_script> <output_script> [dicas]",
		Short: "Rewrite a source file with fresh documentation generated by an LLM",
		Long: `Sends the first 10,000 characters of <input_script> to a chat-completion model,
which rewrites the code with new comments and an introductory header. The result is
written to <output_script>, which must have the same extension as the input.

The optional [dicas] argument is free text that steers the generated documentation.
The API key is read from OPENAI_API_KEY (or ANTHROPIC_API_KEY with --provider anthropic),
optionally loaded from a .env file in the working directory.`,
		Example: `  autodoc main.py main.py
  autodoc server.go docs/server.go "HTTP handlers for the billing API"
  autodoc --provider anthropic lib.rs lib.rs`,
		Version:           fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		Args:              cobra.RangeArgs(2, 3),
		ValidArgsFunction: scriptCompletionFunc,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLogger(stderr, opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			explicitEnv := cmd.Flags().Changed("env-file")
			return runDocument(cmd.Context(), opts, explicitEnv, args, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := rootCmd.Flags()
	flags.StringVar(&opts.provider, "provider", string(llm.ProviderOpenAI), "completion provider (openai, anthropic)")
	flags.StringVar(&opts.model, "model", "", fmt.Sprintf("model identifier (default: $%s or the provider default)", config.ModelEnv))
	flags.StringVar(&opts.envFile, "env-file", config.DefaultEnvFile, "dotenv file with API credentials")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "emit debug logs on stderr")
	_ = rootCmd.RegisterFlagCompletionFunc("provider", providerCompletionFunc)

	rootCmd.AddCommand(newCompletionCmd())
	return rootCmd
}

// RunCLI executes the command line of the current process and exits with its status.
func RunCLI() {
	os.Exit(Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
