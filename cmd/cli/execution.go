// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package cli

import (
	"autodoc/internal/config"
	"autodoc/internal/docgen"
	"autodoc/internal/llm"
	"autodoc/internal/logger"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/mattn/go-isatty"
)

const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

// exitError marks a failure that has already been reported to the user.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

// newCompletionClient builds the provider client from the resolved configuration.
var newCompletionClient = func(cfg config.Config) (llm.CompletionClient, error) {
	return llm.New(cfg.Provider, llm.Options{APIKey: cfg.APIKey})
}

// Execute runs the CLI with args and returns the process exit status.
// Pipeline failures are reported on stdout; argument errors print the usage
// on stderr.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd(stdout, stderr)
	rootCmd.SetArgs(args)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return exitOK
	}

	var reported *exitError
	if errors.As(err, &reported) {
		return reported.code
	}

	errorColor.Fprintf(stderr, "Error: %v\n", err)
	fmt.Fprint(stderr, cmd.UsageString())
	return exitUsage
}

// runDocument resolves the configuration and runs the documentation pipeline once.
func runDocument(ctx context.Context, opts *rootOptions, explicitEnv bool, args []string, stdout, stderr io.Writer) error {
	if err := config.LoadEnvFile(opts.envFile, explicitEnv); err != nil {
		errorColor.Fprintf(stdout, "Error: %v\n", err)
		return &exitError{code: exitFailure, err: err}
	}

	cfg, err := config.Load(opts.provider, opts.model)
	if err != nil {
		errorColor.Fprintf(stdout, "Error: %v\n", err)
		return &exitError{code: exitFailure, err: err}
	}

	client, err := newCompletionClient(cfg)
	if err != nil {
		errorColor.Fprintf(stdout, "Error: %v\n", err)
		return &exitError{code: exitFailure, err: err}
	}

	inv := docgen.Invocation{InputPath: args[0], OutputPath: args[1]}
	if len(args) > 2 {
		inv.Hints = args[2]
	}

	gen := docgen.NewGenerator(withSpinner(client, stderr, cfg.Model), docgen.Settings{
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		CharLimit: cfg.CharLimit,
	})
	res, err := gen.Run(ctx, inv)
	if err != nil {
		reportFailure(stdout, cfg.Provider, err)
		return &exitError{code: exitFailure, err: err}
	}

	successColor.Fprintf(stdout, "Documentation successfully generated at %s\n", identifierColor.Sprint(res.OutputPath))
	return nil
}

// reportFailure prints the message matching the failed stage.
func reportFailure(w io.Writer, provider llm.Provider, err error) {
	var pipeErr *docgen.Error
	if !errors.As(err, &pipeErr) {
		errorColor.Fprintf(w, "Error: %v\n", err)
		return
	}
	logger.Debug("Run failed.", "kind", pipeErr.Kind.String(), "stage", string(pipeErr.Stage), "error", pipeErr.Err)

	switch pipeErr.Stage {
	case docgen.StageValidate:
		errorColor.Fprintf(w, "Error: %v.\n", pipeErr.Err)
	case docgen.StageRead:
		errorColor.Fprintf(w, "Error reading input file: %v\n", pipeErr.Err)
	case docgen.StageComplete:
		errorColor.Fprintf(w, "%s API error: %v\n", provider.DisplayName(), pipeErr.Err)
	case docgen.StageWrite:
		errorColor.Fprintf(w, "Error saving output file: %v\n", pipeErr.Err)
	default:
		errorColor.Fprintf(w, "Error: %v\n", pipeErr)
	}
}

// spinnerClient shows a spinner while the wrapped client blocks.
type spinnerClient struct {
	inner llm.CompletionClient
	spin  *spinner.Spinner
}

func (c *spinnerClient) Complete(ctx context.Context, req llm.Request) (string, error) {
	c.spin.Start()
	defer c.spin.Stop()
	return c.inner.Complete(ctx, req)
}

// withSpinner decorates client with a progress spinner when stderr is a terminal.
func withSpinner(client llm.CompletionClient, stderr io.Writer, model string) llm.CompletionClient {
	f, ok := stderr.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return client
	}

	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f))
	_ = s.Color("cyan")
	s.Suffix = fmt.Sprintf(" Generating documentation with %s...", model)
	return &spinnerClient{inner: client, spin: s}
}
