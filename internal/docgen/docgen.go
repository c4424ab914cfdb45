// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package docgen runs the documentation pipeline: validate the invocation,
// load the source, ask the model for a documented rewrite and write it out.
// Stages run strictly in order and the first failure ends the run.
package docgen

import (
	"autodoc/internal/llm"
	"autodoc/internal/logger"
	"autodoc/internal/output"
	"autodoc/internal/prompt"
	"autodoc/internal/source"
	"context"
)

// Invocation is what the user asked for on the command line.
type Invocation struct {
	InputPath  string
	OutputPath string
	Hints      string
}

// Settings are the fixed request parameters of a run.
type Settings struct {
	Model     string
	MaxTokens int
	CharLimit int
}

// Result describes a successful run.
type Result struct {
	OutputPath string
	// SourceChars is the number of characters sent to the model.
	SourceChars int
	Truncated   bool
	// Written is the sanitized text that was saved.
	Written string
}

// Generator owns the completion client used by every run.
type Generator struct {
	client   llm.CompletionClient
	settings Settings
}

// NewGenerator returns a Generator. A zero CharLimit falls back to
// source.DefaultCharLimit.
func NewGenerator(client llm.CompletionClient, settings Settings) *Generator {
	if settings.CharLimit <= 0 {
		settings.CharLimit = source.DefaultCharLimit
	}
	return &Generator{client: client, settings: settings}
}

// Run executes the pipeline once. Every failure is returned as an *Error.
func (g *Generator) Run(ctx context.Context, inv Invocation) (Result, error) {
	if err := source.ValidateExtensions(inv.InputPath, inv.OutputPath); err != nil {
		return Result{}, &Error{Kind: KindValidation, Stage: StageValidate, Err: err}
	}

	text, err := source.Load(inv.InputPath, g.settings.CharLimit)
	if err != nil {
		return Result{}, &Error{Kind: KindIO, Stage: StageRead, Path: inv.InputPath, Err: err}
	}
	logger.Debug("Source loaded.", "path", inv.InputPath, "chars", text.Chars, "truncated", text.Truncated)
	if text.Truncated {
		logger.Warnf("Input %s exceeds %d characters; the remainder is not sent.", inv.InputPath, g.settings.CharLimit)
	}

	p := prompt.Build(text.Content, inv.Hints)
	logger.Debug("Requesting completion.", "model", g.settings.Model, "max_tokens", g.settings.MaxTokens, "hints", inv.Hints != "")
	response, err := g.client.Complete(ctx, llm.Request{
		System:    p.System,
		User:      p.User,
		Model:     g.settings.Model,
		MaxTokens: g.settings.MaxTokens,
	})
	if err != nil {
		return Result{}, &Error{Kind: KindAPI, Stage: StageComplete, Err: err}
	}

	documented := output.StripFence(response)
	if err := output.Write(inv.OutputPath, documented); err != nil {
		return Result{}, &Error{Kind: KindIO, Stage: StageWrite, Path: inv.OutputPath, Err: err}
	}
	logger.Info("Documentation written.", "path", inv.OutputPath, "bytes", len(documented))

	return Result{
		OutputPath:  inv.OutputPath,
		SourceChars: text.Chars,
		Truncated:   text.Truncated,
		Written:     documented,
	}, nil
}
