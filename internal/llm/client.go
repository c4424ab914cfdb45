// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package llm wraps the chat-completion providers behind CompletionClient.
package llm

import (
	"context"
	"fmt"
)

// Provider identifies a hosted completion service.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// Providers lists the supported providers in display order.
var Providers = []Provider{ProviderOpenAI, ProviderAnthropic}

// DisplayName is used as the prefix of API error messages.
func (p Provider) DisplayName() string {
	switch p {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	default:
		return string(p)
	}
}

// ParseProvider validates a provider name given on the command line.
func ParseProvider(name string) (Provider, error) {
	for _, p := range Providers {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("unsupported provider %q (want one of %v)", name, Providers)
}

// Request is a single two-message completion.
type Request struct {
	System    string
	User      string
	Model     string
	MaxTokens int
}

// CompletionClient sends one request and returns the text of the first choice.
// Implementations must not retry.
type CompletionClient interface {
	Complete(ctx context.Context, req Request) (string, error)
}

// Options configure a provider client. The zero BaseURL selects the
// provider's public endpoint.
type Options struct {
	APIKey  string
	BaseURL string
}

// New returns the client for provider.
func New(provider Provider, opts Options) (CompletionClient, error) {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAI(opts), nil
	case ProviderAnthropic:
		return NewAnthropic(opts), nil
	default:
		return nil, fmt.Errorf("unsupported provider %q", provider)
	}
}
