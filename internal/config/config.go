// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config resolves the runtime settings of a run from the environment
// and command-line overrides. Nothing is read from a configuration file.
package config

import (
	"autodoc/internal/llm"
	"autodoc/internal/source"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// DefaultEnvFile is loaded from the working directory when present.
	DefaultEnvFile = ".env"

	// DefaultMaxTokens caps the length of the generated answer.
	DefaultMaxTokens = 2000

	// ModelEnv overrides the provider's default model.
	ModelEnv = "AUTODOC_MODEL"
)

var defaultModels = map[llm.Provider]string{
	llm.ProviderOpenAI:    "gpt-3.5-turbo",
	llm.ProviderAnthropic: "claude-haiku-4-5",
}

var apiKeyEnv = map[llm.Provider]string{
	llm.ProviderOpenAI:    "OPENAI_API_KEY",
	llm.ProviderAnthropic: "ANTHROPIC_API_KEY",
}

// Config holds everything the pipeline needs, resolved once at startup.
type Config struct {
	// Provider selects the completion service
	Provider llm.Provider

	// APIKey authenticates against the provider. It may be empty; the
	// provider then rejects the request.
	APIKey string

	// Model is the provider specific model identifier
	Model string

	// MaxTokens caps the generated tokens per request
	MaxTokens int

	// CharLimit bounds how much of the input file is sent
	CharLimit int
}

// DefaultModel returns the model used for provider when nothing overrides it.
func DefaultModel(provider llm.Provider) string {
	return defaultModels[provider]
}

// APIKeyEnv returns the name of the variable holding provider's API key.
func APIKeyEnv(provider llm.Provider) string {
	return apiKeyEnv[provider]
}

// Load resolves the configuration for providerName. A non-empty model wins
// over the ModelEnv variable, which wins over the provider default.
func Load(providerName, model string) (Config, error) {
	provider, err := llm.ParseProvider(providerName)
	if err != nil {
		return Config{}, err
	}

	if model == "" {
		model = os.Getenv(ModelEnv)
	}
	if model == "" {
		model = DefaultModel(provider)
	}

	return Config{
		Provider:  provider,
		APIKey:    os.Getenv(APIKeyEnv(provider)),
		Model:     model,
		MaxTokens: DefaultMaxTokens,
		CharLimit: source.DefaultCharLimit,
	}, nil
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment without overriding variables that are already set. A missing
// file is only an error when explicit is true.
func LoadEnvFile(path string, explicit bool) error {
	resolved, err := ResolvePath(path)
	if err != nil {
		return err
	}

	err = godotenv.Load(resolved)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to load env file %s: %w", resolved, err)
}

// ResolvePath expands a leading "~/" to the user's home directory.
func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
