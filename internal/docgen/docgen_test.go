// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package docgen

import (
	"autodoc/internal/llm"
	"autodoc/internal/prompt"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mockClient records requests and replies with a canned response.
type mockClient struct {
	response string
	err      error
	requests []llm.Request
}

func (m *mockClient) Complete(_ context.Context, req llm.Request) (string, error) {
	m.requests = append(m.requests, req)
	return m.response, m.err
}

var testSettings = Settings{Model: "gpt-3.5-turbo", MaxTokens: 2000, CharLimit: 10000}

func writeInput(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "a.py", "print(1)")
	client := &mockClient{response: "```python\n# doc\nprint(1)\n```"}

	res, err := NewGenerator(client, testSettings).Run(context.Background(), Invocation{InputPath: in, OutputPath: in})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	got, _ := os.ReadFile(in)
	if string(got) != "# doc\nprint(1)" {
		t.Errorf("output file = %q", got)
	}

	want := Result{OutputPath: in, SourceChars: 8, Written: "# doc\nprint(1)"}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("Result mismatch (-want +got):\n%s", diff)
	}

	if len(client.requests) != 1 {
		t.Fatalf("client called %d times, want 1", len(client.requests))
	}
	req := client.requests[0]
	wantPrompt := prompt.Build("print(1)", "")
	if diff := cmp.Diff(llm.Request{System: wantPrompt.System, User: wantPrompt.User, Model: "gpt-3.5-turbo", MaxTokens: 2000}, req); diff != "" {
		t.Errorf("request mismatch (-want +got):\n%s", diff)
	}
}

func TestRunMismatchedExtensions(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "b.txt", "hello")
	out := filepath.Join(dir, "b.py")
	client := &mockClient{response: "unused"}

	_, err := NewGenerator(client, testSettings).Run(context.Background(), Invocation{InputPath: in, OutputPath: out})
	if !IsKind(err, KindValidation) {
		t.Fatalf("error = %v, want validation error", err)
	}
	if len(client.requests) != 0 {
		t.Error("client must not be called on validation failure")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output file must not be created")
	}
}

func TestRunValidatesBeforeReading(t *testing.T) {
	// The input does not exist; a mismatch must be reported instead of a read error.
	_, err := NewGenerator(&mockClient{}, testSettings).Run(context.Background(), Invocation{
		InputPath:  filepath.Join(t.TempDir(), "missing.c"),
		OutputPath: "out.h",
	})
	if !IsKind(err, KindValidation) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestRunReadError(t *testing.T) {
	dir := t.TempDir()
	client := &mockClient{}

	_, err := NewGenerator(client, testSettings).Run(context.Background(), Invocation{
		InputPath:  filepath.Join(dir, "missing.go"),
		OutputPath: filepath.Join(dir, "out.go"),
	})
	var pipeErr *Error
	if !errors.As(err, &pipeErr) || pipeErr.Kind != KindIO || pipeErr.Stage != StageRead {
		t.Fatalf("error = %v, want read error", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("cause should be preserved: %v", err)
	}
	if len(client.requests) != 0 {
		t.Error("client must not be called when the input cannot be read")
	}
}

func TestRunAPIError(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "c.go", "package c")
	out := filepath.Join(dir, "out.go")
	apiErr := errors.New("401 Unauthorized")

	_, err := NewGenerator(&mockClient{err: apiErr}, testSettings).Run(context.Background(), Invocation{InputPath: in, OutputPath: out})
	if !IsKind(err, KindAPI) || !errors.Is(err, apiErr) {
		t.Fatalf("error = %v, want wrapped API error", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Error("output file must not be created after an API failure")
	}
}

func TestRunWriteError(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "d.go", "package d")

	_, err := NewGenerator(&mockClient{response: "package d"}, testSettings).Run(context.Background(), Invocation{
		InputPath:  in,
		OutputPath: filepath.Join(dir, "no-such-dir", "d.go"),
	})
	var pipeErr *Error
	if !errors.As(err, &pipeErr) || pipeErr.Kind != KindIO || pipeErr.Stage != StageWrite {
		t.Fatalf("error = %v, want write error", err)
	}
}

func TestRunTruncatesLargeInput(t *testing.T) {
	dir := t.TempDir()
	head := strings.Repeat("a", 10000)
	in := writeInput(t, dir, "big.py", head+"TAIL-MARKER")
	client := &mockClient{response: "ok"}

	res, err := NewGenerator(client, testSettings).Run(context.Background(), Invocation{InputPath: in, OutputPath: filepath.Join(dir, "out.py")})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !res.Truncated || res.SourceChars != 10000 {
		t.Errorf("result = %+v, want truncated at 10000", res)
	}
	user := client.requests[0].User
	if !strings.HasSuffix(user, prompt.CodeLabel+head) {
		t.Error("prompt must end with exactly the first 10000 characters")
	}
	if strings.Contains(user, "TAIL-MARKER") {
		t.Error("content past the limit leaked into the prompt")
	}
}

func TestRunHintsReachPrompt(t *testing.T) {
	dir := t.TempDir()
	in := writeInput(t, dir, "e.js", "console.log(1)")
	client := &mockClient{response: "console.log(1)"}

	_, err := NewGenerator(client, testSettings).Run(context.Background(), Invocation{InputPath: in, OutputPath: in, Hints: "logging demo"})
	if err != nil {
		t.Fatal(err)
	}
	user := client.requests[0].User
	if !strings.Contains(user, prompt.HintsFraming+"logging demo") || strings.Contains(user, prompt.InferInstruction) {
		t.Errorf("hints not applied: %q", user)
	}
}

func TestNewGeneratorDefaultsCharLimit(t *testing.T) {
	g := NewGenerator(&mockClient{}, Settings{Model: "m"})
	if g.settings.CharLimit != 10000 {
		t.Errorf("CharLimit = %d, want default", g.settings.CharLimit)
	}
}
