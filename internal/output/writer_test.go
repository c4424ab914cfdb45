// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")

	if err := Write(path, "# doc\nprint(1)"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "# doc\nprint(1)" {
		t.Errorf("file content = %q", got)
	}
}

func TestWriteOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.py")
	if err := os.WriteFile(path, []byte("a much longer previous content"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Write(path, "short"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "short" {
		t.Errorf("file content = %q, want previous content replaced", got)
	}
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "a.py")
	if err := Write(path, "x"); err == nil {
		t.Error("expected error writing into a missing directory")
	}
}
