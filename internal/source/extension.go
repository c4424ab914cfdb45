// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package source

import (
	"fmt"
	"path/filepath"
	"strings"
)

// MismatchError is returned by ValidateExtensions when the input and output
// paths do not share a suffix.
type MismatchError struct {
	Input  string
	Output string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("input and output file extensions must match (%q vs %q)", e.Input, e.Output)
}

// Suffix returns the extension of the final path element, including the dot.
// Names without a dot, dotfiles such as ".bashrc" and names ending in a dot
// have no suffix.
func Suffix(path string) string {
	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	i := strings.LastIndex(name, ".")
	if i <= 0 || i == len(name)-1 {
		return ""
	}
	return name[i:]
}

// ValidateExtensions checks that both paths carry the same suffix. It never
// touches the filesystem.
func ValidateExtensions(inputPath, outputPath string) error {
	in, out := Suffix(inputPath), Suffix(outputPath)
	if in != out {
		return &MismatchError{Input: in, Output: out}
	}
	return nil
}
