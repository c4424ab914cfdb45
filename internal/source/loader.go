// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package source validates invocation paths and loads the bounded source text
// that is sent to the model.
package source

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DefaultCharLimit bounds the request size. Anything past it is dropped.
const DefaultCharLimit = 10000

// Text is the decoded prefix of a source file.
type Text struct {
	Content string
	// Chars is the number of characters (code points) in Content.
	Chars int
	// Truncated is set when the file held more than the limit.
	Truncated bool
}

// Load reads at most limit characters of the UTF-8 file at path. Line endings
// are normalised to "\n" before counting, so "\r\n" counts as one character.
// Invalid UTF-8 inside the consumed region is reported as an error.
func Load(path string, limit int) (Text, error) {
	f, err := os.Open(path)
	if err != nil {
		return Text{}, err
	}
	defer f.Close()

	return read(transform.NewReader(f, encoding.UTF8Validator), limit)
}

func read(r io.Reader, limit int) (Text, error) {
	br := bufio.NewReader(r)
	var sb strings.Builder
	n := 0
	for n < limit {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			return Text{Content: sb.String(), Chars: n}, nil
		}
		if err != nil {
			return Text{}, fmt.Errorf("failed to decode as UTF-8: %w", err)
		}
		if c == '\r' {
			next, _, err := br.ReadRune()
			switch {
			case err == nil && next != '\n':
				_ = br.UnreadRune()
			case err != nil && err != io.EOF:
				return Text{}, fmt.Errorf("failed to decode as UTF-8: %w", err)
			}
			c = '\n'
		}
		sb.WriteRune(c)
		n++
	}

	_, err := br.Peek(1)
	return Text{Content: sb.String(), Chars: n, Truncated: err != io.EOF}, nil
}
