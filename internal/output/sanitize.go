// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package output cleans up model responses and writes them to disk.
package output

import "strings"

// Fence is the Markdown code block delimiter.
const Fence = "```"

// StripFence trims the response and, when it opens with a fence, drops the
// first and the last line. The last line is removed whether or not it is a
// closing fence, and any language tag on the opening line goes with it.
func StripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, Fence) {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 2 {
		return ""
	}
	return strings.Join(lines[1:len(lines)-1], "\n")
}
