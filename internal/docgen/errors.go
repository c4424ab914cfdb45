// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package docgen

import (
	"errors"
	"fmt"
)

// Kind classifies a pipeline failure. Every kind is terminal for the run.
type Kind int

const (
	// KindValidation is returned when the invocation arguments are rejected
	// before any file or network access.
	KindValidation Kind = iota + 1
	// KindIO covers reading the source file and writing the documented output.
	KindIO
	// KindAPI covers any failure of the completion call.
	KindAPI
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindIO:
		return "io"
	case KindAPI:
		return "api"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Stage names the pipeline step that produced an Error.
type Stage string

const (
	StageValidate Stage = "validate"
	StageRead     Stage = "read"
	StageComplete Stage = "complete"
	StageWrite    Stage = "write"
)

// Error is the single error type returned by Generator.Run.
type Error struct {
	Kind  Kind
	Stage Stage
	Path  string
	Err   error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err is (or wraps) a pipeline Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
