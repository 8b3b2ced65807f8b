// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package cel

import (
	"errors"
	"fmt"

	"github.com/google/cel-go/cel"
)

// Sentinel errors for CEL operations.
var (
	// ErrCompile is returned when an expression fails parsing or checking.
	ErrCompile = errors.New("CEL expression compilation failed")

	// ErrEvaluation is returned when program evaluation fails.
	ErrEvaluation = errors.New("CEL expression evaluation failed")

	// ErrInvalidResult is returned when a program returns an unexpected type.
	ErrInvalidResult = errors.New("CEL expression returned invalid result type")
)

// Issue is one parse or check problem in an expression.
type Issue struct {
	Line int
	Col  int
	Msg  string
}

// CompileError reports syntax or type-check failures with location details.
type CompileError struct {
	// Source is the original expression text.
	Source string
	// Issues are the individual problems reported by the compiler.
	Issues []Issue

	original error
}

// Error implements the error interface for CompileError.
func (e *CompileError) Error() string {
	return fmt.Sprintf("CEL error in expression %q: %s", e.Source, e.original)
}

// Unwrap returns the underlying error.
func (e *CompileError) Unwrap() error {
	return e.original
}

// newCompileError creates a CompileError from compiler issues.
func newCompileError(source string, issues *cel.Issues) error {
	ce := &CompileError{
		Source:   source,
		Issues:   make([]Issue, 0, len(issues.Errors())),
		original: fmt.Errorf("%w: %w", ErrCompile, issues.Err()),
	}
	for _, err := range issues.Errors() {
		ce.Issues = append(ce.Issues, Issue{
			Line: err.Location.Line(),
			Col:  err.Location.Column(),
			Msg:  err.Message,
		})
	}
	return ce
}
