// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package condition

import (
	"errors"
	"fmt"
)

// Sentinel errors for condition construction and evaluation.
var (
	// ErrCondition is returned for malformed predicate payloads and
	// references to undefined condition names.
	ErrCondition = errors.New("invalid condition")

	// ErrUnknownClass is returned when a definition names a predicate
	// class with no registered kind. It signals a missing plugin rather
	// than a malformed definition, so it is distinct from ErrCondition.
	ErrUnknownClass = errors.New("unknown condition class")
)

// ConditionError reports a malformed predicate payload or a reference to a
// condition name that was never defined.
type ConditionError struct {
	// Name is the condition name involved, when known.
	Name string
	// Reason describes the problem.
	Reason string
}

// Error implements the error interface for ConditionError.
func (e *ConditionError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %s", ErrCondition, e.Reason)
	}
	return fmt.Sprintf("%s %q: %s", ErrCondition, e.Name, e.Reason)
}

// Unwrap returns the sentinel this error wraps.
func (*ConditionError) Unwrap() error {
	return ErrCondition
}

// UnknownClassError reports a condition class with no registered kind.
type UnknownClassError struct {
	// Class is the unresolved class name.
	Class string
}

// Error implements the error interface for UnknownClassError.
func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownClass, e.Class)
}

// Unwrap returns the sentinel this error wraps.
func (*UnknownClassError) Unwrap() error {
	return ErrUnknownClass
}
