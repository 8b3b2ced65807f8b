// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package pathexpr

import (
	"errors"
	"fmt"
)

// ErrWildcard is returned when a "*" segment is applied to a value that is
// not a sequence.
var ErrWildcard = errors.New("wildcard applied to non-sequence value")

// PathError reports a fatal failure while resolving a path expression.
// Absent values and out-of-range indices are not PathErrors; they resolve
// to nil.
type PathError struct {
	// Path is the full path expression being resolved.
	Path string
	// Segment is the segment at which resolution failed.
	Segment string

	value any
}

// Error implements the error interface for PathError.
func (e *PathError) Error() string {
	return fmt.Sprintf("path %q: segment %q applied to %T: %s", e.Path, e.Segment, e.value, ErrWildcard)
}

// Unwrap returns the sentinel this error wraps.
func (*PathError) Unwrap() error {
	return ErrWildcard
}
