// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"fmt"
)

// ErrFormat is returned when a schema document is structurally invalid.
var ErrFormat = errors.New("invalid mapping schema")

// FormatError reports a structurally invalid schema document: undecodable
// input, a missing objects section, or a node without a name.
type FormatError struct {
	// Reason describes what is wrong with the document.
	Reason string
}

// Error implements the error interface for FormatError.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFormat, e.Reason)
}

// Unwrap returns the sentinel this error wraps.
func (*FormatError) Unwrap() error {
	return ErrFormat
}
