// SPDX-FileCopyrightText: Copyright 2026 Anmol Parande
// SPDX-License-Identifier: Apache-2.0

package mapper

import (
	"errors"
	"fmt"
)

// ErrTransform is returned when a schema node references a transform the
// registry cannot supply.
var ErrTransform = errors.New("unusable transform")

// TransformError reports a transform reference that is missing from the
// registry or registered as nil. Errors returned by a transform itself are
// not wrapped; they propagate as-is.
type TransformError struct {
	// Name is the referenced transform name.
	Name string
	// Reason describes why the transform is unusable.
	Reason string
}

// Error implements the error interface for TransformError.
func (e *TransformError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrTransform, e.Name, e.Reason)
}

// Unwrap returns the sentinel this error wraps.
func (*TransformError) Unwrap() error {
	return ErrTransform
}
