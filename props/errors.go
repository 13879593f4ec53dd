// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package props

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyValue is reported if a [Source] returned an empty value
	// without an error.
	ErrEmptyValue = errors.New("empty value")

	// ErrSourcePanic is reported if a [Source] panicked.
	ErrSourcePanic = errors.New("source panicked")

	// ErrUnknownProperty is returned for property names that are not part
	// of the schema.
	ErrUnknownProperty = errors.New("unknown property")

	// ErrMissingProperty is returned if a property of the schema is absent.
	ErrMissingProperty = errors.New("missing property")
)

// CaptureError is reported for a single property that could not be
// captured.
type CaptureError struct {
	Key Key
	Err error
}

// Error implements the [error] interface.
func (e *CaptureError) Error() string {
	return fmt.Sprintf("capture %s: %v", e.Key, e.Err)
}

// Is implements the [errors.Is] interface.
func (*CaptureError) Is(other error) bool {
	_, ok := other.(*CaptureError)
	return ok
}

// Unwrap implements the [errors.Unwrap] interface.
func (e *CaptureError) Unwrap() error {
	return e.Err
}
