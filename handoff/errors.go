// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package handoff

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHandoff is returned by [FromEnv] if [EnvVar] is not set.
	ErrNoHandoff = errors.New("no handoff file")

	// ErrSchemaMismatch is returned if the property schema of a message
	// differs from the one of this build.
	ErrSchemaMismatch = errors.New("property schema mismatch")
)

// VersionError is returned if a message has a format version this build
// does not know.
type VersionError struct {
	Version uint
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported handoff version %d (supported: %d)",
		e.Version, Version)
}

func (*VersionError) Is(other error) bool {
	_, ok := other.(*VersionError)
	return ok
}
