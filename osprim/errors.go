// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim

import "errors"

var (
	// ErrExecutableUnknown is returned if no resolver was able to determine
	// the path of the running executable.
	ErrExecutableUnknown = errors.New("executable path unknown")

	// ErrEmptyPath is returned by resolvers that produced an empty path.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrNotRegularFile is returned if a resolved path does not point to a
	// regular file.
	ErrNotRegularFile = errors.New("not a regular file")

	// ErrResolverPanic is returned if an [ExecutableResolver] panicked.
	ErrResolverPanic = errors.New("resolver panicked")
)
