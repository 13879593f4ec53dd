// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import "errors"

var (
	// ErrAlreadyStarted is returned if a [Bootstrapper] is run more than
	// once.
	ErrAlreadyStarted = errors.New("bootstrapper already started")

	// ErrNilCore is returned if no [Core] is given.
	ErrNilCore = errors.New("core is nil")

	// ErrCorePanic is logged if the core panicked.
	ErrCorePanic = errors.New("core panicked")
)
