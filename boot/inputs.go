// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import (
	"log/slog"
	"slices"
	"sync"

	"github.com/aibor/vmboot/osprim"
	"github.com/aibor/vmboot/props"
	"github.com/google/uuid"
)

// CleanupFunc is a native cleanup function registered with
// [Inputs.Cleanup].
type CleanupFunc func() error

// Inputs is everything the [Core] gets handed from the [Bootstrapper].
type Inputs struct {
	// ID identifies this bootstrap run. It is [uuid.Nil] if no random ID
	// could be generated.
	ID uuid.UUID

	// Args is the raw argument vector as passed to the process. It may be
	// empty.
	Args []string

	// ExecutablePath is the absolute path of the running executable. It is
	// empty if it could not be determined.
	ExecutablePath string

	// Properties is the native property record.
	Properties props.Record

	// Env is the process environment snapshot.
	Env *osprim.Environment

	// OS provides the operating system primitives for the whole lifetime of
	// the core.
	OS osprim.Provider

	// StartTime is the monotonic time the bootstrap sequence began at.
	StartTime int64

	mu         sync.Mutex
	cleanupFns []CleanupFunc
}

// Cleanup registers a function that is run after the core completed. The
// functions are run in reverse order of registration. They are not run if
// the core terminated.
func (in *Inputs) Cleanup(fn CleanupFunc) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.cleanupFns = append(in.cleanupFns, fn)
}

func (in *Inputs) doCleanup(logger *slog.Logger) {
	in.mu.Lock()
	fns := slices.Clone(in.cleanupFns)
	in.cleanupFns = nil
	in.mu.Unlock()

	slices.Reverse(fns)

	for _, fn := range fns {
		if err := fn(); err != nil {
			logger.Error("Cleanup failed", slog.Any("error", err))
		}
	}
}
