// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import "syscall"

// Exit codes used by vmboot itself. Runtime cores are free to use any code,
// but shells and init systems interpret 126 and above, so vmboot only uses
// these for the same meaning.
const (
	Success = 0

	// Panic is used if a runtime core panicked. Same as the Go runtime uses
	// for unrecovered panics.
	Panic = 2

	// Launcher is used if vmboot itself failed, like on invalid
	// configuration.
	Launcher = 125

	// NotExecutable is used if the runtime core binary is not executable.
	NotExecutable = 126

	// NotFound is used if the runtime core binary does not exist.
	NotFound = 127

	// signalBase is added to the signal number for processes that were
	// terminated by a signal.
	signalBase = 128
)

// Range of exit codes that are preserved by the operating system. Others are
// truncated to their lowest 8 bits on Unix.
const (
	Min = 0
	Max = 255
)

// InRange returns true if the given exit code is preserved as is by the
// operating system.
func InRange(code int) bool {
	return code >= Min && code <= Max
}

// FromSignal returns the exit code shells report for processes terminated
// by the given signal.
func FromSignal(sig syscall.Signal) int {
	return signalBase + int(sig)
}
