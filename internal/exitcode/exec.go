// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"
	"io/fs"
	"os/exec"
	"syscall"
)

// FromExec returns the exit code for an error returned by [exec.Cmd.Run] or
// [exec.Cmd.Wait] and whether the process ended abnormally.
//
// A process that exited on its own ended normally, whatever its exit code.
// A process terminated by a signal, or that could not be started at all,
// ended abnormally. The exit code follows shell conventions in that case:
// [FromSignal] for signals, [NotFound] and [NotExecutable] for start
// failures, [Launcher] for anything else.
func FromExec(err error) (int, bool) {
	if err == nil || errors.Is(err, exec.ErrWaitDelay) {
		return Success, false
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status, ok := exitErr.Sys().(syscall.WaitStatus)
		if ok && status.Signaled() {
			return FromSignal(status.Signal()), true
		}

		return exitErr.ExitCode(), false
	}

	switch {
	case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return NotFound, true
	case errors.Is(err, fs.ErrPermission):
		return NotExecutable, true
	default:
		return Launcher, true
	}
}
