// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package execcore

import (
	"os"

	"golang.org/x/sys/unix"
)

// interrupt asks the process to exit.
func interrupt(process *os.Process) error {
	return process.Signal(unix.SIGTERM)
}
