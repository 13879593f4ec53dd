// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package execcore

import "os"

// interrupt kills the process, as there is no way to ask it to exit.
func interrupt(process *os.Process) error {
	return process.Kill()
}
