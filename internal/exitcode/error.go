// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode

import (
	"errors"
	"strconv"
)

// Error carries the exit code the launcher ends with as error. The cause was
// reported already where the error was created, so callers must not report
// it again.
type Error int

func (e Error) Error() string {
	return "exit code " + strconv.Itoa(int(e))
}

// Is matches any [Error], regardless of the code.
func (Error) Is(target error) bool {
	_, ok := target.(Error)
	return ok
}

// From maps err to an exit code. It returns true if err carries an [Error].
//
// A nil err maps to [Success], an [Error] to its own value and any other
// error to [Launcher].
func From(err error) (int, bool) {
	var exitErr Error

	switch {
	case err == nil:
		return Success, false
	case errors.As(err, &exitErr):
		return int(exitErr), true
	default:
		return Launcher, false
	}
}
