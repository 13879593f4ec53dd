// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import "strconv"

// Outcome is the result of running a [Core]. It is either [Completed] or
// [Terminated], both carrying the exit code for the process.
//
// The zero value is Completed(0).
type Outcome struct {
	code       int
	terminated bool
}

// Completed returns the [Outcome] of a core that ran to its regular end.
func Completed(code int) Outcome {
	return Outcome{code: code}
}

// Terminated returns the [Outcome] of a core that ended on a fatal error and
// requests to skip any further cleanup.
func Terminated(code int) Outcome {
	return Outcome{code: code, terminated: true}
}

// ExitCode returns the process exit code.
func (o Outcome) ExitCode() int {
	return o.code
}

// IsTerminated returns true if the outcome was created by [Terminated].
func (o Outcome) IsTerminated() bool {
	return o.terminated
}

func (o Outcome) String() string {
	kind := "completed"
	if o.terminated {
		kind = "terminated"
	}

	return kind + "(" + strconv.Itoa(o.code) + ")"
}
