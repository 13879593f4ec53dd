// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package props

import (
	"os/user"
	"strconv"

	"golang.org/x/sys/unix"
)

// currentUser looks up the user by the real user ID of the process.
func currentUser() (*user.User, error) {
	//nolint:wrapcheck
	return user.LookupId(strconv.Itoa(unix.Getuid()))
}
