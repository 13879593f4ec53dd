// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package props

import "os/user"

func currentUser() (*user.User, error) {
	return user.Current() //nolint:wrapcheck
}
