// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !(linux || darwin || freebsd || netbsd || openbsd)

package osprim

import (
	"errors"
	"os"
)

func systemMonotonicTime() (int64, error) {
	return 0, errors.ErrUnsupported
}

func systemWallClockMillis() (int64, error) {
	return 0, errors.ErrUnsupported
}

func exit(code int) {
	os.Exit(code)
}
