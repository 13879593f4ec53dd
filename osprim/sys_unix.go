// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux || darwin || freebsd || netbsd || openbsd

package osprim

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

func systemMonotonicTime() (int64, error) {
	var ts unix.Timespec

	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, fmt.Errorf("clock_gettime: %w", err)
	}

	return ts.Nano(), nil
}

func systemWallClockMillis() (int64, error) {
	var tv unix.Timeval

	if err := unix.Gettimeofday(&tv); err != nil {
		return 0, fmt.Errorf("gettimeofday: %w", err)
	}

	return tv.Nano() / int64(time.Millisecond), nil
}

func exit(code int) {
	unix.Exit(code)
}
