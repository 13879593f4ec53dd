// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Auxiliary vector entry holding a pointer to the file name passed to
// execve(2). See getauxval(3).
const atExecFn = 31

var errNoExecFn = errors.New("no AT_EXECFN entry in auxiliary vector")

func platformExecutableResolvers() []ExecutableResolver {
	return []ExecutableResolver{auxvExecFn}
}

// auxvExecFn returns the file name the kernel recorded on execve(2). It does
// not depend on procfs, so it works in early boot environments where /proc
// is not mounted yet. The name might be relative to the working directory at
// process start.
func auxvExecFn() (string, error) {
	auxv, err := unix.Auxv()
	if err != nil {
		return "", fmt.Errorf("auxv: %w", err)
	}

	for _, entry := range auxv {
		if entry[0] != atExecFn || entry[1] == 0 {
			continue
		}

		//nolint:govet
		return unix.BytePtrToString((*byte)(unsafe.Pointer(entry[1]))), nil
	}

	return "", errNoExecFn
}
