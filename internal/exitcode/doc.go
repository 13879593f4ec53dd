// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package exitcode provides process exit code conventions of vmboot and
// helpers for deriving exit codes from errors.
package exitcode
