// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package execcore provides a [boot.Core] that runs the managed runtime as
// a child process.
package execcore
