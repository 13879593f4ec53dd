// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cmd provides the CLI command entry point for vmboot. It handles
// configuration, logging and turning the outcome of the runtime core into
// the process exit code.
//
// The command line of the process belongs to the runtime core. vmboot's own
// flags are read from the VMBOOT_ARGS environment variable instead.
package cmd
