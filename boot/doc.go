// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package boot provides the entry point that runs before the managed runtime
// core.
//
// A [Bootstrapper] gathers the facts the core needs in a fixed order: the
// absolute path of the running executable and the native property record.
// It then hands control to the [Core] together with the raw arguments and the
// [osprim.Provider] the core may use for its whole lifetime.
//
// The core either returns an [Outcome] or ends the process directly with
// [osprim.Provider.Terminate]. Both paths are valid. Cleanup functions the
// core registered with [Inputs.Cleanup] only run if the core returned a
// [Completed] outcome.
//
// The bootstrap sequence is synchronous and starts no goroutines. Each
// [Bootstrapper] runs a core at most once.
package boot
