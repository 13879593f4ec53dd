// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package osprim provides the few operating system primitives a managed
// runtime core needs before and during its lifetime: a monotonic clock, the
// wall clock, the process environment snapshot, the path of the running
// executable and immediate process termination.
//
// All operations are available through the [Provider] interface. [Host]
// implements it for the real operating system, [Synthetic] is a fixed
// stand-in for tests of code that consumes a [Provider].
//
// Every [Provider] operation may be called before any other goroutine
// exists, repeatedly and concurrently. None of them blocks on I/O.
package osprim
