// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim

// Provider is the uniform call surface of the operating system primitives.
type Provider interface {
	// MonotonicTime returns nanoseconds elapsed since an arbitrary but fixed
	// point in time. It is only meaningful for measuring intervals and never
	// decreases within a process, regardless of wall clock adjustments.
	MonotonicTime() int64

	// WallClockMillis returns milliseconds since the Unix epoch. It may jump
	// if the system clock is adjusted.
	WallClockMillis() int64

	// ExecutablePath returns the absolute path of the running binary or an
	// empty string if it cannot be determined.
	ExecutablePath() string

	// Environment returns the process environment snapshot.
	Environment() *Environment

	// Terminate ends the process immediately with the given exit code. It
	// never returns. Deferred functions and other pending cleanup do not
	// run.
	Terminate(code int)
}

var _ Provider = (*Host)(nil)

// Host is the [Provider] for the operating system the process runs on.
//
// The zero value is usable. It does not fall back to argv[0] when resolving
// the executable path, though. Use [NewHost] for that.
type Host struct {
	resolvers []ExecutableResolver
}

// NewHost returns a [Host] that resolves the executable path with the
// default resolvers for the current platform and the given argv[0] as last
// resort.
func NewHost(argv0 string) *Host {
	return &Host{
		resolvers: DefaultExecutableResolvers(argv0),
	}
}

// MonotonicTime implements [Provider].
func (*Host) MonotonicTime() int64 {
	return monotonicClock()()
}

// WallClockMillis implements [Provider].
func (*Host) WallClockMillis() int64 {
	return wallClockMillis()
}

// ExecutablePath implements [Provider].
func (h *Host) ExecutablePath() string {
	resolvers := h.resolvers
	if resolvers == nil {
		resolvers = DefaultExecutableResolvers("")
	}

	path, err := ResolveExecutable(resolvers...)
	if err != nil {
		return ""
	}

	return path
}

// Environment implements [Provider]. It returns the snapshot taken on first
// use within the process.
func (*Host) Environment() *Environment {
	return ProcessEnvironment()
}

// Terminate implements [Provider].
func (*Host) Terminate(code int) {
	exit(code)
}
