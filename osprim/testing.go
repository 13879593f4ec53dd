// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim

import (
	"runtime"
	"sync"
)

var _ Provider = (*Synthetic)(nil)

// Synthetic is a [Provider] with fixed values. It does not touch the
// operating system and can be used as substitute in tests.
type Synthetic struct {
	// MonotonicStart is returned by the first call of MonotonicTime.
	MonotonicStart int64

	// MonotonicStep is added for every further call of MonotonicTime.
	MonotonicStep int64

	// WallClock is returned by WallClockMillis.
	WallClock int64

	// Executable is returned by ExecutablePath.
	Executable string

	// Env is returned by Environment.
	Env *Environment

	mu        sync.Mutex
	ticks     int64
	exitCodes []int
}

// MonotonicTime implements [Provider].
func (s *Synthetic) MonotonicTime() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.MonotonicStart + s.ticks*s.MonotonicStep
	s.ticks++

	return now
}

// WallClockMillis implements [Provider].
func (s *Synthetic) WallClockMillis() int64 {
	return s.WallClock
}

// ExecutablePath implements [Provider].
func (s *Synthetic) ExecutablePath() string {
	return s.Executable
}

// Environment implements [Provider].
func (s *Synthetic) Environment() *Environment {
	return s.Env
}

// Terminate implements [Provider]. It records the exit code and ends the
// calling goroutine by [runtime.Goexit], so it never returns either. Use
// [Synthetic.Run] to call code that might terminate.
func (s *Synthetic) Terminate(code int) {
	s.mu.Lock()
	s.exitCodes = append(s.exitCodes, code)
	s.mu.Unlock()

	runtime.Goexit()
}

// ExitCodes returns the exit codes of all Terminate calls so far.
func (s *Synthetic) ExitCodes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]int(nil), s.exitCodes...)
}

// Run calls fn on a new goroutine and waits for it to end. It returns the
// exit code and true if fn ended by calling Terminate. Panics of fn are
// propagated to the caller.
func (s *Synthetic) Run(fn func()) (int, bool) {
	type result struct {
		returned bool
		panicked any
	}

	done := make(chan result, 1)
	before := len(s.ExitCodes())

	go func() {
		var res result

		defer func() {
			// recover returns nil if the goroutine ends by runtime.Goexit.
			res.panicked = recover()
			done <- res
		}()

		fn()

		res.returned = true
	}()

	res := <-done
	if res.panicked != nil {
		panic(res.panicked)
	}

	if res.returned {
		return 0, false
	}

	codes := s.ExitCodes()
	if len(codes) == before {
		// Ended by runtime.Goexit without Terminate, e.g. by t.FailNow.
		return 0, true
	}

	return codes[len(codes)-1], true
}
