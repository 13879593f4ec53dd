// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim

import (
	"sync"
	"sync/atomic"
	"time"
)

// Reference point for the fallback monotonic clock. The value carries Go's
// monotonic clock reading, so [time.Since] is not affected by wall clock
// adjustments.
var processStart = time.Now()

func runtimeMonotonicTime() int64 {
	return int64(time.Since(processStart))
}

// monotonicClock returns the clock source for monotonic time. The source is
// chosen once per process, so values of subsequent calls are always based on
// the same reference point.
var monotonicClock = sync.OnceValue(func() func() int64 {
	if _, err := systemMonotonicTime(); err != nil {
		return runtimeMonotonicTime
	}

	return monotonicReader(systemMonotonicTime)
})

// monotonicReader wraps read so that a failing read returns the last value
// read successfully.
func monotonicReader(read func() (int64, error)) func() int64 {
	var last atomic.Int64

	return func() int64 {
		ns, err := read()
		if err != nil {
			return last.Load()
		}

		for {
			prev := last.Load()
			if ns <= prev {
				return prev
			}

			if last.CompareAndSwap(prev, ns) {
				return ns
			}
		}
	}
}

func wallClockMillis() int64 {
	ms, err := systemWallClockMillis()
	if err != nil {
		return time.Now().UnixMilli()
	}

	return ms
}
