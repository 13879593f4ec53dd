// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonotonicReader(t *testing.T) {
	type reading struct {
		ns  int64
		err error
	}

	readings := []reading{
		{ns: 100},
		{err: assert.AnError},
		{ns: 150},
		{ns: 120},
		{err: assert.AnError},
		{ns: 200},
	}

	idx := 0
	read := monotonicReader(func() (int64, error) {
		r := readings[idx]
		idx++

		return r.ns, r.err
	})

	var actual []int64
	for range readings {
		actual = append(actual, read())
	}

	assert.Equal(t, []int64{100, 100, 150, 150, 150, 200}, actual)
}

func TestMonotonicReaderInitialError(t *testing.T) {
	read := monotonicReader(func() (int64, error) {
		return 0, assert.AnError
	})

	assert.Zero(t, read())
}
