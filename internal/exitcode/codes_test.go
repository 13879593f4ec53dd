// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode_test

import (
	"syscall"
	"testing"

	"github.com/aibor/vmboot/internal/exitcode"
	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	tests := []struct {
		code   int
		assert assert.BoolAssertionFunc
	}{
		{-1, assert.False},
		{0, assert.True},
		{42, assert.True},
		{255, assert.True},
		{256, assert.False},
	}

	for _, tt := range tests {
		tt.assert(t, exitcode.InRange(tt.code), "code %d", tt.code)
	}
}

func TestFromSignal(t *testing.T) {
	assert.Equal(t, 137, exitcode.FromSignal(syscall.Signal(9)))
	assert.Equal(t, 143, exitcode.FromSignal(syscall.Signal(15)))
}
