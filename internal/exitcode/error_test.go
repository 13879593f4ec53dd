// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package exitcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aibor/vmboot/internal/exitcode"
	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	err := fmt.Errorf("parse flags: %w", exitcode.Error(exitcode.Launcher))

	assert.EqualError(t, exitcode.Error(exitcode.NotFound), "exit code 127")
	assert.ErrorIs(t, err, exitcode.Error(0), "any code should match")
	assert.NotErrorIs(t, assert.AnError, exitcode.Error(0))
}

func TestFrom(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expected       int
		assertReported assert.BoolAssertionFunc
	}{
		{
			name:           "nil",
			expected:       exitcode.Success,
			assertReported: assert.False,
		},
		{
			name:           "plain error",
			err:            assert.AnError,
			expected:       exitcode.Launcher,
			assertReported: assert.False,
		},
		{
			name:           "exit code",
			err:            exitcode.Error(exitcode.NotExecutable),
			expected:       exitcode.NotExecutable,
			assertReported: assert.True,
		},
		{
			name: "joined with cause",
			err: errors.Join(
				assert.AnError,
				exitcode.Error(exitcode.FromSignal(15)),
			),
			expected:       143,
			assertReported: assert.True,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, reported := exitcode.From(tt.err)

			assert.Equal(t, tt.expected, actual)
			tt.assertReported(t, reported)
		})
	}
}
