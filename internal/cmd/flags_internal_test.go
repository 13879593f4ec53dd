// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagsParseArgs(t *testing.T) {
	tests := []struct {
		name           string
		args           []string
		expected       flags
		assertErr      require.ErrorAssertionFunc
		expectedOutput string
	}{
		{
			name:      "empty",
			assertErr: require.NoError,
		},
		{
			name: "all",
			args: []string{
				"-config", "/etc/vmboot.toml",
				"-core=/opt/vm/lib/core",
				"-exe", "/opt/vm/bin/vm",
				"-debug",
			},
			expected: flags{
				configPath:     "/etc/vmboot.toml",
				corePath:       "/opt/vm/lib/core",
				executableHint: "/opt/vm/bin/vm",
				debug:          true,
			},
			assertErr: require.NoError,
		},
		{
			name: "positional",
			args: []string{"-debug", "Main"},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, &ParseArgsError{})
				require.NotErrorIs(t, err, ErrHelp)
			},
			expectedOutput: "unexpected arguments",
		},
		{
			name: "unknown flag",
			args: []string{"-kernel", "/boot/vmlinuz"},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, &ParseArgsError{})
			},
			expectedOutput: "flag provided but not defined",
		},
		{
			name: "help",
			args: []string{"-help"},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrHelp)
			},
			expectedOutput: "VMBOOT_ARGS",
		},
		{
			name: "version",
			args: []string{"-version"},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, ErrHelp)
			},
			expectedOutput: "vmboot: dev",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var output bytes.Buffer

			actual := newFlags(&output)

			err := actual.ParseArgs(tt.args)
			tt.assertErr(t, err)

			assert.Contains(t, output.String(), tt.expectedOutput)

			if err == nil {
				assert.Equal(t, tt.expected.configPath, actual.configPath)
				assert.Equal(t, tt.expected.corePath, actual.corePath)
				assert.Equal(t, tt.expected.executableHint, actual.executableHint)
				assert.Equal(t, tt.expected.debug, actual.debug)
			}
		})
	}
}

func TestFlagsApply(t *testing.T) {
	fromFile := Config{
		ExecutableHint: "/from/file",
		Debug:          true,
		Core: CoreConfig{
			Path: "/core/from/file",
			Args: []string{"-server"},
		},
	}

	tests := []struct {
		name     string
		args     []string
		expected Config
	}{
		{
			name:     "no flags",
			expected: fromFile,
		},
		{
			name: "explicit flags",
			args: []string{"-debug=false", "-core", "/core/from/flag"},
			expected: Config{
				ExecutableHint: "/from/file",
				Debug:          false,
				Core: CoreConfig{
					Path: "/core/from/flag",
					Args: []string{"-server"},
				},
			},
		},
		{
			name: "exe",
			args: []string{"-exe", "/from/flag"},
			expected: Config{
				ExecutableHint: "/from/flag",
				Debug:          true,
				Core:           fromFile.Core,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newFlags(&bytes.Buffer{})
			require.NoError(t, flags.ParseArgs(tt.args))

			actual := fromFile
			flags.apply(&actual)

			assert.Equal(t, tt.expected, actual)
		})
	}
}
