// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/aibor/vmboot/osprim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticResolver(path string, err error) osprim.ExecutableResolver {
	return func() (string, error) {
		return path, err
	}
}

func TestResolveExecutable(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)

	tests := []struct {
		name      string
		resolvers []osprim.ExecutableResolver
		expected  string
		assertErr require.ErrorAssertionFunc
	}{
		{
			name: "none",
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, osprim.ErrExecutableUnknown)
			},
		},
		{
			name: "first wins",
			resolvers: []osprim.ExecutableResolver{
				staticResolver("/usr/bin/first", nil),
				staticResolver("/usr/bin/second", nil),
			},
			expected:  "/usr/bin/first",
			assertErr: require.NoError,
		},
		{
			name: "failing skipped",
			resolvers: []osprim.ExecutableResolver{
				staticResolver("", assert.AnError),
				staticResolver("/usr/bin/second", nil),
			},
			expected:  "/usr/bin/second",
			assertErr: require.NoError,
		},
		{
			name: "empty skipped",
			resolvers: []osprim.ExecutableResolver{
				staticResolver("", nil),
				staticResolver("/usr/bin/second", nil),
			},
			expected:  "/usr/bin/second",
			assertErr: require.NoError,
		},
		{
			name: "relative made absolute",
			resolvers: []osprim.ExecutableResolver{
				staticResolver("bin/prog", nil),
			},
			expected:  filepath.Join(cwd, "bin", "prog"),
			assertErr: require.NoError,
		},
		{
			name: "cleaned",
			resolvers: []osprim.ExecutableResolver{
				staticResolver("/usr/bin/../lib/prog", nil),
			},
			expected:  "/usr/lib/prog",
			assertErr: require.NoError,
		},
		{
			name: "panic recovered",
			resolvers: []osprim.ExecutableResolver{
				func() (string, error) { panic("boom") },
				staticResolver("/usr/bin/second", nil),
			},
			expected:  "/usr/bin/second",
			assertErr: require.NoError,
		},
		{
			name: "all failing",
			resolvers: []osprim.ExecutableResolver{
				staticResolver("", assert.AnError),
				func() (string, error) { panic("boom") },
				staticResolver("", nil),
			},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, osprim.ErrExecutableUnknown)
				require.ErrorIs(t, err, assert.AnError)
				require.ErrorIs(t, err, osprim.ErrResolverPanic)
				require.ErrorIs(t, err, osprim.ErrEmptyPath)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := osprim.ResolveExecutable(tt.resolvers...)
			tt.assertErr(t, err)

			assert.Equal(t, tt.expected, actual)
		})
	}
}

func TestArgv0(t *testing.T) {
	assert.Empty(t, osprim.Argv0(nil))
	assert.Empty(t, osprim.Argv0([]string{}))
	assert.Equal(t, "prog", osprim.Argv0([]string{"prog", "-v"}))
}

func TestArgv0Resolver(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := osprim.Argv0Resolver("")()
		require.ErrorIs(t, err, osprim.ErrEmptyPath)
	})

	t.Run("path", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.Mkdir("bin", 0o755))
		require.NoError(t, os.WriteFile("bin/prog", nil, 0o755))

		actual, err := osprim.Argv0Resolver("./bin/prog")()
		require.NoError(t, err)
		assert.Equal(t, "./bin/prog", actual)
	})

	t.Run("missing path", func(t *testing.T) {
		t.Chdir(t.TempDir())

		_, err := osprim.Argv0Resolver("./no/such/binary")()
		require.ErrorIs(t, err, os.ErrNotExist)

		actual, err := osprim.ResolveExecutable(osprim.Argv0Resolver("./no/such/binary"))
		require.ErrorIs(t, err, osprim.ErrExecutableUnknown)
		assert.Empty(t, actual)
	})

	t.Run("directory", func(t *testing.T) {
		t.Chdir(t.TempDir())
		require.NoError(t, os.Mkdir("prog", 0o755))

		_, err := osprim.Argv0Resolver("./prog/")()
		require.ErrorIs(t, err, osprim.ErrNotRegularFile)
	})

	t.Run("lookup", func(t *testing.T) {
		expected, err := exec.LookPath("sh")
		if err != nil {
			t.Skip("no sh in PATH")
		}

		actual, err := osprim.Argv0Resolver("sh")()
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := osprim.Argv0Resolver("surely-not-existing-binary")()
		require.ErrorIs(t, err, exec.ErrNotFound)
	})
}

func TestDefaultExecutableResolvers(t *testing.T) {
	expected, err := os.Executable()
	require.NoError(t, err)

	resolvers := osprim.DefaultExecutableResolvers(os.Args[0])
	require.NotEmpty(t, resolvers)

	for _, resolve := range resolvers {
		actual, err := osprim.ResolveExecutable(resolve)
		if !assert.NoError(t, err) {
			continue
		}

		// All resolvers must point to the same file, even if the paths
		// differ due to symlinks.
		expectedInfo, err := os.Stat(expected)
		require.NoError(t, err)

		actualInfo, err := os.Stat(actual)
		require.NoError(t, err)

		assert.True(t, os.SameFile(expectedInfo, actualInfo),
			"%s should be the same file as %s", actual, expected)
	}
}
