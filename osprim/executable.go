// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// ExecutableResolver is a strategy for determining the path of the running
// executable.
type ExecutableResolver func() (string, error)

var _ ExecutableResolver = os.Executable

// DefaultExecutableResolvers returns the resolvers for the current platform
// in the order they should be tried.
//
// [os.Executable] comes first, followed by platform specific resolvers. The
// given argv[0] is used last, since it is supplied by whoever started the
// process and might not be related to the actual binary at all.
func DefaultExecutableResolvers(argv0 string) []ExecutableResolver {
	resolvers := []ExecutableResolver{os.Executable}
	resolvers = append(resolvers, platformExecutableResolvers()...)

	return append(resolvers, Argv0Resolver(argv0))
}

// Argv0 returns the first of the given process arguments or an empty string
// if there are none.
func Argv0(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}

// Argv0Resolver returns an [ExecutableResolver] that derives the path from
// the given argv[0]. Bare names are looked up in PATH. The result must be an
// existing regular file.
func Argv0Resolver(argv0 string) ExecutableResolver {
	return func() (string, error) {
		if argv0 == "" {
			return "", fmt.Errorf("argv0: %w", ErrEmptyPath)
		}

		path := argv0

		if !strings.ContainsRune(argv0, filepath.Separator) {
			var err error

			path, err = exec.LookPath(argv0)
			if err != nil {
				return "", fmt.Errorf("argv0: %w", err)
			}
		}

		if err := checkRegularFile(path); err != nil {
			return "", fmt.Errorf("argv0: %w", err)
		}

		return path, nil
	}
}

func checkRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s: %w", path, ErrNotRegularFile)
	}

	return nil
}

// ResolveExecutable runs the given resolvers in order and returns the first
// path that is not empty, made absolute.
//
// If all resolvers fail, the returned error is [ErrExecutableUnknown] joined
// with the errors of all resolvers. Panicking resolvers count as failed.
func ResolveExecutable(resolvers ...ExecutableResolver) (string, error) {
	errs := []error{ErrExecutableUnknown}

	for _, resolve := range resolvers {
		path, err := safeResolve(resolve)
		if err == nil {
			path, err = absolutePath(path)
		}

		if err != nil {
			errs = append(errs, err)
			continue
		}

		return path, nil
	}

	return "", errors.Join(errs...)
}

func safeResolve(resolve ExecutableResolver) (path string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: %v", ErrResolverPanic, rec)
		}
	}()

	return resolve()
}

func absolutePath(path string) (string, error) {
	if path == "" {
		return "", ErrEmptyPath
	}

	if filepath.IsAbs(path) {
		return filepath.Clean(path), nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	return abs, nil
}
