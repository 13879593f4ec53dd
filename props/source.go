// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package props

import (
	"errors"
	"fmt"
	"os"

	"github.com/aibor/vmboot/osprim"
)

// Source is a strategy for reading the native properties from the operating
// system.
type Source interface {
	UserName() (string, error)
	UserHome() (string, error)
	UserDir() (string, error)
}

// Capture reads all properties from the given source.
//
// It always returns a complete [Record]. Values that could not be read are
// empty. The returned error joins a [CaptureError] for each of them and is
// meant for reporting only. Whether an empty value is fatal is up to the
// runtime core.
func Capture(src Source) (Record, error) {
	var (
		record Record
		errs   []error
	)

	for _, key := range Keys() {
		value, err := read(src, key)
		if err == nil && value == "" {
			err = ErrEmptyValue
		}

		if err != nil {
			errs = append(errs, &CaptureError{Key: key, Err: err})
			continue
		}

		record.values[key] = value
	}

	return record, errors.Join(errs...)
}

func read(src Source, key Key) (value string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			value = ""
			err = fmt.Errorf("%w: %v", ErrSourcePanic, rec)
		}
	}()

	switch key {
	case UserName:
		return src.UserName()
	case UserHome:
		return src.UserHome()
	case UserDir:
		return src.UserDir()
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownProperty, key)
	}
}

var _ Source = OSSource{}

// OSSource reads the properties from the operating system. It first asks
// the user database for the current user and falls back to well known
// environment variables.
type OSSource struct {
	// Env is used for fallbacks. If nil, the process environment snapshot is
	// used.
	Env *osprim.Environment
}

// UserName implements [Source].
func (s OSSource) UserName() (string, error) {
	usr, err := currentUser()
	if err == nil && usr.Username != "" {
		return usr.Username, nil
	}

	if name, found := s.lookupEnv("USER", "LOGNAME", "USERNAME"); found {
		return name, nil
	}

	return "", userError(err)
}

// UserHome implements [Source].
func (s OSSource) UserHome() (string, error) {
	usr, err := currentUser()
	if err == nil && usr.HomeDir != "" {
		return usr.HomeDir, nil
	}

	if home, found := s.lookupEnv("HOME", "USERPROFILE"); found {
		return home, nil
	}

	return "", userError(err)
}

// UserDir implements [Source].
func (s OSSource) UserDir() (string, error) {
	dir, err := os.Getwd()
	if err == nil {
		return dir, nil
	}

	if dir, found := s.lookupEnv("PWD"); found {
		return dir, nil
	}

	return "", fmt.Errorf("working directory: %w", err)
}

func (s OSSource) lookupEnv(keys ...string) (string, bool) {
	env := s.Env
	if env == nil {
		env = osprim.ProcessEnvironment()
	}

	for _, key := range keys {
		if value := env.Get(key); value != "" {
			return value, true
		}
	}

	return "", false
}

func userError(err error) error {
	if err == nil {
		return ErrEmptyValue
	}

	return fmt.Errorf("current user: %w", err)
}
