// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package handoff

import (
	"fmt"
	"os"
)

// EnvVar is the environment variable that holds the path of the handoff
// file for the runtime core.
const EnvVar = "VMBOOT_HANDOFF"

const filePattern = "vmboot-handoff-*.cbor"

// WriteTempFile writes the message into a new file in dir and returns its
// path. If dir is empty, [os.TempDir] is used. The file is only readable by
// the current user. The caller is responsible for removing it.
func WriteTempFile(dir string, msg Message) (string, error) {
	data, err := Marshal(msg)
	if err != nil {
		return "", err
	}

	file, err := os.CreateTemp(dir, filePattern)
	if err != nil {
		return "", fmt.Errorf("create handoff file: %w", err)
	}

	_, err = file.Write(data)
	if closeErr := file.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		_ = os.Remove(file.Name())
		return "", fmt.Errorf("write handoff file: %w", err)
	}

	return file.Name(), nil
}

// Load reads the message from the file at the given path.
func Load(path string) (Message, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Message{}, fmt.Errorf("read handoff file: %w", err)
	}

	return Unmarshal(data)
}

// FromEnv reads the message from the file [EnvVar] points to. It returns
// [ErrNoHandoff] if the variable is not set or empty.
func FromEnv() (Message, error) {
	path := os.Getenv(EnvVar)
	if path == "" {
		return Message{}, ErrNoHandoff
	}

	msg, err := Load(path)
	if err != nil {
		return Message{}, err
	}

	return msg, nil
}
