// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"os"
	"strings"
)

const (
	// ArgsEnvVar holds the flags for vmboot itself.
	ArgsEnvVar = "VMBOOT_ARGS"

	// ConfigEnvVar holds the path of the config file.
	ConfigEnvVar = "VMBOOT_CONFIG"
)

// EnvArgs returns vmboot arguments from the environment.
func EnvArgs() []string {
	return strings.Fields(os.Getenv(ArgsEnvVar))
}
