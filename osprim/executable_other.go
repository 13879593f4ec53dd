// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package osprim

func platformExecutableResolvers() []ExecutableResolver {
	return nil
}
