// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package props captures the native properties a managed runtime exposes to
// managed code as system properties: the user name, the user's home
// directory and the working directory.
//
// # Layout contract
//
// The set of properties and their order is a contract between this package
// and every runtime core consuming a [Record]. A runtime core that silently
// expects a different set or order reads wrong values without any error.
// This package protects the contract in three ways:
//
//   - [Key] enumerates the properties. The property name table is sized by
//     the number of keys, so adding a key without a name, or a name without a
//     key, does not compile.
//   - Consumers address values by [Key] or by property name ([Record.Map]),
//     never by position.
//   - [SchemaVersion] identifies the key set. It must be increased with any
//     change to the keys, so out-of-process consumers can reject records of
//     a schema they do not know.
package props
