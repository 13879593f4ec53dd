// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handoff transfers the bootstrap inputs to a runtime core running
// in a separate process.
//
// The [Message] is encoded as deterministic CBOR with integer keys and
// written to a file. The child process finds the file by the [EnvVar]
// environment variable and decodes it with [FromEnv].
//
// Each message carries a format version and the property schema version.
// Decoding fails for unknown format versions and for unknown fields, so
// both sides notice a contract mismatch instead of working with partial
// data.
package handoff
