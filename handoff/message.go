// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package handoff

import (
	"fmt"

	"github.com/aibor/vmboot/boot"
	"github.com/aibor/vmboot/props"
	"github.com/google/uuid"
)

// Version is the format version of the [Message] written by this build.
const Version uint = 1

// Message is the record handed to a runtime core in a separate process.
type Message struct {
	// Version is the format version of the message.
	Version uint `cbor:"1,keyasint"`

	// Schema is the [props.SchemaVersion] of Properties.
	Schema int `cbor:"2,keyasint"`

	// ID is the boot ID.
	ID uuid.UUID `cbor:"3,keyasint"`

	// Args is the raw argument vector of the bootstrap process.
	Args []string `cbor:"4,keyasint"`

	// ExecutablePath is the absolute path of the bootstrap executable.
	ExecutablePath string `cbor:"5,keyasint"`

	// Properties are the native properties by property name.
	Properties map[string]string `cbor:"6,keyasint"`

	// StartTime is the monotonic time the bootstrap began at in
	// nanoseconds.
	StartTime int64 `cbor:"7,keyasint"`

	// WallClock is the wall clock time the message was created at in
	// milliseconds since the Unix epoch.
	WallClock int64 `cbor:"8,keyasint"`
}

// FromInputs creates a [Message] from the given bootstrap inputs.
func FromInputs(in *boot.Inputs) Message {
	msg := Message{
		Version:        Version,
		Schema:         props.SchemaVersion,
		ID:             in.ID,
		Args:           in.Args,
		ExecutablePath: in.ExecutablePath,
		Properties:     in.Properties.Map(),
		StartTime:      in.StartTime,
	}

	if in.OS != nil {
		msg.WallClock = in.OS.WallClockMillis()
	}

	return msg
}

// Record returns the native property record of the message.
func (m Message) Record() (props.Record, error) {
	if m.Schema != props.SchemaVersion {
		return props.Record{}, fmt.Errorf("%w: got %d, want %d",
			ErrSchemaMismatch, m.Schema, props.SchemaVersion)
	}

	record, err := props.FromMap(m.Properties)
	if err != nil {
		return props.Record{}, fmt.Errorf("properties: %w", err)
	}

	return record, nil
}
