// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package handoff

import (
	"fmt"
	"io"
	"sync"

	"github.com/fxamacker/cbor/v2"
)

type modes struct {
	enc    cbor.EncMode
	dec    cbor.DecMode
	header cbor.DecMode
}

var codecModes = sync.OnceValues(func() (modes, error) {
	var (
		m   modes
		err error
	)

	m.enc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return modes{}, fmt.Errorf("encode mode: %w", err)
	}

	m.dec, err = cbor.DecOptions{
		DupMapKey:         cbor.DupMapKeyEnforcedAPF,
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		return modes{}, fmt.Errorf("decode mode: %w", err)
	}

	m.header, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		return modes{}, fmt.Errorf("header decode mode: %w", err)
	}

	return m, nil
})

// header is the part of a [Message] every format version has.
type header struct {
	Version uint `cbor:"1,keyasint"`
}

// Marshal returns the encoded message.
func Marshal(msg Message) ([]byte, error) {
	m, err := codecModes()
	if err != nil {
		return nil, err
	}

	data, err := m.enc.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return data, nil
}

// Unmarshal decodes a message. It returns a [VersionError] if the format
// version is not [Version].
func Unmarshal(data []byte) (Message, error) {
	m, err := codecModes()
	if err != nil {
		return Message{}, err
	}

	var hdr header
	if err := m.header.Unmarshal(data, &hdr); err != nil {
		return Message{}, fmt.Errorf("decode header: %w", err)
	}

	if hdr.Version != Version {
		return Message{}, &VersionError{Version: hdr.Version}
	}

	var msg Message
	if err := m.dec.Unmarshal(data, &msg); err != nil {
		return Message{}, fmt.Errorf("decode: %w", err)
	}

	return msg, nil
}

// Encode writes the encoded message to the given writer.
func Encode(w io.Writer, msg Message) error {
	data, err := Marshal(msg)
	if err != nil {
		return err
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}

	return nil
}

// Decode reads a single encoded message from the given reader until EOF.
func Decode(r io.Reader) (Message, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Message{}, fmt.Errorf("read: %w", err)
	}

	return Unmarshal(data)
}
