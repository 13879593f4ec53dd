// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package props

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Record holds one value per [Key]. Values of properties that could not be
// captured are empty strings.
//
// The zero value is a record with all values empty. A Record is immutable:
// it is passed by value and has no setters.
type Record struct {
	values [numKeys]string
}

// NewRecord creates a record from the given values. Invalid keys are
// ignored, absent keys have empty values.
func NewRecord(values map[Key]string) Record {
	var record Record

	for key, value := range values {
		if key.Valid() {
			record.values[key] = value
		}
	}

	return record
}

// FromMap creates a record from values by property name, as returned by
// [Record.Map]. All properties of the schema must be present and no other.
func FromMap(values map[string]string) (Record, error) {
	var (
		record Record
		errs   []error
		seen   [numKeys]bool
	)

	for _, name := range slices.Sorted(maps.Keys(values)) {
		key, found := KeyFor(name)
		if !found {
			errs = append(errs, fmt.Errorf("%w: %s", ErrUnknownProperty, name))
			continue
		}

		record.values[key] = values[name]
		seen[key] = true
	}

	for _, key := range Keys() {
		if !seen[key] {
			errs = append(errs, fmt.Errorf("%w: %s", ErrMissingProperty, key))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return Record{}, err
	}

	return record, nil
}

// Get returns the value for the given key. It returns an empty string for
// invalid keys.
func (r Record) Get(key Key) string {
	if !key.Valid() {
		return ""
	}

	return r.values[key]
}

// All iterates all keys and their values in record order.
func (r Record) All() iter.Seq2[Key, string] {
	return func(yield func(Key, string) bool) {
		for idx, value := range r.values {
			if !yield(Key(idx), value) {
				return
			}
		}
	}
}

// Map returns the values by property name.
func (r Record) Map() map[string]string {
	values := make(map[string]string, numKeys)
	for key, value := range r.All() {
		values[key.PropertyName()] = value
	}

	return values
}

// Missing returns the keys with empty values in record order.
func (r Record) Missing() []Key {
	var missing []Key

	for key, value := range r.All() {
		if value == "" {
			missing = append(missing, key)
		}
	}

	return missing
}
