// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package props

import "strconv"

// SchemaVersion identifies the set and order of [Key]s. Increase it with
// every change to the keys.
const SchemaVersion = 1

// Key identifies a native property.
type Key int

// Native properties in record order.
const (
	UserName Key = iota
	UserHome
	UserDir

	numKeys
)

var propertyNames = [...]string{
	UserName: "user.name",
	UserHome: "user.home",
	UserDir:  "user.dir",
}

// Fails to compile if the name table and the key list diverge.
var _ [numKeys]string = propertyNames

// Keys returns all keys in record order.
func Keys() []Key {
	keys := make([]Key, numKeys)
	for idx := range keys {
		keys[idx] = Key(idx)
	}

	return keys
}

// KeyFor returns the key for the given property name.
func KeyFor(name string) (Key, bool) {
	for idx, propertyName := range propertyNames {
		if propertyName == name {
			return Key(idx), true
		}
	}

	return 0, false
}

// PropertyName returns the system property name the runtime core exposes
// the value as, like "user.home". It returns an empty string for invalid
// keys.
func (k Key) PropertyName() string {
	if !k.Valid() {
		return ""
	}

	return propertyNames[k]
}

// Valid returns true if the key is part of the schema.
func (k Key) Valid() bool {
	return k >= 0 && k < numKeys
}

func (k Key) String() string {
	if !k.Valid() {
		return "Key(" + strconv.Itoa(int(k)) + ")"
	}

	return propertyNames[k]
}
