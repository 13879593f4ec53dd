// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package osprim

import (
	"iter"
	"os"
	"slices"
	"strings"
	"sync"
)

// Environment is a read-only snapshot of environment variables in
// "key=value" form.
//
// A nil *Environment is valid and empty.
type Environment struct {
	vars []string
}

var processEnvironment = sync.OnceValue(func() *Environment {
	return &Environment{vars: os.Environ()}
})

// ProcessEnvironment returns the snapshot of the process environment. It is
// taken on first call and shared by all callers afterwards. Later changes of
// the process environment are not reflected.
func ProcessEnvironment() *Environment {
	return processEnvironment()
}

// NewEnvironment creates an [Environment] from the given "key=value"
// entries. The slice is copied.
func NewEnvironment(vars []string) *Environment {
	return &Environment{vars: slices.Clone(vars)}
}

// Lookup returns the value of the variable with the given key and whether it
// is present. If a key is present more than once, the first entry wins.
func (e *Environment) Lookup(key string) (string, bool) {
	for k, v := range e.All() {
		if k == key {
			return v, true
		}
	}

	return "", false
}

// Get returns the value of the variable with the given key. It returns an
// empty string if the key is not present.
func (e *Environment) Get(key string) string {
	value, _ := e.Lookup(key)
	return value
}

// Len returns the number of entries.
func (e *Environment) Len() int {
	if e == nil {
		return 0
	}

	return len(e.vars)
}

// All iterates the entries as key value pairs in their original order.
// Malformed entries without "=" are skipped.
func (e *Environment) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if e == nil {
			return
		}

		for _, entry := range e.vars {
			key, value, ok := splitEntry(entry)
			if !ok {
				continue
			}

			if !yield(key, value) {
				return
			}
		}
	}
}

// Copy returns a copy of the entries in "key=value" form, as consumed by
// [os/exec.Cmd].
func (e *Environment) Copy() []string {
	if e == nil {
		return []string{}
	}

	return slices.Clone(e.vars)
}

// splitEntry splits an entry at the first "=" after the first character.
// Windows has entries like "=C:=C:\dir" that start with "=".
func splitEntry(entry string) (string, string, bool) {
	if entry == "" {
		return "", "", false
	}

	idx := strings.IndexByte(entry[1:], '=')
	if idx < 0 {
		return "", "", false
	}

	return entry[:idx+1], entry[idx+2:], true
}
