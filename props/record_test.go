// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package props_test

import (
	"maps"
	"testing"

	"github.com/aibor/vmboot/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	record := props.NewRecord(map[props.Key]string{
		props.UserDir:  "/work",
		props.UserName: "alice",
		props.Key(42):  "ignored",
		props.Key(-1):  "ignored",
		props.UserHome: "/home/alice",
	})

	assert.Equal(t, "alice", record.Get(props.UserName))
	assert.Equal(t, "/home/alice", record.Get(props.UserHome))
	assert.Equal(t, "/work", record.Get(props.UserDir))
	assert.Empty(t, record.Get(props.Key(42)))

	var keys []props.Key
	for key := range record.All() {
		keys = append(keys, key)
	}

	assert.Equal(t, props.Keys(), keys, "iteration should be in record order")

	expected := map[string]string{
		"user.name": "alice",
		"user.home": "/home/alice",
		"user.dir":  "/work",
	}
	assert.Equal(t, expected, record.Map())
	assert.Empty(t, record.Missing())
}

func TestRecordZero(t *testing.T) {
	var record props.Record

	assert.Len(t, maps.Collect(record.All()), 3,
		"zero record should still have all keys")
	assert.Equal(t, props.Keys(), record.Missing())
	assert.Equal(t, map[string]string{
		"user.name": "",
		"user.home": "",
		"user.dir":  "",
	}, record.Map())
}

func TestFromMap(t *testing.T) {
	tests := []struct {
		name      string
		values    map[string]string
		expected  props.Record
		assertErr require.ErrorAssertionFunc
	}{
		{
			name: "complete",
			values: map[string]string{
				"user.name": "bob",
				"user.home": "/home/bob",
				"user.dir":  "",
			},
			expected: props.NewRecord(map[props.Key]string{
				props.UserName: "bob",
				props.UserHome: "/home/bob",
			}),
			assertErr: require.NoError,
		},
		{
			name: "missing",
			values: map[string]string{
				"user.name": "bob",
				"user.home": "/home/bob",
			},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, props.ErrMissingProperty)
				require.ErrorContains(t, err, "user.dir")
			},
		},
		{
			name: "unknown",
			values: map[string]string{
				"user.name":    "bob",
				"user.home":    "/home/bob",
				"user.dir":     "/",
				"user.country": "DE",
			},
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, props.ErrUnknownProperty)
				require.ErrorContains(t, err, "user.country")
			},
		},
		{
			name: "empty",
			assertErr: func(t require.TestingT, err error, _ ...any) {
				require.ErrorIs(t, err, props.ErrMissingProperty)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := props.FromMap(tt.values)
			tt.assertErr(t, err)

			assert.Equal(t, tt.expected, actual)
		})
	}
}
