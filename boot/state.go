// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import "strconv"

// State is the lifecycle state of a [Bootstrapper].
type State uint32

const (
	// NotStarted is the initial state.
	NotStarted State = iota

	// RunningManagedCore is entered when the bootstrap sequence begins. It
	// is never left again, even after the core returned.
	RunningManagedCore
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case RunningManagedCore:
		return "RunningManagedCore"
	default:
		return "State(" + strconv.FormatUint(uint64(s), 10) + ")"
	}
}
