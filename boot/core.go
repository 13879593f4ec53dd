// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import "context"

// Core is the managed runtime core started by the [Bootstrapper].
//
// Start is expected to run the runtime to its end and return the [Outcome].
// It may also end the process directly with [Inputs.OS] Terminate instead.
type Core interface {
	Start(ctx context.Context, in *Inputs) Outcome
}

// CoreFunc adapts a function to the [Core] interface.
type CoreFunc func(ctx context.Context, in *Inputs) Outcome

// Start implements [Core].
func (f CoreFunc) Start(ctx context.Context, in *Inputs) Outcome {
	return f(ctx, in)
}
