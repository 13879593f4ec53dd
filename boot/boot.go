// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package boot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"sync/atomic"

	"github.com/aibor/vmboot/internal/exitcode"
	"github.com/aibor/vmboot/osprim"
	"github.com/aibor/vmboot/props"
	"github.com/google/uuid"
)

// Option configures a [Bootstrapper].
type Option func(*Bootstrapper)

// WithLogger sets the logger the [Bootstrapper] reports degraded conditions
// to. Default is [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(b *Bootstrapper) {
		b.logger = logger
	}
}

// WithPropertySource sets the source the native property record is captured
// from. Default is [props.OSSource] with the environment of the provider.
func WithPropertySource(src props.Source) Option {
	return func(b *Bootstrapper) {
		b.source = src
	}
}

// Bootstrapper runs the bootstrap sequence and hands control to a [Core].
type Bootstrapper struct {
	os     osprim.Provider
	source props.Source
	logger *slog.Logger
	newID  func() (uuid.UUID, error)
	state  atomic.Uint32
}

// New creates a new [Bootstrapper] that uses the given provider for all
// operating system facts. The provider must not be nil.
func New(provider osprim.Provider, opts ...Option) *Bootstrapper {
	b := &Bootstrapper{
		os:     provider,
		logger: slog.Default(),
		newID:  uuid.NewRandom,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.source == nil {
		b.source = props.OSSource{Env: provider.Environment()}
	}

	return b
}

// State returns the current lifecycle state.
func (b *Bootstrapper) State() State {
	return State(b.state.Load())
}

// Run runs the bootstrap sequence and starts the given core with the given
// raw arguments. If exeHint is not empty, it is used as executable path.
// Otherwise the path is resolved by the provider.
//
// Neither an unknown executable path nor missing native properties abort the
// sequence. They are logged and the core is started with empty values.
//
// The returned [Outcome] is the one of the core. A panic in the core results
// in Terminated([exitcode.Panic]).
//
// An error is returned only if the core could not be started at all. The
// returned outcome is Terminated([exitcode.Launcher]) in that case.
func (b *Bootstrapper) Run(
	ctx context.Context,
	args []string,
	exeHint string,
	core Core,
) (Outcome, error) {
	if core == nil {
		return Terminated(exitcode.Launcher), ErrNilCore
	}

	if !b.state.CompareAndSwap(uint32(NotStarted), uint32(RunningManagedCore)) {
		return Terminated(exitcode.Launcher), ErrAlreadyStarted
	}

	inputs := &Inputs{
		ID:        b.bootID(),
		Args:      args,
		Env:       b.os.Environment(),
		OS:        b.os,
		StartTime: b.os.MonotonicTime(),
	}

	logger := b.logger.With(slog.String("boot_id", inputs.ID.String()))

	inputs.ExecutablePath = b.executablePath(exeHint)
	if inputs.ExecutablePath == "" {
		logger.Warn("Executable path unknown, continue without")
	}

	record, err := props.Capture(b.source)
	if err != nil {
		logger.Warn("Native properties incomplete", slog.Any("error", err))
	}

	inputs.Properties = record

	logger.Debug("Start core",
		slog.Int("args", len(args)),
		slog.String("executable", inputs.ExecutablePath),
	)

	outcome := startCore(ctx, core, inputs, logger)

	logger.Debug("Core ended",
		slog.String("outcome", outcome.String()),
		slog.Int64("duration_ns", b.os.MonotonicTime()-inputs.StartTime),
	)

	if !outcome.IsTerminated() {
		inputs.doCleanup(logger)
	}

	if !exitcode.InRange(outcome.ExitCode()) {
		logger.Warn("Exit code out of range, will be truncated by the OS",
			slog.Int("exit_code", outcome.ExitCode()),
		)
	}

	return outcome, nil
}

func (b *Bootstrapper) bootID() uuid.UUID {
	id, err := b.newID()
	if err != nil {
		b.logger.Warn("Generate boot ID", slog.Any("error", err))
		return uuid.Nil
	}

	return id
}

func (b *Bootstrapper) executablePath(hint string) string {
	if hint != "" {
		return hint
	}

	return b.os.ExecutablePath()
}

func startCore(
	ctx context.Context,
	core Core,
	inputs *Inputs,
	logger *slog.Logger,
) (outcome Outcome) {
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}

		var err error
		if recoveredErr, ok := rec.(error); ok {
			err = fmt.Errorf("%w: %w", ErrCorePanic, recoveredErr)
		} else {
			err = fmt.Errorf("%w: %v", ErrCorePanic, rec)
		}

		logger.Error("Core failed", slog.Any("error", err))

		outcome = Terminated(exitcode.Panic)
	}()

	return core.Start(ctx, inputs)
}

var defaultBootstrapper = sync.OnceValue(func() *Bootstrapper {
	return New(osprim.NewHost(osprim.Argv0(os.Args)))
})

// Main is the process entry point. It runs the given core with a
// [Bootstrapper] on the host operating system and ends the process with the
// exit code of the core. It never returns.
//
// Main runs a core at most once per process. Further calls end the process
// with [exitcode.Launcher].
func Main(args []string, exeHint string, core Core) {
	b := defaultBootstrapper()

	outcome, err := b.Run(context.Background(), args, exeHint, core)
	if err != nil {
		b.logger.Error("Bootstrap failed", slog.Any("error", err))
	}

	b.os.Terminate(outcome.ExitCode())
}
