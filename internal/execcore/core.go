// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package execcore

import (
	"context"
	"io"
	"log/slog"
	"maps"
	"os"
	"os/exec"
	"slices"
	"time"

	"github.com/aibor/vmboot/boot"
	"github.com/aibor/vmboot/handoff"
	"github.com/aibor/vmboot/internal/exitcode"
)

// DefaultGracePeriod is the time a core process gets to exit after it was
// asked to, before it is killed.
const DefaultGracePeriod = 5 * time.Second

var _ boot.Core = (*Core)(nil)

// Core runs an executable as runtime core.
//
// The bootstrap inputs are passed by a [handoff.Message] file whose path is
// set in the [handoff.EnvVar] environment variable of the child process.
type Core struct {
	// Path of the executable to run.
	Path string

	// Args are passed to the executable before the user arguments of the
	// bootstrap process.
	Args []string

	// Env is added to the environment snapshot of the bootstrap process.
	Env map[string]string

	// TempDir is the directory the handoff file is written to. Default is
	// [os.TempDir].
	TempDir string

	// GracePeriod is the time the process gets to exit after it received
	// SIGTERM on context cancellation. Default is [DefaultGracePeriod].
	GracePeriod time.Duration

	// Standard I/O of the process. Default are the ones of the current
	// process.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger used for errors. Default is [slog.Default].
	Logger *slog.Logger
}

// Start implements [boot.Core]. It blocks until the process exited.
//
// A regular exit results in a [boot.Completed] outcome, whatever the exit
// code. A process killed by a signal or that could not be started at all
// results in a [boot.Terminated] outcome.
func (c *Core) Start(ctx context.Context, in *boot.Inputs) boot.Outcome {
	logger := c.logger()

	handoffPath, err := handoff.WriteTempFile(c.TempDir, handoff.FromInputs(in))
	if err != nil {
		logger.Error("Prepare core", slog.Any("error", err))
		return boot.Terminated(exitcode.Launcher)
	}

	defer func() {
		if err := os.Remove(handoffPath); err != nil {
			logger.Warn("Remove handoff file", slog.Any("error", err))
		}
	}()

	cmd := c.command(ctx, in, handoffPath)

	logger.Debug("Run core", slog.String("cmd", cmd.String()))

	err = cmd.Run()

	outcome := outcomeOf(cmd, err)
	if outcome.IsTerminated() && cmd.ProcessState == nil {
		logger.Error("Start core", slog.Any("error", err))
	}

	return outcome
}

func (c *Core) command(
	ctx context.Context,
	in *boot.Inputs,
	handoffPath string,
) *exec.Cmd {
	args := slices.Clone(c.Args)
	if len(in.Args) > 1 {
		args = append(args, in.Args[1:]...)
	}

	//nolint:gosec
	cmd := exec.CommandContext(ctx, c.Path, args...)
	cmd.Env = c.environ(in, handoffPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Cancel = func() error {
		return interrupt(cmd.Process)
	}

	if c.Stdin != nil {
		cmd.Stdin = c.Stdin
	}

	if c.Stdout != nil {
		cmd.Stdout = c.Stdout
	}

	if c.Stderr != nil {
		cmd.Stderr = c.Stderr
	}

	cmd.WaitDelay = c.GracePeriod
	if cmd.WaitDelay <= 0 {
		cmd.WaitDelay = DefaultGracePeriod
	}

	return cmd
}

// environ returns the environment for the process. Later entries take
// precedence.
func (c *Core) environ(in *boot.Inputs, handoffPath string) []string {
	env := in.Env.Copy()

	for _, key := range slices.Sorted(maps.Keys(c.Env)) {
		env = append(env, key+"="+c.Env[key])
	}

	return append(env, handoff.EnvVar+"="+handoffPath)
}

func (c *Core) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}

	return slog.Default()
}

// outcomeOf returns the outcome of the process. Once the process ran, its
// state is authoritative. The error returned by [exec.Cmd.Run] might only
// tell that the context was canceled or pipes were not closed in time.
func outcomeOf(cmd *exec.Cmd, err error) boot.Outcome {
	if state := cmd.ProcessState; state != nil {
		err = nil
		if !state.Success() {
			err = &exec.ExitError{ProcessState: state}
		}
	}

	code, abnormal := exitcode.FromExec(err)
	if abnormal {
		return boot.Terminated(code)
	}

	return boot.Completed(code)
}
