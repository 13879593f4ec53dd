// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/aibor/vmboot/boot"
	"github.com/aibor/vmboot/internal/exitcode"
	"github.com/aibor/vmboot/osprim"
)

// IO provides input and output details for the command.
type IO struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func newConfig(flags *flags) (Config, error) {
	path := flags.configPath
	if path == "" {
		path = os.Getenv(ConfigEnvVar)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		return Config{}, err
	}

	flags.apply(&cfg)

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate: %w", err)
	}

	return cfg, nil
}

func handleParseArgsError(err error) error {
	// [ErrHelp] is returned when help is requested. So exit without error
	// in this case.
	if errors.Is(err, ErrHelp) {
		return nil
	}

	// ParseArgs already prints errors, so we just exit without an error.
	if errors.Is(err, &ParseArgsError{}) {
		return exitcode.Error(exitcode.Launcher)
	}

	return err
}

// outcomeFrom returns the outcome for errors that stop the command before the
// core runs. Errors not reported yet are logged.
func outcomeFrom(err error) boot.Outcome {
	code, reported := exitcode.From(err)
	if err != nil && !reported {
		slog.Error(err.Error())
	}

	if code == exitcode.Success {
		return boot.Completed(code)
	}

	return boot.Terminated(code)
}

// Run is the main entry point for the CLI command. The given args are the
// raw arguments of the process. They are passed to the runtime core.
func Run(ctx context.Context, args []string, cfg IO) boot.Outcome {
	setupLogging(cfg.Stderr, false)

	flags := newFlags(cfg.Stderr)
	if err := flags.ParseArgs(EnvArgs()); err != nil {
		return outcomeFrom(handleParseArgsError(err))
	}

	config, err := newConfig(flags)
	if err != nil {
		return outcomeFrom(err)
	}

	setupLogging(cfg.Stderr, config.Debug)

	bootstrapper := boot.New(
		osprim.NewHost(osprim.Argv0(args)),
		boot.WithLogger(slog.Default()),
	)

	outcome, err := bootstrapper.Run(ctx, args, config.ExecutableHint, config.newCore(cfg))
	if err != nil {
		slog.Error(err.Error())
	}

	slog.Debug("Core outcome", slog.String("outcome", outcome.String()))

	return outcome
}
