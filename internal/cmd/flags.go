// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"flag"
	"fmt"
	"io"
	"runtime/debug"
)

const (
	name = "vmboot"

	usageMessage = `Usage of 'vmboot':
    VMBOOT_ARGS="[flags...]" vmboot [core args...]

All command line arguments are passed to the runtime core. Flags for vmboot
itself are read from the environment variable VMBOOT_ARGS.

Configuration is read from the file given by -config, the environment
variable VMBOOT_CONFIG or ./.vmboot.toml, in this order. Flags take
precedence over the config file.

Flags:
`
)

// Set on build.
var version = "dev"

type flags struct {
	configPath     string
	corePath       string
	executableHint string
	debug          bool
	version        bool

	flagSet *flag.FlagSet
}

func newFlags(output io.Writer) *flags {
	flags := &flags{}
	flags.initFlagset(output)

	return flags
}

func (f *flags) initFlagset(output io.Writer) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usageMessage)
		fs.PrintDefaults()
	}

	fs.StringVar(
		&f.configPath,
		"config",
		f.configPath,
		"path of the config file",
	)

	fs.StringVar(
		&f.corePath,
		"core",
		f.corePath,
		"runtime core executable to run",
	)

	fs.StringVar(
		&f.executableHint,
		"exe",
		f.executableHint,
		"executable path to pass to the core instead of resolving it",
	)

	fs.BoolVar(
		&f.debug,
		"debug",
		f.debug,
		"enable debug output",
	)

	fs.BoolVar(
		&f.version,
		"version",
		f.version,
		"show version and exit",
	)

	f.flagSet = fs
}

// ParseArgs parses the given vmboot arguments. Positional arguments are not
// allowed, as arguments for the core are taken from the command line.
func (f *flags) ParseArgs(args []string) error {
	if err := f.flagSet.Parse(args); err != nil {
		return &ParseArgsError{msg: "flag parse", err: err}
	}

	if f.flagSet.NArg() > 0 {
		return f.fail(fmt.Sprintf("unexpected arguments: %q", f.flagSet.Args()))
	}

	// With version flag, just print the version and exit. Using [ErrHelp]
	// the main binary is supposed to return with a non error exit code.
	if f.version {
		if err := f.printVersionInformation(); err != nil {
			return err
		}

		return &ParseArgsError{msg: "version requested", err: ErrHelp}
	}

	return nil
}

// fail fails like flag does. It prints the error first and then usage.
func (f *flags) fail(msg string) error {
	err := &ParseArgsError{msg: msg}
	fmt.Fprintln(f.flagSet.Output(), err.Error())

	f.flagSet.Usage()

	return err
}

// apply sets the values of all flags given explicitly in the config.
func (f *flags) apply(cfg *Config) {
	f.flagSet.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "core":
			cfg.Core.Path = f.corePath
		case "exe":
			cfg.ExecutableHint = f.executableHint
		case "debug":
			cfg.Debug = f.debug
		}
	})
}

func (f *flags) printVersionInformation() error {
	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return ErrReadBuildInfo
	}

	fmt.Fprintf(f.flagSet.Output(), "%s: %s\n\n", name, version)
	fmt.Fprintln(f.flagSet.Output(), buildInfo.String())

	return nil
}
