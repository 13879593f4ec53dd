// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/aibor/vmboot/internal/execcore"
)

// localConfigFile is read from the working directory if no config file is
// given explicitly.
const localConfigFile = ".vmboot.toml"

// Config is the configuration of vmboot.
type Config struct {
	// ExecutableHint is used as executable path instead of resolving it.
	ExecutableHint string `toml:"executable_hint"`

	// Debug enables debug logging.
	Debug bool `toml:"debug"`

	// Core is the runtime core to run.
	Core CoreConfig `toml:"core"`
}

// CoreConfig is the configuration of the runtime core process.
type CoreConfig struct {
	Path        string            `toml:"path"`
	Args        []string          `toml:"args"`
	Env         map[string]string `toml:"env"`
	TempDir     string            `toml:"temp_dir"`
	GracePeriod time.Duration     `toml:"grace_period"`
}

// DefaultConfig returns the configuration used for all values not set
// otherwise.
func DefaultConfig() Config {
	return Config{
		Core: CoreConfig{
			GracePeriod: execcore.DefaultGracePeriod,
		},
	}
}

// ParseConfig decodes the TOML config in data on top of the given config.
// Keys that are not known result in an [ErrUnknownConfigKey] error.
func ParseConfig(data string, cfg *Config) error {
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for idx, key := range undecoded {
			keys[idx] = key.String()
		}

		return fmt.Errorf("%w: %s", ErrUnknownConfigKey, strings.Join(keys, ", "))
	}

	return nil
}

// LoadConfig reads the config file at the given path on top of the default
// config. If path is empty, the local config file in the working directory
// is read, if it exists.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	optional := path == ""
	if optional {
		path = localConfigFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}

		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	if err := ParseConfig(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("config file %s: %w", path, err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Core.Path == "" {
		return ErrNoCore
	}

	return nil
}

func (c *Config) newCore(cfg IO) *execcore.Core {
	return &execcore.Core{
		Path:        c.Core.Path,
		Args:        c.Core.Args,
		Env:         c.Core.Env,
		TempDir:     c.Core.TempDir,
		GracePeriod: c.Core.GracePeriod,
		Stdin:       cfg.Stdin,
		Stdout:      cfg.Stdout,
		Stderr:      cfg.Stderr,
	}
}
