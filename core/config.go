// Copyright (c) 2026, The ExGUI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package core

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"exgui.org/core/base/errors"
	"exgui.org/core/base/iox/tomlx"
	"exgui.org/core/base/iox/yamlx"
)

// Config is the configuration of a [Surface]. It can be read from
// TOML or YAML files with [OpenConfig].
type Config struct {

	// Width is the width of the surface in logical pixels.
	Width int `toml:"width" yaml:"width" default:"800"`

	// Height is the height of the surface in logical pixels.
	Height int `toml:"height" yaml:"height" default:"600"`

	// PixelRatio is the ratio of physical to logical pixels,
	// passed to the renderer at the start of every frame.
	PixelRatio float32 `toml:"pixel_ratio" yaml:"pixel_ratio" default:"1"`

	// Font is the default font id of the widgets of the surface.
	Font int `toml:"font" yaml:"font" default:"0"`

	// LogLevel is the minimum level of the log messages to print.
	LogLevel slog.Level `toml:"log_level" yaml:"log_level" default:"INFO"`
}

// DefaultConfig returns a new config with the default values.
func DefaultConfig() *Config {
	return &Config{Width: 800, Height: 600, PixelRatio: 1, LogLevel: slog.LevelInfo}
}

// Validate returns an error if the config cannot be used by a surface.
func (cf *Config) Validate() error {
	var errs []error
	if cf.Width <= 0 || cf.Height <= 0 {
		errs = append(errs, fmt.Errorf("core.Config: size must be positive, is %dx%d", cf.Width, cf.Height))
	}
	if cf.PixelRatio <= 0 {
		errs = append(errs, fmt.Errorf("core.Config: pixel ratio must be positive, is %g", cf.PixelRatio))
	}
	if cf.Font < 0 {
		errs = append(errs, fmt.Errorf("core.Config: font id must not be negative, is %d", cf.Font))
	}
	return errors.Join(errs...)
}

// OpenConfig reads the config from the given file, on top of the
// defaults. The format is chosen by the extension: .toml for TOML,
// .yaml or .yml for YAML.
func OpenConfig(filename string) (*Config, error) {
	cf := DefaultConfig()
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		err = tomlx.Open(cf, filename)
	case ".yaml", ".yml":
		err = yamlx.Open(cf, filename)
	default:
		return nil, fmt.Errorf("core.OpenConfig: unknown config format: %q", filename)
	}
	if err != nil {
		return nil, err
	}
	if err := cf.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cf, nil
}

// SaveConfig writes the given config to the given file, in the format
// given by the extension as in [OpenConfig].
func SaveConfig(cf *Config, filename string) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return tomlx.Save(cf, filename)
	case ".yaml", ".yml":
		return yamlx.Save(cf, filename)
	}
	return fmt.Errorf("core.SaveConfig: unknown config format: %q", filename)
}
