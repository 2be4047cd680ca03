// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/matt-FFFFFF/splash/internal/ctxlog"
	"github.com/matt-FFFFFF/splash/internal/theme"
	"github.com/spf13/afero"
)

// Surface modes.
const (
	SurfaceAuto  = "auto"
	SurfaceTUI   = "tui"
	SurfacePlain = "plain"
)

// Step kinds.
const (
	// KindFixed reports a single stage at the end of the step's window.
	KindFixed = "fixed"
	// KindCount reports items as "done / total".
	KindCount = "count"
	// KindBytes reports bytes as MiB.
	KindBytes = "bytes"
)

const (
	defaultTitle    = "Kraken Launcher"
	defaultWeight   = 1.0
	defaultDuration = 500 * time.Millisecond
	mebibyte        = 1024 * 1024
)

var (
	// ErrReadFile is returned when the config file cannot be read.
	ErrReadFile = errors.New("failed to read config file")
	// ErrUnknownFormat is returned for files that are neither YAML nor HCL.
	ErrUnknownFormat = errors.New("unknown config file format, expected .yaml, .yml or .hcl")
	// ErrInvalidYaml is returned when YAML decoding fails.
	ErrInvalidYaml = errors.New("invalid YAML")
	// ErrInvalidHcl is returned when HCL parsing or decoding fails.
	ErrInvalidHcl = errors.New("invalid HCL")
	// ErrInvalidConfig is returned when validation finds problems.
	ErrInvalidConfig = errors.New("invalid config")
)

// Config is the splash configuration.
type Config struct {
	Title   string       `yaml:"title" hcl:"title,optional" json:"title"`
	Logo    string       `yaml:"logo" hcl:"logo,optional" json:"logo,omitempty"` // path inside the bundled assets
	Surface string       `yaml:"surface" hcl:"surface,optional" json:"surface"`
	Theme   *theme.Theme `yaml:"theme" hcl:"theme,block" json:"theme"`
	Steps   []Step       `yaml:"steps" hcl:"step,block" json:"steps"`
}

// Step is one unit of bootstrap work shown on the splash.
type Step struct {
	Name      string  `yaml:"name" hcl:"name,label" json:"name"`
	Action    string  `yaml:"action" hcl:"action,optional" json:"action,omitempty"`
	SubAction string  `yaml:"sub_action" hcl:"sub_action,optional" json:"sub_action,omitempty"`
	Kind      string  `yaml:"kind" hcl:"kind,optional" json:"kind"`
	Total     int64   `yaml:"total" hcl:"total,optional" json:"total,omitempty"`
	Weight    float64 `yaml:"weight" hcl:"weight,optional" json:"weight"`
	Duration  string  `yaml:"duration" hcl:"duration,optional" json:"duration"`
}

// Wait returns the parsed duration, or zero if it does not parse.
func (s Step) Wait() time.Duration {
	d, err := time.ParseDuration(s.Duration)
	if err != nil {
		return 0
	}

	return d
}

// DefaultSteps is the plan of a typical launcher start.
func DefaultSteps() []Step {
	return []Step{
		{Name: "resolve", Action: "Resolving configuration", Kind: KindFixed, Weight: 0.5, Duration: "300ms"},
		{Name: "download", Action: "Downloading assets", SubAction: "client.jar", Kind: KindBytes, Total: 24 * mebibyte, Weight: 4, Duration: "3s"},
		{Name: "verify", Action: "Verifying files", SubAction: "checking hashes", Kind: KindCount, Total: 120, Weight: 2, Duration: "1500ms"},
		{Name: "prepare", Action: "Preparing launch", Kind: KindFixed, Weight: 0.5, Duration: "300ms"},
	}
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.ApplyDefaults()

	return c
}

// ApplyDefaults fills every unset field.
func (c *Config) ApplyDefaults() {
	if c.Title == "" {
		c.Title = defaultTitle
	}

	if c.Surface == "" {
		c.Surface = SurfaceAuto
	}

	th := theme.Default()
	if c.Theme != nil {
		th = c.Theme.WithDefaults()
	}

	c.Theme = &th

	if len(c.Steps) == 0 {
		c.Steps = DefaultSteps()
	}

	for i := range c.Steps {
		s := &c.Steps[i]

		if s.Kind == "" {
			s.Kind = KindFixed
		}

		if s.Weight == 0 {
			s.Weight = defaultWeight
		}

		if s.Duration == "" {
			s.Duration = defaultDuration.String()
		}

		if s.Action == "" {
			s.Action = s.Name
		}
	}
}

// Load reads the file at path, applies defaults and validates the result.
// An empty path returns Default.
func Load(ctx context.Context, path string) (*Config, error) {
	if path == "" {
		ctxlog.Debug(ctx, "no config file, using defaults")
		return Default(), nil
	}

	data, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
	}

	var c *Config

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		c, err = ParseYAML(data)
	case ".hcl":
		c, err = ParseHCL(data, path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}

	if err != nil {
		return nil, err
	}

	c.ApplyDefaults()

	if err := c.Validate(); err != nil {
		return nil, err
	}

	ctxlog.Debug(ctx, "config loaded", "path", path, "steps", len(c.Steps))

	return c, nil
}
