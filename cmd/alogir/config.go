// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"github.com/lmittmann/tint"
	"github.com/pelletier/go-toml/v2"
	"github.com/tisannai/alogir/container/heap"
	"gopkg.in/yaml.v3"
)

// Config represents the settings that may be read from a YAML or TOML
// configuration file. Values specified on the command line take
// precedence over those in the file.
type Config struct {
	Order       string `yaml:"order" toml:"order"`
	Numeric     bool   `yaml:"numeric" toml:"numeric"`
	Unique      bool   `yaml:"unique" toml:"unique"`
	Top         int    `yaml:"top" toml:"top"`
	Seed        uint64 `yaml:"seed" toml:"seed"`
	Concurrency int    `yaml:"concurrency" toml:"concurrency"`
}

// loadConfig reads the named configuration file, the format is determined
// by its extension. An empty filename yields an empty Config.
func loadConfig(filename string) (Config, error) {
	var cfg Config
	if len(filename) == 0 {
		return cfg, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".yaml", ".yml":
		err = parseYAML(data, &cfg)
	case ".toml":
		err = parseTOML(data, &cfg)
	default:
		return cfg, fmt.Errorf("%v: unsupported configuration file type %q", filename, ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to parse %v: %w", filename, err)
	}
	if len(cfg.Order) > 0 {
		if _, err := heap.ParsePolarity(cfg.Order); err != nil {
			return cfg, fmt.Errorf("%v: %w", filename, err)
		}
	}
	return cfg, nil
}

func parseYAML(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return cmdyaml.ErrorWithSource(data, err)
	}
	return nil
}

func parseTOML(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// polarity returns the polarity named by flag, or if that is empty, by
// the configuration file, or if that is also empty, def.
func (c Config) polarity(flag string, def heap.Polarity) (heap.Polarity, error) {
	switch {
	case len(flag) > 0:
		return heap.ParsePolarity(flag)
	case len(c.Order) > 0:
		return heap.ParsePolarity(c.Order)
	}
	return def, nil
}

func (c Config) concurrency(flag int) int {
	switch {
	case flag > 0:
		return flag
	case c.Concurrency > 0:
		return c.Concurrency
	}
	return runtime.GOMAXPROCS(0)
}

func slogLevel(level int) slog.Level {
	switch {
	case level <= 0:
		return slog.LevelError
	case level == 1:
		return slog.LevelWarn
	case level == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// newLogger creates a logger as specified by the logging flags, the
// 'color' format is supported in addition to those supported by
// cmdutil.LoggingConfig, but only when logging to stderr.
func newLogger(lf cmdutil.LoggingFlags) (*slog.Logger, func() error, error) {
	if lf.Format == "color" && len(lf.File) == 0 {
		handler := tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slogLevel(lf.Level),
			AddSource:  lf.SourceCode,
			TimeFormat: time.TimeOnly,
		})
		return slog.New(handler), func() error { return nil }, nil
	}
	cfg := lf.LoggingConfig()
	if cfg.Format == "color" {
		cfg.Format = "text"
	}
	logger, err := cfg.NewLogger()
	if err != nil {
		return nil, nil, err
	}
	return logger.Logger, logger.Close, nil
}

// setup loads the configuration file and creates a logger that is
// stored in the returned context.
func setup(ctx context.Context, lf cmdutil.LoggingFlags, configFile string) (context.Context, Config, func() error, error) {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return ctx, cfg, nil, err
	}
	logger, closer, err := newLogger(lf)
	if err != nil {
		return ctx, cfg, nil, err
	}
	if len(configFile) > 0 {
		logger.Debug("configuration", "file", configFile, "config", cfg)
	}
	return ctxlog.WithLogger(ctx, logger), cfg, closer, nil
}
