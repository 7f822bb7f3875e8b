// go-irlcd
// Copyright (c) 2025 The Zaparoo Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-irlcd.
//
// go-irlcd is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-irlcd is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-irlcd; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

// Package config loads the YAML file of the irlcdbridge daemon.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"github.com/ZaparooProject/go-irlcd/display/i2c"
	"github.com/ZaparooProject/go-irlcd/internal/frame"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Serial   SerialConfig  `yaml:"serial"`
	Display  DisplayConfig `yaml:"display"`
	IR       IRConfig      `yaml:"ir"`
	SettleMs int           `yaml:"settle_ms"`
	Debug    bool          `yaml:"debug"`
}

// ---- SERIAL ----

type SerialConfig struct {
	Port          string `yaml:"port"`
	Baud          int    `yaml:"baud"`
	ReadTimeoutMs int    `yaml:"read_timeout_ms"`
}

// ---- DISPLAY ----

type DisplayConfig struct {
	Bus     string `yaml:"bus"` // periph bus name, "" picks the first
	Address uint16 `yaml:"address"`
}

// ---- IR ----

type IRConfig struct {
	Device string `yaml:"device"`
}

// Default returns the configuration used for keys missing from the file.
func Default() *Config {
	return &Config{
		Serial: SerialConfig{
			Port:          "/dev/ttyGS0",
			Baud:          frame.DefaultBaudRate,
			ReadTimeoutMs: int(frame.DefaultReadTimeout / time.Millisecond),
		},
		Display: DisplayConfig{
			Bus:     "1",
			Address: i2c.DefaultAddress,
		},
		IR: IRConfig{
			Device: "/dev/lirc0",
		},
		SettleMs: int(irlcd.DefaultSettleDelay / time.Millisecond),
	}
}

// Load reads and validates a config file. Unknown keys are rejected and
// an empty file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Parse(f)
}

// Parse decodes a config document over the defaults and validates it.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ReadTimeout is the per-byte serial timeout
func (c *Config) ReadTimeout() time.Duration {
	return time.Duration(c.Serial.ReadTimeoutMs) * time.Millisecond
}

// SettleDelay is the pause after the splash screen
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleMs) * time.Millisecond
}

// BridgeOptions maps the file onto bridge options.
func (c *Config) BridgeOptions() []irlcd.Option {
	return []irlcd.Option{
		irlcd.WithReadTimeout(c.ReadTimeout()),
		irlcd.WithSettleDelay(c.SettleDelay()),
	}
}
