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

package irlcd

import (
	"fmt"
	"time"
)

// Option is a functional option for configuring a Bridge
type Option func(*Bridge) error

// WithReadTimeout sets the per-byte timeout for inbound frames
func WithReadTimeout(timeout time.Duration) Option {
	return func(b *Bridge) error {
		if timeout <= 0 {
			return fmt.Errorf("%w: read timeout must be positive, got %v", ErrInvalidParameter, timeout)
		}
		b.config.ReadTimeout = timeout
		return nil
	}
}

// WithSettleDelay sets how long the splash is shown before polling starts
func WithSettleDelay(delay time.Duration) Option {
	return func(b *Bridge) error {
		if delay < 0 {
			return fmt.Errorf("%w: settle delay must not be negative, got %v", ErrInvalidParameter, delay)
		}
		b.config.SettleDelay = delay
		return nil
	}
}

// WithIdleInterval sets the pause after an iteration with nothing to do.
// Zero makes the loop spin.
func WithIdleInterval(interval time.Duration) Option {
	return func(b *Bridge) error {
		if interval < 0 {
			return fmt.Errorf("%w: idle interval must not be negative, got %v", ErrInvalidParameter, interval)
		}
		b.config.IdleInterval = interval
		return nil
	}
}

// WithGlyphs replaces the glyph table programmed at startup
func WithGlyphs(table GlyphTable) Option {
	return func(b *Bridge) error {
		if err := table.Validate(); err != nil {
			return err
		}
		b.config.Glyphs = table
		return nil
	}
}

// WithSplash replaces the startup text
func WithSplash(splash Splash) Option {
	return func(b *Bridge) error {
		b.config.Splash = splash
		return nil
	}
}

// WithClock sets the uptime source used for timeouts and event stamps
func WithClock(clock Clock) Option {
	return func(b *Bridge) error {
		if clock == nil {
			return fmt.Errorf("%w: clock is nil", ErrInvalidParameter)
		}
		b.clock = clock
		return nil
	}
}

// WithConfig replaces the whole configuration
func WithConfig(config *Config) Option {
	return func(b *Bridge) error {
		if config == nil {
			return fmt.Errorf("%w: config is nil", ErrInvalidParameter)
		}
		cfg := *config
		if cfg.ReadTimeout <= 0 {
			cfg.ReadTimeout = DefaultReadTimeout
		}
		if err := cfg.Glyphs.Validate(); err != nil {
			return err
		}
		b.config = &cfg
		return nil
	}
}
