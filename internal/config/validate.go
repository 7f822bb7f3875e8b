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

package config

import (
	"errors"
	"fmt"
)

// Validate checks configuration correctness.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if cfg.Serial.Port == "" {
		return errors.New("serial.port must be set")
	}
	if cfg.Serial.Baud <= 0 {
		return fmt.Errorf("serial.baud must be positive, got %d", cfg.Serial.Baud)
	}
	if cfg.Serial.ReadTimeoutMs <= 0 {
		return fmt.Errorf("serial.read_timeout_ms must be positive, got %d", cfg.Serial.ReadTimeoutMs)
	}

	// 7-bit addresses outside the reserved blocks
	if cfg.Display.Address < 0x08 || cfg.Display.Address > 0x77 {
		return fmt.Errorf("display.address 0x%02X is not a usable 7-bit address", cfg.Display.Address)
	}

	if cfg.IR.Device == "" {
		return errors.New("ir.device must be set")
	}

	if cfg.SettleMs < 0 {
		return fmt.Errorf("settle_ms must not be negative, got %d", cfg.SettleMs)
	}

	return nil
}
