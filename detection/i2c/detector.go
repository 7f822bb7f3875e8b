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

// Package i2c finds PCF8574 LCD backpacks on I2C buses.
package i2c

import (
	"context"
	"runtime"

	"github.com/ZaparooProject/go-irlcd/detection"
)

const (
	// DefaultBackpackAddress is the PCF8574T default
	DefaultBackpackAddress = 0x27
	// AlternateBackpackAddress is the PCF8574AT default
	AlternateBackpackAddress = 0x3F
)

// detector implements the Detector interface for I2C devices
type detector struct{}

// New creates a new I2C detector
func New() detection.Detector {
	return &detector{}
}

func init() {
	detection.RegisterDetector(New())
}

// Transport returns the transport type
func (*detector) Transport() string {
	return "i2c"
}

// Detect searches for LCD backpacks on I2C buses
func (*detector) Detect(ctx context.Context, opts *detection.Options) ([]detection.DeviceInfo, error) {
	if runtime.GOOS != "linux" {
		return nil, detection.ErrUnsupportedPlatform
	}
	return detectLinux(ctx, opts)
}

// candidateAddresses returns the addresses worth looking at in a mode.
// Safe and Passive stick to the two factory defaults; Full covers every
// strap setting of both PCF8574 variants.
func candidateAddresses(mode detection.Mode) []uint8 {
	if mode != detection.Full {
		return []uint8{DefaultBackpackAddress, AlternateBackpackAddress}
	}
	addrs := make([]uint8, 0, 16)
	for a := uint8(0x20); a <= 0x27; a++ {
		addrs = append(addrs, a)
	}
	for a := uint8(0x38); a <= 0x3F; a++ {
		addrs = append(addrs, a)
	}
	return addrs
}

// confidenceFor ranks a responding address.
func confidenceFor(addr uint8) detection.Confidence {
	if addr == DefaultBackpackAddress || addr == AlternateBackpackAddress {
		return detection.Medium
	}
	return detection.Low
}
