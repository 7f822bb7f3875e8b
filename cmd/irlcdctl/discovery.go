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

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ZaparooProject/go-irlcd/detection"
	// Import all detectors to register them
	_ "github.com/ZaparooProject/go-irlcd/detection/i2c"
	_ "github.com/ZaparooProject/go-irlcd/detection/uart"
	"go.bug.st/serial"
)

// discoverDevices lists every candidate without touching serial ports.
func discoverDevices(ctx context.Context, timeout time.Duration) ([]detection.DeviceInfo, error) {
	opts := detection.DefaultOptions()
	opts.Timeout = timeout
	opts.Mode = detection.Safe

	devices, err := detection.DetectAllContext(ctx, &opts)
	if err != nil {
		return nil, fmt.Errorf("device discovery failed: %w", err)
	}
	return devices, nil
}

// pickSerialDevice returns the best serial candidate. Results arrive
// sorted by confidence.
func pickSerialDevice(devices []detection.DeviceInfo) (detection.DeviceInfo, error) {
	for _, d := range devices {
		if d.Transport == "uart" {
			return d, nil
		}
	}
	return detection.DeviceInfo{}, fmt.Errorf("no serial device found among %d candidates", len(devices))
}

// openPort opens the requested port, or the best detected one.
func openPort(ctx context.Context, cfg *config) (serial.Port, string, error) {
	path := *cfg.devicePath
	if path == "" {
		devices, err := discoverDevices(ctx, *cfg.timeout)
		if err != nil {
			return nil, "", err
		}
		device, err := pickSerialDevice(devices)
		if err != nil {
			return nil, "", err
		}
		path = device.Path
		_, _ = fmt.Printf("Auto-detected %s (%s, %s confidence)\n", device.Name, path, device.Confidence)
	}

	port, err := serial.Open(path, &serial.Mode{
		BaudRate: *cfg.baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to open %s: %w", path, err)
	}

	if *cfg.openDelay > 0 {
		select {
		case <-ctx.Done():
			_ = port.Close()
			return nil, "", ctx.Err()
		case <-time.After(*cfg.openDelay):
		}
	}
	return port, path, nil
}
