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

//go:build linux

package i2c

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unsafe"

	"github.com/ZaparooProject/go-irlcd/detection"
	"golang.org/x/sys/unix"
)

const (
	// I2CSlave is the ioctl command to set slave address
	I2CSlave = 0x0703

	// I2CFuncs is the ioctl command to get adapter functionality
	I2CFuncs = 0x0705

	// I2CFuncI2C indicates plain I2C support
	I2CFuncI2C = 0x00000001
)

// i2cBusInfo contains information about an I2C bus
type i2cBusInfo struct {
	Path   string // Device path, e.g., "/dev/i2c-1"
	Name   string // periph bus name, e.g., "1"
	Number int
}

// detectLinux searches for LCD backpacks on Linux I2C buses
func detectLinux(ctx context.Context, opts *detection.Options) ([]detection.DeviceInfo, error) {
	buses, err := findI2CBuses()
	if err != nil {
		return nil, err
	}
	if len(buses) == 0 {
		return nil, detection.ErrNoDevicesFound
	}

	var devices []detection.DeviceInfo
	for _, bus := range buses {
		select {
		case <-ctx.Done():
			return devices, detection.ErrDetectionTimeout
		default:
		}
		devices = append(devices, detectBusDevices(ctx, bus, opts)...)
	}

	if len(devices) == 0 {
		return nil, detection.ErrNoDevicesFound
	}
	return devices, nil
}

// detectBusDevices looks at the candidate addresses of one bus. In
// Passive mode nothing is sent on the wire and every candidate is
// reported at Low confidence.
func detectBusDevices(ctx context.Context, bus i2cBusInfo, opts *detection.Options) []detection.DeviceInfo {
	addresses := candidateAddresses(opts.Mode)
	if opts.Mode != detection.Passive {
		addresses = probeAddresses(ctx, bus.Path, addresses)
	}

	devices := make([]detection.DeviceInfo, 0, len(addresses))
	for _, addr := range addresses {
		devicePath := fmt.Sprintf("%s:0x%02X", bus.Path, addr)
		if detection.IsPathIgnored(devicePath, opts.IgnorePaths) {
			continue
		}

		confidence := detection.Low
		if opts.Mode != detection.Passive {
			confidence = confidenceFor(addr)
		}
		devices = append(devices, detection.DeviceInfo{
			Transport:  "i2c",
			Path:       devicePath,
			Name:       fmt.Sprintf("LCD backpack on %s address 0x%02X", bus.Path, addr),
			Confidence: confidence,
			Metadata: map[string]string{
				"bus":     bus.Name,
				"address": fmt.Sprintf("0x%02X", addr),
			},
		})
	}
	return devices
}

// findI2CBuses discovers I2C buses that support plain I2C transfers
func findI2CBuses() ([]i2cBusInfo, error) {
	matches, err := filepath.Glob("/dev/i2c-*")
	if err != nil {
		return nil, fmt.Errorf("failed to scan for I2C devices: %w", err)
	}

	buses := make([]i2cBusInfo, 0, len(matches))
	for _, path := range matches {
		name := strings.TrimPrefix(filepath.Base(path), "i2c-")
		busNum, err := strconv.Atoi(name)
		if err != nil {
			continue
		}

		fd, err := unix.Open(path, unix.O_RDWR|unix.O_CLOEXEC, 0)
		if err != nil {
			continue
		}
		// I2C_FUNCS fills an unsigned long.
		var funcs uint
		// #nosec G103 -- unsafe pointer required for ioctl system call
		err = ioctl(fd, I2CFuncs, uintptr(unsafe.Pointer(&funcs)))
		_ = unix.Close(fd)
		if err != nil || funcs&I2CFuncI2C == 0 {
			continue
		}

		buses = append(buses, i2cBusInfo{Path: path, Name: name, Number: busNum})
	}
	return buses, nil
}

// probeAddresses returns the addresses that acknowledge a one byte read.
// A PCF8574 read only samples its port pins, so this is harmless.
func probeAddresses(ctx context.Context, busPath string, addresses []uint8) []uint8 {
	fd, err := unix.Open(busPath, unix.O_RDWR|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil
	}
	defer func() { _ = unix.Close(fd) }()

	var found []uint8
	buf := make([]byte, 1)
	for _, addr := range addresses {
		if ctx.Err() != nil {
			break
		}
		if err := unix.IoctlSetInt(fd, I2CSlave, int(addr)); err != nil {
			continue
		}
		if _, err := unix.Read(fd, buf); err == nil {
			found = append(found, addr)
		}
	}
	return found
}

// ioctl performs an ioctl system call
func ioctl(fd int, request uint, arg uintptr) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), uintptr(request), arg)
	if errno != 0 {
		return errno
	}
	return nil
}
