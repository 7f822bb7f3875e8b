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

// Package uart lists serial ports that could carry the irlcd link.
package uart

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZaparooProject/go-irlcd/detection"
	"go.bug.st/serial/enumerator"
)

// knownBoards are USB VIDs (or VID:PIDs) of boards and bridges the
// firmware is usually flashed to.
var knownBoards = map[string]string{
	"2E8A":      "Raspberry Pi RP2040",
	"2341":      "Arduino",
	"1A86:7523": "CH340 serial bridge",
	"0403:6001": "FTDI FT232R",
	"10C4:EA60": "CP210x serial bridge",
}

// listPorts is swapped out in tests.
var listPorts = enumerator.GetDetailedPortsList

type detector struct{}

// New creates a serial port detector
func New() detection.Detector {
	return &detector{}
}

func init() {
	detection.RegisterDetector(New())
}

// Transport returns the transport type
func (*detector) Transport() string {
	return "uart"
}

// Detect enumerates serial ports. It never opens them, so every mode
// behaves the same.
func (*detector) Detect(ctx context.Context, opts *detection.Options) ([]detection.DeviceInfo, error) {
	ports, err := listPorts()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	devices := make([]detection.DeviceInfo, 0, len(ports))
	for _, port := range ports {
		select {
		case <-ctx.Done():
			return devices, detection.ErrDetectionTimeout
		default:
		}

		device, ok := deviceFromPort(port, opts)
		if ok {
			devices = append(devices, device)
		}
	}

	if len(devices) == 0 {
		return nil, detection.ErrNoDevicesFound
	}
	return devices, nil
}

func deviceFromPort(port *enumerator.PortDetails, opts *detection.Options) (detection.DeviceInfo, bool) {
	if port == nil || port.Name == "" {
		return detection.DeviceInfo{}, false
	}
	if detection.IsPathIgnored(port.Name, opts.IgnorePaths) {
		return detection.DeviceInfo{}, false
	}

	device := detection.DeviceInfo{
		Transport:  "uart",
		Path:       port.Name,
		Name:       port.Name,
		Confidence: detection.Low,
		Metadata:   map[string]string{},
	}
	if !port.IsUSB {
		return device, true
	}

	vidpid, ok := detection.FormatVIDPID(port.VID, port.PID)
	if !ok {
		return device, true
	}
	if detection.IsBlocked(vidpid, opts.Blocklist) {
		return detection.DeviceInfo{}, false
	}

	device.Confidence = detection.Medium
	device.Metadata["vidpid"] = vidpid
	if port.SerialNumber != "" {
		device.Metadata["serial"] = port.SerialNumber
	}
	if port.Product != "" {
		device.Name = port.Product
	}
	if board, ok := lookupBoard(vidpid); ok {
		device.Confidence = detection.High
		device.Metadata["board"] = board
	}
	return device, true
}

func lookupBoard(vidpid string) (string, bool) {
	if board, ok := knownBoards[vidpid]; ok {
		return board, true
	}
	vid, _, _ := strings.Cut(vidpid, ":")
	board, ok := knownBoards[vid]
	return board, ok
}
