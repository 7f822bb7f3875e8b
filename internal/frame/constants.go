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

// Package frame provides the wire constants of the host-to-display protocol
package frame

import (
	"errors"
	"time"
)

// Frame geometry
const (
	LineWidth   = 16                // Characters per display line
	Lines       = 2                 // Display lines per frame
	PayloadSize = LineWidth * Lines // Payload bytes per frame
	BufferSize  = PayloadSize + 1   // Payload plus the sentinel
)

// Sentinel terminates every inbound frame
const Sentinel byte = 0xFF

// Serial link defaults
const (
	DefaultBaudRate    = 57600
	DefaultReadTimeout = 250 * time.Millisecond
)

// Split returns the two display lines of a payload. The payload must be
// PayloadSize bytes long.
func Split(payload []byte) (line1, line2 []byte) {
	return payload[:LineWidth], payload[LineWidth:PayloadSize]
}

// ErrNoData is returned by a serial link when no inbound byte is buffered.
// Readers retry on it; any other read error ends the frame attempt.
var ErrNoData = errors.New("no data available")
