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
	"io"
	"time"
)

// SerialChannel is the duplex byte link to the host. Inbound frames and
// outbound messages share it.
type SerialChannel interface {
	io.Writer

	// Buffered returns the number of inbound bytes that can be read
	// without blocking.
	Buffered() int

	// ReadByte returns the next inbound byte without blocking. It fails
	// (typically with ErrNoData) when nothing is buffered.
	ReadByte() (byte, error)
}

// Clock supplies uptime and sleeping. The bridge never reads wall time.
type Clock interface {
	// Uptime is the monotonic time since the clock was started.
	Uptime() time.Duration
	Sleep(d time.Duration)
}

type systemClock struct {
	start time.Time
}

// NewSystemClock returns a Clock whose uptime starts at zero now.
func NewSystemClock() Clock {
	return &systemClock{start: time.Now()}
}

func (c *systemClock) Uptime() time.Duration {
	return time.Since(c.start)
}

func (*systemClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
