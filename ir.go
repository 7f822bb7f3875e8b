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

// IrData is one decoded remote-control transmission.
type IrData struct {
	Address uint16
	Command byte
	// Repeat is set for the protocol's key-held repeat frames. They are
	// relayed like any other decode.
	Repeat bool
}

// IrReceiver is a demodulating IR decoder.
type IrReceiver interface {
	// Decode reports the pending decode, if any, without blocking. The
	// same result is reported until Resume is called.
	Decode() (IrData, bool)

	// Resume discards the pending decode and listens for the next one.
	Resume()
}

// IrEvent is a decoded command stamped with the device uptime.
type IrEvent struct {
	Time    time.Duration
	Command byte
}

// Relay forwards every IR decode to the host as one message.
type Relay struct {
	out   io.Writer
	ir    IrReceiver
	clock Clock
	buf   []byte
}

// NewRelay creates a relay writing to out.
func NewRelay(out io.Writer, ir IrReceiver, clock Clock) *Relay {
	return &Relay{
		out:   out,
		ir:    ir,
		clock: clock,
		buf:   make([]byte, 0, 64),
	}
}

// Poll relays the pending decode, if there is one, and re-arms the
// receiver. It reports whether an event was handled.
func (r *Relay) Poll() bool {
	data, ok := r.ir.Decode()
	if !ok {
		return false
	}

	event := IrEvent{Command: data.Command, Time: r.clock.Uptime()}
	r.buf = AppendIrCommand(r.buf[:0], event)
	if _, err := r.out.Write(r.buf); err != nil {
		debugf("relay of command %d failed: %v", event.Command, err)
	} else {
		debugf("relayed command %d (repeat: %t)", event.Command, data.Repeat)
	}

	r.ir.Resume()
	return true
}
