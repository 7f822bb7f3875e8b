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

/*
Package irlcd bridges an infrared remote receiver and a 16x2 character
display to a host computer over a serial link.

The host drives the display by sending 32-byte frames, each followed by the
sentinel byte 0xFF. Bytes 0-15 become line 1 and bytes 16-31 line 2, written
verbatim. Byte values 0-7 show the eight custom glyphs programmed at
startup (see DefaultGlyphs). A successful frame gets no reply; any other
length gets one diagnostic line:

	{"type":"debug","message":"expected 33; got only 20 bytes of data"}

Every remote-control decode is sent to the host as one line:

	{"type":"ircommand","command":69,"time":15234}

where time is the bridge uptime in milliseconds.

Basic Usage:

	import (
	    "github.com/ZaparooProject/go-irlcd"
	    "github.com/ZaparooProject/go-irlcd/display/i2c"
	    "github.com/ZaparooProject/go-irlcd/ir/lirc"
	    "github.com/ZaparooProject/go-irlcd/transport/uart"
	)

	port, err := uart.New("/dev/ttyGS0")
	if err != nil {
	    log.Fatal(err)
	}
	defer port.Close()

	lcd, err := i2c.New("1", i2c.DefaultAddress)
	if err != nil {
	    log.Fatal(err)
	}

	remote, err := lirc.Open("/dev/lirc0")
	if err != nil {
	    log.Fatal(err)
	}
	defer remote.Close()

	bridge, err := irlcd.New(lcd, port, remote)
	if err != nil {
	    log.Fatal(err)
	}
	if err := bridge.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    log.Fatal(err)
	}

Protocol Limits:

There is no checksum and no handshake. A byte lost in transit shows up as
a diagnostic, or as a misaligned frame, until the next sentinel realigns
the stream. Hosts that want to recover faster may send a lone sentinel
before each frame; the bridge answers it with a "got only 0" diagnostic.

Thread Safety:

Bridge operations are not thread-safe. Run the polling loop from one
goroutine.
*/
package irlcd
