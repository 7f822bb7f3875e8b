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

// Package lirc reads decoded remote-control scancodes from a Linux LIRC
// device (/dev/lircN) in LIRC_MODE_SCANCODE.
package lirc

import (
	"encoding/binary"
	"fmt"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
)

// scancodeSize is sizeof(struct lirc_scancode).
const scancodeSize = 24

// Scancode flags.
const (
	flagToggle = 0x01
	flagRepeat = 0x02
)

// Protocol is the kernel's rc_proto value
type Protocol uint16

// Protocols with known scancode layouts
const (
	ProtoUnknown Protocol = 0
	ProtoRC5     Protocol = 2
	ProtoSony12  Protocol = 5
	ProtoNEC     Protocol = 9
	ProtoNECX    Protocol = 10
	ProtoNEC32   Protocol = 11
	ProtoRC6_0   Protocol = 14
)

// Scancode is one decoded event as reported by the kernel
type Scancode struct {
	Timestamp time.Duration
	Scancode  uint64
	Keycode   uint32
	Flags     uint16
	Protocol  Protocol
}

// parseScancode decodes a struct lirc_scancode in host byte order.
func parseScancode(b []byte) (Scancode, error) {
	if len(b) < scancodeSize {
		return Scancode{}, fmt.Errorf("short scancode record: %d bytes", len(b))
	}
	order := binary.NativeEndian
	return Scancode{
		Timestamp: time.Duration(order.Uint64(b[0:8])),
		Flags:     order.Uint16(b[8:10]),
		Protocol:  Protocol(order.Uint16(b[10:12])),
		Keycode:   order.Uint32(b[12:16]),
		Scancode:  order.Uint64(b[16:24]),
	}, nil
}

// IrData extracts the command and address the way the kernel's protocol
// decoders pack them.
func (s Scancode) IrData() irlcd.IrData {
	data := irlcd.IrData{Repeat: s.Flags&flagRepeat != 0}
	switch s.Protocol {
	case ProtoNEC32:
		data.Command = byte(s.Scancode >> 8)
		data.Address = uint16(s.Scancode >> 16)
	case ProtoSony12:
		data.Command = byte(s.Scancode)
		data.Address = uint16(s.Scancode >> 16)
	default:
		data.Command = byte(s.Scancode)
		data.Address = uint16(s.Scancode >> 8)
	}
	return data
}
