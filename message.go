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

import "strconv"

// Outbound message type discriminators.
const (
	MessageTypeIrCommand = "ircommand"
	MessageTypeDebug     = "debug"
)

// AppendIrCommand appends the newline-terminated JSON line for event:
//
//	{"type":"ircommand","command":69,"time":15234}
func AppendIrCommand(dst []byte, event IrEvent) []byte {
	dst = append(dst, `{"type":"`+MessageTypeIrCommand+`","command":`...)
	dst = strconv.AppendUint(dst, uint64(event.Command), 10)
	dst = append(dst, `,"time":`...)
	dst = strconv.AppendInt(dst, event.Time.Milliseconds(), 10)
	return append(dst, "}\n"...)
}

// AppendDebug appends the newline-terminated diagnostic line for a
// rejected frame of got payload bytes:
//
//	{"type":"debug","message":"expected 33; got only 20 bytes of data"}
func AppendDebug(dst []byte, got int) []byte {
	dst = append(dst, `{"type":"`+MessageTypeDebug+`","message":"expected `...)
	dst = strconv.AppendInt(dst, BufferSize, 10)
	dst = append(dst, "; got only "...)
	dst = strconv.AppendInt(dst, int64(got), 10)
	return append(dst, ` bytes of data"}`+"\n"...)
}
