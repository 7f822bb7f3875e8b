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

//go:build !linux

package lirc

import irlcd "github.com/ZaparooProject/go-irlcd"

// Receiver is unavailable outside Linux
type Receiver struct{}

// Open always fails outside Linux
func Open(path string) (*Receiver, error) {
	return nil, irlcd.NewTransportError("open", path, irlcd.ErrUnsupportedPlatform)
}

// Decode never reports anything
func (*Receiver) Decode() (irlcd.IrData, bool) { return irlcd.IrData{}, false }

// Resume does nothing
func (*Receiver) Resume() {}

// Close does nothing
func (*Receiver) Close() error { return nil }
