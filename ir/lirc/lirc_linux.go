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

package lirc

import (
	"errors"
	"fmt"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"golang.org/x/sys/unix"
)

// LIRC ioctls from <linux/lirc.h>.
const (
	lircGetFeatures = 0x80046900 // _IOR('i', 0x00, __u32)
	lircSetRecMode  = 0x40046912 // _IOW('i', 0x12, __u32)

	lircModeScancode    = 0x00000008
	lircCanRecScancode  = lircModeScancode << 16
	defaultOpenFlags    = unix.O_RDONLY | unix.O_NONBLOCK | unix.O_CLOEXEC
	unsupportedModeHint = "device cannot report scancodes; is an IR protocol enabled in /sys/class/rc?"
)

// Receiver implements irlcd.IrReceiver on a LIRC device
type Receiver struct {
	path       string
	fd         int
	buf        [scancodeSize]byte
	pending    irlcd.IrData
	hasPending bool
}

// Open opens a LIRC device and switches it to scancode mode
func Open(path string) (*Receiver, error) {
	fd, err := unix.Open(path, defaultOpenFlags, 0)
	if err != nil {
		return nil, irlcd.NewTransportError("open", path, err)
	}

	features, err := unix.IoctlGetUint32(fd, lircGetFeatures)
	if err != nil {
		_ = unix.Close(fd)
		return nil, irlcd.NewTransportError("get features", path, err)
	}
	if features&lircCanRecScancode == 0 {
		_ = unix.Close(fd)
		return nil, irlcd.NewTransportError("get features", path, errors.New(unsupportedModeHint))
	}

	if err := unix.IoctlSetPointerInt(fd, lircSetRecMode, lircModeScancode); err != nil {
		_ = unix.Close(fd)
		return nil, irlcd.NewTransportError("set scancode mode", path, err)
	}

	return &Receiver{path: path, fd: fd}, nil
}

// Decode reads the next scancode if one is queued. It never blocks.
func (r *Receiver) Decode() (irlcd.IrData, bool) {
	if r.hasPending {
		return r.pending, true
	}

	n, err := unix.Read(r.fd, r.buf[:])
	if err != nil || n < scancodeSize {
		return irlcd.IrData{}, false
	}

	sc, err := parseScancode(r.buf[:n])
	if err != nil {
		return irlcd.IrData{}, false
	}
	r.pending, r.hasPending = sc.IrData(), true
	return r.pending, true
}

// Resume drops the pending decode
func (r *Receiver) Resume() {
	r.hasPending = false
}

// Close closes the device
func (r *Receiver) Close() error {
	if err := unix.Close(r.fd); err != nil {
		return fmt.Errorf("failed to close %s: %w", r.path, err)
	}
	return nil
}
