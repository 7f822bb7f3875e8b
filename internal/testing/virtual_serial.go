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

package testing

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/ZaparooProject/go-irlcd/internal/frame"
)

// ErrEmpty is returned by ReadByte when no inbound byte is visible yet.
var ErrEmpty = fmt.Errorf("virtual serial: %w", frame.ErrNoData)

type scheduledByte struct {
	at time.Duration
	b  byte
}

// VirtualSerial is an in-memory serial link. Inbound bytes are queued by the
// test, optionally becoming visible only once the attached clock reaches a
// given uptime. Every Write call is kept separately so tests can check that
// messages are issued in one piece.
type VirtualSerial struct {
	clock    interface{ Uptime() time.Duration }
	inbound  []scheduledByte
	writes   [][]byte
	outbound bytes.Buffer
	writeErr error
	readErr  error
	mu       sync.Mutex
}

// NewVirtualSerial creates a link. clock may be nil, in which case queued
// bytes are visible immediately.
func NewVirtualSerial(clock interface{ Uptime() time.Duration }) *VirtualSerial {
	return &VirtualSerial{clock: clock}
}

// Feed queues bytes that are visible immediately.
func (v *VirtualSerial) Feed(data ...byte) {
	v.FeedAt(0, data...)
}

// FeedAt queues bytes that become visible once the clock reaches at.
func (v *VirtualSerial) FeedAt(at time.Duration, data ...byte) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for _, b := range data {
		v.inbound = append(v.inbound, scheduledByte{at: at, b: b})
	}
}

// FeedFrame queues payload followed by the 0xFF sentinel.
func (v *VirtualSerial) FeedFrame(payload []byte) {
	v.Feed(append(append([]byte(nil), payload...), 0xFF)...)
}

func (v *VirtualSerial) now() time.Duration {
	if v.clock == nil {
		return 0
	}
	return v.clock.Uptime()
}

// Buffered returns the number of inbound bytes visible now.
func (v *VirtualSerial) Buffered() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	now := v.now()
	n := 0
	for _, sb := range v.inbound {
		if sb.at > now {
			break
		}
		n++
	}
	return n
}

// Pending returns the number of inbound bytes not yet consumed.
func (v *VirtualSerial) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.inbound)
}

// ReadByte consumes the next visible inbound byte.
func (v *VirtualSerial) ReadByte() (byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.inbound) == 0 && v.readErr != nil {
		return 0, v.readErr
	}
	if len(v.inbound) == 0 || v.inbound[0].at > v.now() {
		return 0, ErrEmpty
	}
	b := v.inbound[0].b
	v.inbound = v.inbound[1:]
	return b, nil
}

// Write records an outbound message.
func (v *VirtualSerial) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.writeErr != nil {
		return 0, v.writeErr
	}
	v.writes = append(v.writes, append([]byte(nil), p...))
	_, _ = v.outbound.Write(p)
	return len(p), nil
}

// SetWriteError makes every later Write fail with err.
func (v *VirtualSerial) SetWriteError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.writeErr = err
}

// SetReadError makes ReadByte fail with err once the queued bytes are
// consumed, the way a closed port behaves.
func (v *VirtualSerial) SetReadError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.readErr = err
}

// Writes returns a copy of each Write call's payload.
func (v *VirtualSerial) Writes() [][]byte {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([][]byte, len(v.writes))
	copy(out, v.writes)
	return out
}

// Lines returns the outbound stream split into newline-terminated lines,
// without the terminators.
func (v *VirtualSerial) Lines() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	var lines []string
	for _, line := range bytes.SplitAfter(v.outbound.Bytes(), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		lines = append(lines, string(bytes.TrimSuffix(line, []byte("\n"))))
	}
	return lines
}
