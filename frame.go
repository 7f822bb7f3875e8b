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
	"errors"
	"time"

	"github.com/ZaparooProject/go-irlcd/internal/frame"
	"github.com/ZaparooProject/go-irlcd/internal/transport"
)

// Frame geometry and protocol constants.
const (
	LineWidth          = frame.LineWidth
	FrameSize          = frame.PayloadSize
	BufferSize         = frame.BufferSize
	Sentinel           = frame.Sentinel
	DefaultBaudRate    = frame.DefaultBaudRate
	DefaultReadTimeout = frame.DefaultReadTimeout
)

// byteWait is how often a timed read checks for the next byte.
const byteWait = time.Millisecond

// Frame is one full display update: line 1 in bytes [0,16), line 2 in
// bytes [16,32). No byte value is special except the sentinel, which can
// never appear inside a frame.
type Frame [FrameSize]byte

// Line returns line 0 or 1 of the frame.
func (f *Frame) Line(n int) []byte {
	line1, line2 := frame.Split(f[:])
	if n == 0 {
		return line1
	}
	return line2
}

// FrameReceiver reads single frame attempts from a SerialChannel.
//
// Each call to Receive is independent. Bytes consumed by a failed attempt
// are gone, and the next attempt starts from whatever follows in the stream,
// so a lost byte leaves the link misaligned until the host's next sentinel.
type FrameReceiver struct {
	serial  SerialChannel
	clock   Clock
	buf     [BufferSize]byte
	timeout time.Duration
}

// NewFrameReceiver creates a receiver. timeout bounds the wait for each
// individual byte.
func NewFrameReceiver(serial SerialChannel, clock Clock, timeout time.Duration) *FrameReceiver {
	return &FrameReceiver{
		serial:  serial,
		clock:   clock,
		timeout: timeout,
	}
}

// Receive reads until the sentinel, BufferSize bytes, or a byte timeout.
// It returns the frame when exactly FrameSize bytes preceded the sentinel,
// and a *FrameError carrying the payload byte count otherwise. A link
// failure other than ErrNoData is returned as is.
func (r *FrameReceiver) Receive() (Frame, error) {
	n, terminated, err := r.readUntilSentinel()
	if err != nil {
		return Frame{}, err
	}
	if !terminated || n != FrameSize {
		debugf("frame rejected: %d bytes, sentinel seen: %t", n, terminated)
		return Frame{}, &FrameError{Got: n}
	}

	var f Frame
	copy(f[:], r.buf[:FrameSize])
	return f, nil
}

// readUntilSentinel fills buf and reports the payload length and whether
// the sentinel ended the read. A byte timeout ends the read without error;
// any other link failure is returned.
func (r *FrameReceiver) readUntilSentinel() (int, bool, error) {
	n := 0
	for n < BufferSize {
		b, err := r.timedRead()
		if errors.Is(err, ErrNoData) {
			return n, false, nil
		}
		if err != nil {
			return n, false, err
		}
		if b == Sentinel {
			return n, true, nil
		}
		r.buf[n] = b
		n++
	}
	return n, false, nil
}

// timedRead waits up to the configured timeout for one byte.
func (r *FrameReceiver) timedRead() (byte, error) {
	b, err := transport.TimeoutRetry(r.clock, r.timeout, byteWait, func() (byte, bool, error) {
		b, err := r.serial.ReadByte()
		if errors.Is(err, ErrNoData) {
			return 0, true, nil
		}
		if err != nil {
			return 0, false, err
		}
		return b, false, nil
	})
	if errors.Is(err, transport.ErrTimeout) {
		return 0, ErrNoData
	}
	return b, err
}
