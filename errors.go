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
	"fmt"

	"github.com/ZaparooProject/go-irlcd/internal/frame"
)

// Protocol errors
var (
	ErrFrameLength         = errors.New("frame length mismatch")
	ErrNoData              = frame.ErrNoData
	ErrTransportClosed     = errors.New("transport closed")
	ErrInvalidParameter    = errors.New("invalid parameter")
	ErrAlreadyInitialized  = errors.New("bridge already initialized")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)

// FrameError reports a frame attempt that did not yield exactly FrameSize
// payload bytes followed by the sentinel.
type FrameError struct {
	// Got is the number of payload bytes read before the sentinel, the
	// timeout or the buffer limit, whichever came first.
	Got int
}

// Error returns the diagnostic text sent back to the host.
func (e *FrameError) Error() string {
	return fmt.Sprintf("expected %d; got only %d bytes of data", BufferSize, e.Got)
}

// Unwrap allows errors.Is(err, ErrFrameLength).
func (*FrameError) Unwrap() error {
	return ErrFrameLength
}

// TransportError wraps a failure of one of the hardware adapters
type TransportError struct {
	Err  error
	Op   string
	Port string
}

// NewTransportError creates a TransportError
func NewTransportError(op, port string, err error) *TransportError {
	return &TransportError{Op: op, Port: port, Err: err}
}

func (e *TransportError) Error() string {
	if e.Port == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Port, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsFrameError reports whether err is a framing error and returns the
// received byte count if so.
func IsFrameError(err error) (int, bool) {
	var fe *FrameError
	if errors.As(err, &fe) {
		return fe.Got, true
	}
	return 0, false
}
