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

// Package uart provides the serial link to the host over go.bug.st/serial
package uart

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"github.com/ZaparooProject/go-irlcd/internal/transport"
	"go.bug.st/serial"
)

// readPoll bounds each blocking read so the reader notices Close.
const readPoll = 50 * time.Millisecond

// Port is the part of serial.Port the transport uses
type Port interface {
	io.ReadWriteCloser
	SetReadTimeout(t time.Duration) error
}

// Config configures the serial port
type Config struct {
	// BaudRate of the link, 57600 by default
	BaudRate int
	// BufferSize is how many inbound bytes are held before the reader
	// stops draining the port
	BufferSize int
	// OpenRetries is how many extra attempts New makes when the port
	// cannot be opened yet, for example while a USB gadget comes up
	OpenRetries int
	// RetryDelay is the pause between open attempts
	RetryDelay time.Duration
}

// DefaultConfig returns the default serial configuration
func DefaultConfig() *Config {
	return &Config{
		BaudRate:    irlcd.DefaultBaudRate,
		BufferSize:  256,
		OpenRetries: 0,
		RetryDelay:  time.Second,
	}
}

// Transport implements irlcd.SerialChannel for a serial port. A background
// goroutine drains the port into a buffer so Buffered and ReadByte never
// block.
type Transport struct {
	port     Port
	inbound  chan byte
	done     chan struct{}
	readErr  atomic.Pointer[error]
	portName string
	wg       sync.WaitGroup
	writeMu  sync.Mutex
	closed   atomic.Bool
}

// New opens portName with the default configuration
func New(portName string) (*Transport, error) {
	return NewWithConfig(portName, DefaultConfig())
}

// NewWithConfig opens portName with config
func NewWithConfig(portName string, config *Config) (*Transport, error) {
	if config == nil {
		config = DefaultConfig()
	}
	mode := &serial.Mode{
		BaudRate: config.BaudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}

	port, err := transport.WithRetry(transport.RetryConfig{
		MaxRetries:  config.OpenRetries,
		RetryDelay:  config.RetryDelay,
		Description: "open " + portName,
	}, func() (serial.Port, bool, error) {
		p, openErr := serial.Open(portName, mode)
		if openErr != nil {
			var portErr *serial.PortError
			if errors.As(openErr, &portErr) && portErr.Code() == serial.PortNotFound {
				return nil, true, nil
			}
			return nil, false, openErr
		}
		return p, false, nil
	})
	if err != nil {
		return nil, irlcd.NewTransportError("open", portName, err)
	}

	t, err := NewFromPort(port, portName, config.BufferSize)
	if err != nil {
		_ = port.Close()
		return nil, err
	}
	return t, nil
}

// NewFromPort wraps an already open port
func NewFromPort(port Port, portName string, bufferSize int) (*Transport, error) {
	if bufferSize <= 0 {
		bufferSize = DefaultConfig().BufferSize
	}
	if err := port.SetReadTimeout(readPoll); err != nil {
		return nil, irlcd.NewTransportError("set timeout", portName, err)
	}

	t := &Transport{
		port:     port,
		portName: portName,
		inbound:  make(chan byte, bufferSize),
		done:     make(chan struct{}),
	}
	t.wg.Add(1)
	go t.readLoop()
	return t, nil
}

// readLoop copies bytes from the port into the inbound buffer until the
// port fails or the transport is closed.
func (t *Transport) readLoop() {
	defer t.wg.Done()
	buf := make([]byte, 64)
	for {
		n, err := t.port.Read(buf)
		for _, b := range buf[:n] {
			select {
			case t.inbound <- b:
			case <-t.done:
				return
			}
		}
		if err != nil {
			if !t.closed.Load() {
				wrapped := irlcd.NewTransportError("read", t.portName, err)
				var e error = wrapped
				t.readErr.Store(&e)
			}
			return
		}
		select {
		case <-t.done:
			return
		default:
		}
	}
}

// Buffered returns the number of bytes ready to read
func (t *Transport) Buffered() int {
	return len(t.inbound)
}

// ReadByte returns the next buffered byte, irlcd.ErrNoData when the buffer
// is empty, or the error that stopped the reader once the buffer drains.
func (t *Transport) ReadByte() (byte, error) {
	select {
	case b := <-t.inbound:
		return b, nil
	default:
	}
	if t.closed.Load() {
		return 0, irlcd.ErrTransportClosed
	}
	if errp := t.readErr.Load(); errp != nil {
		return 0, *errp
	}
	return 0, irlcd.ErrNoData
}

// Write sends p as one uninterrupted sequence of port writes
func (t *Transport) Write(p []byte) (int, error) {
	if t.closed.Load() {
		return 0, irlcd.ErrTransportClosed
	}
	t.writeMu.Lock()
	defer t.writeMu.Unlock()

	written := 0
	for written < len(p) {
		n, err := t.port.Write(p[written:])
		written += n
		if err != nil {
			return written, irlcd.NewTransportError("write", t.portName, err)
		}
		if n == 0 {
			return written, irlcd.NewTransportError("write", t.portName, io.ErrShortWrite)
		}
	}
	return written, nil
}

// Close stops the reader and closes the port
func (t *Transport) Close() error {
	if !t.closed.CompareAndSwap(false, true) {
		return nil
	}
	close(t.done)
	err := t.port.Close()
	t.wg.Wait()
	if err != nil {
		return fmt.Errorf("failed to close serial port %s: %w", t.portName, err)
	}
	return nil
}

// IsConnected returns true until the port is closed or fails
func (t *Transport) IsConnected() bool {
	return !t.closed.Load() && t.readErr.Load() == nil
}

// PortName returns the device path the transport was opened on
func (t *Transport) PortName() string {
	return t.portName
}
