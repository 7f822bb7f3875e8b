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

package host

import (
	"bufio"
	"fmt"
	"io"
	"sync"
)

// maxLineLength bounds a device line; anything longer is noise.
const maxLineLength = 512

// Client talks to one irlcd device over a byte stream, typically a
// go.bug.st serial port.
type Client struct {
	rw      io.ReadWriter
	reader  *bufio.Reader
	writeMu sync.Mutex
}

// NewClient wraps a serial stream
func NewClient(rw io.ReadWriter) *Client {
	return &Client{
		rw:     rw,
		reader: bufio.NewReaderSize(rw, maxLineLength),
	}
}

// SendFrame writes the payload and sentinel with a single Write so the
// device sees the frame as one burst.
func (c *Client) SendFrame(f Frame) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	buf := f.Bytes()
	n, err := c.rw.Write(buf)
	if err != nil {
		return fmt.Errorf("failed to send frame: %w", err)
	}
	if n != len(buf) {
		return fmt.Errorf("failed to send frame: short write %d/%d", n, len(buf))
	}
	return nil
}

// Show sends the current contents of a screen
func (c *Client) Show(s *Screen) error {
	return c.SendFrame(s.Frame())
}

// ReadMessage blocks until one line arrives and decodes it. Blank lines
// are skipped. Decode errors still consume the line, so the caller can
// log and keep reading.
func (c *Client) ReadMessage() (Message, error) {
	for {
		line, err := c.readLine()
		if err != nil {
			return Message{}, err
		}
		if len(line) == 0 {
			continue
		}
		return ParseMessage(line)
	}
}

// readLine returns one line without the terminator, discarding the tail
// of overlong lines.
func (c *Client) readLine() ([]byte, error) {
	line, isPrefix, err := c.reader.ReadLine()
	if err != nil {
		return nil, err
	}
	if !isPrefix {
		return trimCR(line), nil
	}

	for isPrefix {
		_, isPrefix, err = c.reader.ReadLine()
		if err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("%w: line longer than %d bytes", ErrMalformedMessage, maxLineLength)
}

func trimCR(line []byte) []byte {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}
