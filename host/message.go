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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
)

var (
	// ErrUnknownMessage is returned for a well-formed line with a type tag
	// this package does not know.
	ErrUnknownMessage = errors.New("unknown message type")

	// ErrMalformedMessage is returned for a line that is not a JSON object.
	ErrMalformedMessage = errors.New("malformed message")
)

// Message type tags, as sent by the device.
const (
	MessageTypeIrCommand = irlcd.MessageTypeIrCommand
	MessageTypeDebug     = irlcd.MessageTypeDebug
)

// Message is one line received from the device.
type Message struct {
	Type    string
	Text    string // debug messages only
	Raw     []byte // the line without its newline
	Time    time.Duration
	Command byte
}

type wireMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
	Command uint8  `json:"command"`
	Time    int64  `json:"time"`
}

// ParseMessage decodes one device line.
func ParseMessage(line []byte) (Message, error) {
	line = bytes.TrimSpace(line)

	var w wireMessage
	if err := json.Unmarshal(line, &w); err != nil {
		return Message{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}

	msg := Message{
		Type: w.Type,
		Raw:  append([]byte(nil), line...),
	}
	switch w.Type {
	case MessageTypeIrCommand:
		msg.Command = w.Command
		msg.Time = time.Duration(w.Time) * time.Millisecond
	case MessageTypeDebug:
		msg.Text = w.Message
	default:
		return msg, fmt.Errorf("%w: %q", ErrUnknownMessage, w.Type)
	}
	return msg, nil
}

// FrameBytes extracts the byte count from a rejected-frame diagnostic.
func (m Message) FrameBytes() (int, bool) {
	if m.Type != MessageTypeDebug {
		return 0, false
	}
	const marker = "got only "
	i := strings.Index(m.Text, marker)
	if i < 0 {
		return 0, false
	}
	rest := m.Text[i+len(marker):]
	end := 0
	for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(rest[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}
