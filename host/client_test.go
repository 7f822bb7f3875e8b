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
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeLink is a serial stream with canned device output.
type fakeLink struct {
	io.Reader
	err    error
	writes [][]byte
	short  bool
}

func newFakeLink(output string) *fakeLink {
	return &fakeLink{Reader: strings.NewReader(output)}
}

func (f *fakeLink) Write(p []byte) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.writes = append(f.writes, append([]byte(nil), p...))
	if f.short {
		return len(p) - 1, nil
	}
	return len(p), nil
}

func TestClient_SendFrameIsOneWrite(t *testing.T) {
	t.Parallel()

	link := newFakeLink("")
	client := NewClient(link)

	s := NewScreen()
	s.WriteString(0, 0, "Now playing", 16)
	s.WriteString(1, 0, "Track 1", 16)
	require.NoError(t, client.Show(s))

	require.Len(t, link.writes, 1)
	w := link.writes[0]
	require.Len(t, w, 33)
	assert.Equal(t, "Now playing     Track 1         ", string(w[:32]))
	assert.Equal(t, byte(0xFF), w[32])
}

func TestClient_SendFrameErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("unplugged")
	link := newFakeLink("")
	link.err = boom
	err := NewClient(link).SendFrame(Frame{})
	require.ErrorIs(t, err, boom)

	link = newFakeLink("")
	link.short = true
	err = NewClient(link).SendFrame(Frame{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short write")
}

func TestClient_ReadMessage(t *testing.T) {
	t.Parallel()

	link := newFakeLink("\r\n" +
		`{"type":"ircommand","command":12,"time":500}` + "\r\n" +
		"noise\n" +
		`{"type":"debug","message":"expected 33; got only 0 bytes of data"}` + "\n")
	client := NewClient(link)

	msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, byte(12), msg.Command)

	_, err = client.ReadMessage()
	require.ErrorIs(t, err, ErrMalformedMessage)

	msg, err = client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, MessageTypeDebug, msg.Type)

	_, err = client.ReadMessage()
	require.ErrorIs(t, err, io.EOF)
}

func TestClient_OverlongLine(t *testing.T) {
	t.Parallel()

	long := bytes.Repeat([]byte("x"), maxLineLength*2)
	link := newFakeLink(string(long) + "\n" + `{"type":"ircommand","command":1,"time":1}` + "\n")
	client := NewClient(link)

	_, err := client.ReadMessage()
	require.ErrorIs(t, err, ErrMalformedMessage)

	msg, err := client.ReadMessage()
	require.NoError(t, err)
	assert.Equal(t, byte(1), msg.Command)
}
