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

package main

import (
	"testing"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"github.com/ZaparooProject/go-irlcd/detection"
	"github.com/ZaparooProject/go-irlcd/host"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeText(t *testing.T) {
	t.Parallel()

	f := composeText("Hello", "a much longer second line").Frame()
	assert.Equal(t, "Hello           ", string(f.Line(0)))
	assert.Equal(t, "a much longer se", string(f.Line(1)))
}

func TestComposeProgress(t *testing.T) {
	t.Parallel()

	f := composeProgress("Song", 90*time.Second, 3*time.Minute, false).Frame()
	assert.Equal(t, irlcd.GlyphPlay, f[0])
	assert.Equal(t, "Song", string(f[2:6]))
	assert.Equal(t, irlcd.GlyphThumb, f.Line(1)[8])

	f = composeProgress("Song", 90*time.Second, 3*time.Minute, true).Frame()
	assert.Equal(t, "1:30 / 3:00     ", string(f.Line(0)))
}

func TestPickSerialDevice(t *testing.T) {
	t.Parallel()

	devices := []detection.DeviceInfo{
		{Transport: "i2c", Path: "/dev/i2c-1:0x27"},
		{Transport: "uart", Path: "/dev/ttyACM0"},
		{Transport: "uart", Path: "/dev/ttyS0"},
	}
	d, err := pickSerialDevice(devices)
	require.NoError(t, err)
	assert.Equal(t, "/dev/ttyACM0", d.Path)

	_, err = pickSerialDevice(devices[:1])
	require.Error(t, err)
}

func TestFormatEvent(t *testing.T) {
	t.Parallel()

	msg, err := host.ParseMessage([]byte(`{"type":"ircommand","command":69,"time":1500}`))
	require.NoError(t, err)
	assert.Equal(t, "[      1.5s] button 0x45 (69)", formatEvent(msg))

	msg, err = host.ParseMessage(irlcd.AppendDebug(nil, 12))
	require.NoError(t, err)
	assert.Equal(t, "device rejected a frame: 12 of 33 bytes arrived", formatEvent(msg))

	assert.Equal(t, "device: hello", formatEvent(host.Message{Type: host.MessageTypeDebug, Text: "hello"}))
}
