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
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitor_DispatchesUntilEOF(t *testing.T) {
	t.Parallel()

	link := newFakeLink(
		`{"type":"ircommand","command":5,"time":1000}` + "\n" +
			`{"type":"ircommand","command":5,"time":1100}` + "\n" +
			`{"type":"status","ok":true}` + "\n" +
			`{"type":"debug","message":"expected 33; got only 3 bytes of data"}` + "\n" +
			`{"type":"ircommand","command":5,"time":1500}` + "\n")

	monitor := NewMonitor(NewClient(link), NewThrottler(0))
	var commands []time.Duration
	var debug []string
	monitor.OnIrCommand = func(msg Message) { commands = append(commands, msg.Time) }
	monitor.OnDebug = func(msg Message) { debug = append(debug, msg.Text) }

	err := monitor.Start(context.Background())
	require.ErrorIs(t, err, io.EOF)

	assert.Equal(t, []time.Duration{time.Second, 1500 * time.Millisecond}, commands)
	assert.Equal(t, []string{"expected 33; got only 3 bytes of data"}, debug)
}

func TestMonitor_NoThrottler(t *testing.T) {
	t.Parallel()

	link := newFakeLink(
		`{"type":"ircommand","command":5,"time":1000}` + "\n" +
			`{"type":"ircommand","command":5,"time":1001}` + "\n")

	monitor := NewMonitor(NewClient(link), nil)
	count := 0
	monitor.OnIrCommand = func(Message) { count++ }

	_ = monitor.Start(context.Background())
	assert.Equal(t, 2, count)
	assert.Nil(t, monitor.Throttler())
}

func TestMonitor_ContextCancel(t *testing.T) {
	t.Parallel()

	r, w := io.Pipe()
	defer func() { _ = w.Close() }()

	link := &fakeLink{Reader: r}
	monitor := NewMonitor(NewClient(link), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- monitor.Start(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("monitor did not stop")
	}
}
