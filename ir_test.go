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
	"testing"
	"time"

	testutil "github.com/ZaparooProject/go-irlcd/internal/testing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelay_Poll(t *testing.T) {
	t.Parallel()

	clock := testutil.NewManualClock(15234 * time.Millisecond)
	link := testutil.NewVirtualSerial(clock)
	ir := NewMockIrReceiver()
	relay := NewRelay(link, ir, clock)

	assert.False(t, relay.Poll(), "nothing decoded")
	assert.Empty(t, link.Writes())

	ir.PushCommand(69)
	assert.True(t, relay.Poll())

	assert.Equal(t, []string{`{"type":"ircommand","command":69,"time":15234}`}, link.Lines())
	assert.Equal(t, 1, ir.Resumes())
	assert.Equal(t, 0, ir.Pending())
}

func TestRelay_EveryDecodeProducesOneMessage(t *testing.T) {
	t.Parallel()

	clock := testutil.NewManualClock(0)
	link := testutil.NewVirtualSerial(clock)
	ir := NewMockIrReceiver()
	relay := NewRelay(link, ir, clock)

	ir.Push(
		IrData{Command: 0x45},
		IrData{Command: 0x45, Repeat: true},
		IrData{Command: 0x45, Repeat: true},
		IrData{Command: 0x46},
	)

	for relay.Poll() {
		clock.Advance(110 * time.Millisecond)
	}

	lines := link.Lines()
	require.Len(t, lines, 4)
	assert.Equal(t, `{"type":"ircommand","command":69,"time":0}`, lines[0])
	assert.Equal(t, `{"type":"ircommand","command":69,"time":110}`, lines[1])
	assert.Equal(t, `{"type":"ircommand","command":70,"time":330}`, lines[3])
	assert.Len(t, link.Writes(), 4, "each message is a single write")
	assert.Equal(t, 4, ir.Resumes())
}

func TestRelay_ResumesAfterWriteFailure(t *testing.T) {
	t.Parallel()

	clock := testutil.NewManualClock(0)
	link := testutil.NewVirtualSerial(clock)
	link.SetWriteError(errors.New("port gone"))
	ir := NewMockIrReceiver()
	ir.PushCommand(1)

	assert.True(t, NewRelay(link, ir, clock).Poll())
	assert.Equal(t, 1, ir.Resumes())
}
