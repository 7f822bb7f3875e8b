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
	"sync"
)

// DisplayOpKind identifies a call recorded by MockDisplay
type DisplayOpKind string

const (
	// OpSetCursor is a SetCursor call
	OpSetCursor DisplayOpKind = "set_cursor"
	// OpWrite is a Write call
	OpWrite DisplayOpKind = "write"
	// OpCreateChar is a CreateChar call
	OpCreateChar DisplayOpKind = "create_char"
)

// DisplayOp is one recorded MockDisplay call
type DisplayOp struct {
	Kind  DisplayOpKind
	Data  []byte
	Glyph Glyph
	Col   uint8
	Row   uint8
	Slot  uint8
}

// MockDisplay is an in-memory 16x2 display that records every call and
// keeps the resulting screen contents
type MockDisplay struct {
	err    error
	ops    []DisplayOp
	screen [2][LineWidth]byte
	glyphs [GlyphSlots]*Glyph
	col    uint8
	row    uint8
	mu     sync.Mutex
}

// NewMockDisplay creates a blank mock display
func NewMockDisplay() *MockDisplay {
	d := &MockDisplay{}
	for row := range d.screen {
		for col := range d.screen[row] {
			d.screen[row][col] = ' '
		}
	}
	return d
}

// SetError makes every later call fail with err
func (d *MockDisplay) SetError(err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.err = err
}

// SetCursor records the call and moves the cursor
func (d *MockDisplay) SetCursor(col, row uint8) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = append(d.ops, DisplayOp{Kind: OpSetCursor, Col: col, Row: row})
	if d.err != nil {
		return d.err
	}
	d.col, d.row = col, row
	return nil
}

// Write records the call and stores p at the cursor. Characters past the
// end of the line are dropped.
func (d *MockDisplay) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = append(d.ops, DisplayOp{Kind: OpWrite, Data: append([]byte(nil), p...), Row: d.row, Col: d.col})
	if d.err != nil {
		return 0, d.err
	}
	for _, b := range p {
		if int(d.row) < len(d.screen) && int(d.col) < LineWidth {
			d.screen[d.row][d.col] = b
		}
		d.col++
	}
	return len(p), nil
}

// CreateChar records the call and stores the glyph
func (d *MockDisplay) CreateChar(slot uint8, glyph Glyph) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = append(d.ops, DisplayOp{Kind: OpCreateChar, Slot: slot, Glyph: glyph})
	if d.err != nil {
		return d.err
	}
	g := glyph
	d.glyphs[slot&(GlyphSlots-1)] = &g
	return nil
}

// Ops returns a copy of the recorded calls
func (d *MockDisplay) Ops() []DisplayOp {
	d.mu.Lock()
	defer d.mu.Unlock()
	ops := make([]DisplayOp, len(d.ops))
	copy(ops, d.ops)
	return ops
}

// Writes returns the Data of each recorded Write call
func (d *MockDisplay) Writes() [][]byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	var writes [][]byte
	for _, op := range d.ops {
		if op.Kind == OpWrite {
			writes = append(writes, op.Data)
		}
	}
	return writes
}

// Line returns the current contents of row
func (d *MockDisplay) Line(row int) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.screen[row][:]...)
}

// GlyphAt returns the glyph programmed into slot, or nil
func (d *MockDisplay) GlyphAt(slot int) *Glyph {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.glyphs[slot]
}

// Reset forgets the recorded calls but keeps the screen
func (d *MockDisplay) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.ops = nil
}

// MockIrReceiver replays a queue of decodes. Like real decoders it keeps
// reporting the head of the queue until Resume is called.
type MockIrReceiver struct {
	queue   []IrData
	decodes int
	resumes int
	mu      sync.Mutex
}

// NewMockIrReceiver creates a receiver with nothing to decode
func NewMockIrReceiver() *MockIrReceiver {
	return &MockIrReceiver{}
}

// Push queues decodes
func (m *MockIrReceiver) Push(data ...IrData) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, data...)
}

// PushCommand queues a plain decode of command
func (m *MockIrReceiver) PushCommand(command byte) {
	m.Push(IrData{Command: command})
}

// Decode reports the head of the queue
func (m *MockIrReceiver) Decode() (IrData, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.queue) == 0 {
		return IrData{}, false
	}
	m.decodes++
	return m.queue[0], true
}

// Resume drops the head of the queue
func (m *MockIrReceiver) Resume() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resumes++
	if len(m.queue) > 0 {
		m.queue = m.queue[1:]
	}
}

// Decodes returns how many successful Decode calls were made
func (m *MockIrReceiver) Decodes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.decodes
}

// Resumes returns how many Resume calls were made
func (m *MockIrReceiver) Resumes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.resumes
}

// Pending returns the number of queued decodes
func (m *MockIrReceiver) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.queue)
}
