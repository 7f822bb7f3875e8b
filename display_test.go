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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_RenderLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     []byte
		wantData []byte
		length   int
		line     uint8
	}{
		{
			name:     "full line",
			text:     []byte("Hello, World!   "),
			line:     0,
			length:   LineWidth,
			wantData: []byte("Hello, World!   "),
		},
		{
			name:     "glyph bytes pass through",
			text:     []byte{GlyphPlay, ' ', 'a', GlyphNote, 0x00, 0x07},
			line:     1,
			length:   6,
			wantData: []byte{GlyphPlay, ' ', 'a', GlyphNote, 0x00, 0x07},
		},
		{
			name:     "length shorter than text",
			text:     []byte("abcdef"),
			line:     1,
			length:   3,
			wantData: []byte("abc"),
		},
		{
			name:     "length clamped to text",
			text:     []byte("ab"),
			line:     0,
			length:   16,
			wantData: []byte("ab"),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			display := NewMockDisplay()
			NewRenderer(display).RenderLine(tt.text, tt.line, tt.length)

			ops := display.Ops()
			require.Len(t, ops, 2)
			assert.Equal(t, DisplayOp{Kind: OpSetCursor, Col: 0, Row: tt.line}, ops[0])
			assert.Equal(t, OpWrite, ops[1].Kind)
			assert.Equal(t, tt.wantData, ops[1].Data)
		})
	}
}

func TestRenderer_InstallGlyphsInSlotOrder(t *testing.T) {
	t.Parallel()

	display := NewMockDisplay()
	table := DefaultGlyphs()
	NewRenderer(display).InstallGlyphs(&table)

	ops := display.Ops()
	require.Len(t, ops, GlyphSlots)
	for slot, op := range ops {
		assert.Equal(t, OpCreateChar, op.Kind)
		assert.Equal(t, uint8(slot), op.Slot)
		assert.Equal(t, table[slot], op.Glyph)
	}
}

func TestRenderer_ShowSplash(t *testing.T) {
	t.Parallel()

	display := NewMockDisplay()
	NewRenderer(display).ShowSplash(DefaultSplash)

	assert.Equal(t, []byte(DefaultSplash[0]), display.Line(0))
	assert.Equal(t, []byte(DefaultSplash[1]), display.Line(1))
	assert.Len(t, DefaultSplash[0], LineWidth)
	assert.Len(t, DefaultSplash[1], LineWidth)
}

func TestRenderer_DisplayErrorsAreSwallowed(t *testing.T) {
	t.Parallel()

	display := NewMockDisplay()
	display.SetError(errors.New("i2c nack"))
	renderer := NewRenderer(display)

	assert.NotPanics(t, func() {
		table := DefaultGlyphs()
		renderer.InstallGlyphs(&table)
		renderer.RenderLine([]byte("text"), 0, 4)
	})

	// a failed cursor move skips the write
	ops := display.Ops()
	assert.Equal(t, OpSetCursor, ops[len(ops)-1].Kind)
}
