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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGlyphs(t *testing.T) {
	t.Parallel()

	table := DefaultGlyphs()
	assert.Len(t, table, GlyphSlots)
	require.NoError(t, table.Validate())

	assert.Equal(t, glyphPlay, table[GlyphPlay])
	assert.Equal(t, glyphNote, table[GlyphNote])
	assert.Equal(t, glyphThumb, table[GlyphThumb])
}

func TestDefaultGlyphs_ReturnsCopy(t *testing.T) {
	t.Parallel()

	table := DefaultGlyphs()
	table[GlyphPlay][0] = 0x1F

	assert.Equal(t, byte(0b10000), DefaultGlyphs()[GlyphPlay][0])
}

func TestGlyphTable_Validate(t *testing.T) {
	t.Parallel()

	table := DefaultGlyphs()
	table[3][5] = 0x20

	err := table.Validate()
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "glyph 3 row 5")
}

func TestGlyph_String(t *testing.T) {
	t.Parallel()

	want := "#....\n##...\n###..\n####.\n###..\n##...\n#....\n.....\n"
	assert.Equal(t, want, glyphPlay.String())
}
