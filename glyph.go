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

import "fmt"

// GlyphSlots is the number of programmable character slots on the display.
const GlyphSlots = 8

// GlyphRows is the number of pixel rows in a glyph.
const GlyphRows = 8

// Glyph is a 5x8 custom character. Each row uses its low five bits, the
// most significant of those being the leftmost pixel.
type Glyph [GlyphRows]byte

// GlyphTable holds one glyph per display slot. A frame byte in the range
// 0-7 renders the glyph at that index instead of a character.
type GlyphTable [GlyphSlots]Glyph

// Slot indexes of the default glyph table.
const (
	GlyphPlay byte = iota
	GlyphPause
	GlyphSpeaker
	GlyphVolumeLow
	GlyphVolumeHigh
	GlyphBar
	GlyphThumb
	GlyphNote
)

var (
	glyphPlay = Glyph{
		0b10000,
		0b11000,
		0b11100,
		0b11110,
		0b11100,
		0b11000,
		0b10000,
		0b00000,
	}
	glyphPause = Glyph{
		0b11011,
		0b11011,
		0b11011,
		0b11011,
		0b11011,
		0b11011,
		0b11011,
		0b00000,
	}
	glyphSpeaker = Glyph{
		0b00001,
		0b00011,
		0b11111,
		0b11111,
		0b11111,
		0b00011,
		0b00001,
		0b00000,
	}
	glyphVolumeLow = Glyph{
		0b00000,
		0b10000,
		0b01000,
		0b01000,
		0b01000,
		0b10000,
		0b00000,
		0b00000,
	}
	glyphVolumeHigh = Glyph{
		0b00100,
		0b10010,
		0b01010,
		0b01010,
		0b01010,
		0b10010,
		0b00100,
		0b00000,
	}
	glyphBar = Glyph{
		0b00000,
		0b00000,
		0b00000,
		0b10101,
		0b10101,
		0b00000,
		0b00000,
		0b00000,
	}
	glyphThumb = Glyph{
		0b00000,
		0b01110,
		0b11111,
		0b11111,
		0b11111,
		0b11111,
		0b01110,
		0b00000,
	}
	glyphNote = Glyph{
		0b00010,
		0b00011,
		0b00010,
		0b00010,
		0b01110,
		0b11110,
		0b11110,
		0b01100,
	}
)

// DefaultGlyphs returns the media-player glyph set, in slot order.
func DefaultGlyphs() GlyphTable {
	return GlyphTable{
		GlyphPlay:       glyphPlay,
		GlyphPause:      glyphPause,
		GlyphSpeaker:    glyphSpeaker,
		GlyphVolumeLow:  glyphVolumeLow,
		GlyphVolumeHigh: glyphVolumeHigh,
		GlyphBar:        glyphBar,
		GlyphThumb:      glyphThumb,
		GlyphNote:       glyphNote,
	}
}

// Validate reports rows that use pixels outside the 5-pixel width.
func (t *GlyphTable) Validate() error {
	for slot, glyph := range t {
		for row, bits := range glyph {
			if bits&^0x1F != 0 {
				return fmt.Errorf("%w: glyph %d row %d has bits outside 5 pixels: %#02x",
					ErrInvalidParameter, slot, row, bits)
			}
		}
	}
	return nil
}

// String draws the glyph with '#' for lit pixels, one row per line.
func (g Glyph) String() string {
	buf := make([]byte, 0, GlyphRows*6)
	for _, bits := range g {
		for col := 4; col >= 0; col-- {
			if bits&(1<<col) != 0 {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
