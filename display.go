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

// Display is a two-line character display with programmable glyph memory,
// such as an HD44780. Implementations write straight to the hardware.
type Display interface {
	// SetCursor moves the write position to col on row.
	SetCursor(col, row uint8) error

	// Write emits characters at the cursor, advancing it. Bytes 0-7 select
	// the programmed glyphs.
	Write(p []byte) (int, error)

	// CreateChar programs glyph into slot (0-7).
	CreateChar(slot uint8, glyph Glyph) error
}

// Splash is the text shown while the bridge starts, one string per line.
type Splash [2]string

// DefaultSplash asks for a host connection, framed with note glyphs.
var DefaultSplash = Splash{
	"\x07 \x07  please  \x07 \x07",
	" \x07 connect me \x07 ",
}

// Renderer positions the cursor and copies bytes to a Display. It keeps no
// picture of the screen: every call repaints the whole span it is given.
//
// Display errors are logged and dropped. A failed hardware write has no
// recovery at this layer, and the polling loop must keep running.
type Renderer struct {
	display Display
}

// NewRenderer creates a renderer over display.
func NewRenderer(display Display) *Renderer {
	return &Renderer{display: display}
}

// RenderLine moves to the start of line and writes the first length bytes
// of text verbatim. length is clamped to len(text).
func (r *Renderer) RenderLine(text []byte, line uint8, length int) {
	if length > len(text) {
		length = len(text)
	}
	if length < 0 {
		length = 0
	}
	if err := r.display.SetCursor(0, line); err != nil {
		debugf("set cursor to line %d failed: %v", line, err)
		return
	}
	if _, err := r.display.Write(text[:length]); err != nil {
		debugf("write to line %d failed: %v", line, err)
	}
}

// InstallGlyphs programs every slot of table, slot 0 first.
func (r *Renderer) InstallGlyphs(table *GlyphTable) {
	for slot := range table {
		if err := r.display.CreateChar(uint8(slot), table[slot]); err != nil {
			debugf("program glyph slot %d failed: %v", slot, err)
		}
	}
}

// ShowSplash renders both splash lines.
func (r *Renderer) ShowSplash(splash Splash) {
	for line, text := range splash {
		r.RenderLine([]byte(text), uint8(line), LineWidth)
	}
}
