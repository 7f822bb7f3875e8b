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

// Package host is the computer side of the irlcd serial link. It composes
// display frames, decodes the messages the device sends back and turns
// remote-control presses into throttled callbacks.
package host

import (
	"strconv"
	"time"
	"unicode/utf8"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"github.com/ZaparooProject/go-irlcd/internal/frame"
)

const (
	// Unknown replaces characters the display cannot show
	Unknown byte = '?'
	// Space is the blank cell
	Space byte = ' '
)

// Frame is a composed display payload.
type Frame [frame.PayloadSize]byte

// Bytes returns the payload followed by the sentinel, ready to write.
func (f Frame) Bytes() []byte {
	out := make([]byte, 0, frame.BufferSize)
	out = append(out, f[:]...)
	return append(out, frame.Sentinel)
}

// Line returns one 16-byte display line
func (f Frame) Line(n int) []byte {
	line1, line2 := frame.Split(f[:])
	if n == 0 {
		return line1
	}
	return line2
}

// Screen is a 2x16 character buffer. Writes outside the screen are
// clipped and no cell can ever hold the frame sentinel.
type Screen struct {
	cells Frame
}

// NewScreen returns a blank screen
func NewScreen() *Screen {
	s := &Screen{}
	s.Clear()
	return s
}

// Clear blanks both lines
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = Space
	}
}

// Set stores a raw byte at line, col.
func (s *Screen) Set(line, col int, b byte) {
	if line < 0 || line >= frame.Lines || col < 0 || col >= frame.LineWidth {
		return
	}
	if b == frame.Sentinel {
		b = Unknown
	}
	s.cells[line*frame.LineWidth+col] = b
}

// WriteString writes text at line, col over exactly width cells, padding
// with spaces. Runes above 0x7F become '?'. A width <= 0 uses the rune
// count of text.
func (s *Screen) WriteString(line, col int, text string, width int) {
	if width <= 0 {
		width = utf8.RuneCountInString(text)
	}
	for i := 0; i < width; i++ {
		b := Space
		if text != "" {
			r, size := utf8.DecodeRuneInString(text)
			text = text[size:]
			b = SafeChar(r)
		}
		s.Set(line, col+i, b)
	}
}

// SetGlyph places a custom glyph slot at line, col
func (s *Screen) SetGlyph(line, col int, slot byte) {
	if slot >= irlcd.GlyphSlots {
		slot = Unknown
	}
	s.Set(line, col, slot)
}

// Fill sets every cell of a line to b
func (s *Screen) Fill(line int, b byte) {
	for col := 0; col < frame.LineWidth; col++ {
		s.Set(line, col, b)
	}
}

// ProgressBar draws a track of bar glyphs with the thumb glyph at the
// position's share of the line.
func (s *Screen) ProgressBar(line int, position, total time.Duration) {
	s.Fill(line, irlcd.GlyphBar)
	idx := 0
	if total > 0 && position > 0 {
		idx = int(int64(position) * frame.LineWidth / int64(total))
	}
	s.SetGlyph(line, min(idx, frame.LineWidth-1), irlcd.GlyphThumb)
}

// VolumeBar draws a speaker, a level glyph and a 14-cell track with the
// thumb at volume percent.
func (s *Screen) VolumeBar(line int, volume int) {
	volume = max(0, min(volume, 100))

	s.Fill(line, irlcd.GlyphBar)
	s.SetGlyph(line, 0, irlcd.GlyphSpeaker)
	switch {
	case volume == 0:
		s.Set(line, 1, Space)
	case volume < 50:
		s.SetGlyph(line, 1, irlcd.GlyphVolumeLow)
	default:
		s.SetGlyph(line, 1, irlcd.GlyphVolumeHigh)
	}
	s.SetGlyph(line, volume*13/100+2, irlcd.GlyphThumb)
}

// Frame returns a copy of the buffer
func (s *Screen) Frame() Frame {
	return s.cells
}

// SafeChar maps a rune onto the display's ASCII range.
func SafeChar(r rune) byte {
	if r < 0 || r > 0x7F {
		return Unknown
	}
	return byte(r)
}

// FormatTime renders d as m:ss, rounded to the nearest second.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d.Round(time.Second) / time.Second)
	out := strconv.AppendInt(make([]byte, 0, 8), secs/60, 10)
	out = append(out, ':', byte('0'+secs%60/10), byte('0'+secs%10))
	return string(out)
}
