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

// Package i2c drives an HD44780 character display behind a PCF8574 I2C
// backpack, the common 16x2 LCD module
package i2c

import (
	"fmt"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"
)

const (
	// DefaultAddress is the PCF8574T backpack address.
	DefaultAddress = 0x27
	// AlternateAddress is the PCF8574AT backpack address.
	AlternateAddress = 0x3F

	busSpeed = 100 * physic.KiloHertz
)

// PCF8574 pin assignment on the backpack.
const (
	pinRS        = 0x01
	pinEnable    = 0x04
	pinBacklight = 0x08
)

// HD44780 instructions.
const (
	cmdClear         = 0x01
	cmdEntryMode     = 0x04
	cmdDisplayCtrl   = 0x08
	cmdFunctionSet   = 0x20
	cmdSetCGRAMAddr  = 0x40
	cmdSetDDRAMAddr  = 0x80
	entryIncrement   = 0x02
	displayOn        = 0x04
	functionTwoLines = 0x08
)

var rowOffsets = [...]byte{0x00, 0x40, 0x14, 0x54}

// Option configures a Display
type Option func(*Display)

// WithSize sets the display geometry, 16x2 by default
func WithSize(cols, rows uint8) Option {
	return func(d *Display) {
		d.cols, d.rows = cols, rows
	}
}

// WithSleep replaces time.Sleep for the controller's settle delays
func WithSleep(sleep func(time.Duration)) Option {
	return func(d *Display) {
		d.sleep = sleep
	}
}

// Display implements irlcd.Display
type Display struct {
	dev       *i2c.Dev
	closer    i2c.BusCloser
	sleep     func(time.Duration)
	busName   string
	cols      uint8
	rows      uint8
	backlight byte
}

// New opens the I2C bus by name ("1", "/dev/i2c-1", or "" for the first
// bus) and initializes the display at addr.
func New(busName string, addr uint16, opts ...Option) (*Display, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("failed to open I2C bus %s: %w", busName, err)
	}

	_ = bus.SetSpeed(busSpeed) // Ignore error, continue with default speed

	display, err := NewWithBus(bus, addr, opts...)
	if err != nil {
		_ = bus.Close()
		return nil, err
	}
	display.closer = bus
	display.busName = busName
	return display, nil
}

// NewWithBus initializes a display on an already open bus. The 16x2 mode,
// left-to-right entry without autoscroll, display on and cursor off are
// set here.
func NewWithBus(bus i2c.Bus, addr uint16, opts ...Option) (*Display, error) {
	d := &Display{
		dev:       &i2c.Dev{Addr: addr, Bus: bus},
		sleep:     time.Sleep,
		busName:   bus.String(),
		cols:      irlcd.LineWidth,
		rows:      2,
		backlight: pinBacklight,
	}
	for _, opt := range opts {
		opt(d)
	}

	if err := d.init(); err != nil {
		return nil, irlcd.NewTransportError("init display", d.busName, err)
	}
	return d, nil
}

// init runs the HD44780 4-bit power-on sequence.
func (d *Display) init() error {
	d.sleep(50 * time.Millisecond)
	if err := d.dev.Tx([]byte{d.backlight}, nil); err != nil {
		return err
	}

	// Three 8-bit function sets resynchronize the controller whatever
	// nibble phase it was left in, then the fourth switches to 4 bits.
	for _, wait := range []time.Duration{4500 * time.Microsecond, 4500 * time.Microsecond, 150 * time.Microsecond} {
		if err := d.dev.Tx(d.nibble(0x30, 0), nil); err != nil {
			return err
		}
		d.sleep(wait)
	}
	if err := d.dev.Tx(d.nibble(0x20, 0), nil); err != nil {
		return err
	}

	for _, cmd := range []byte{
		cmdFunctionSet | functionTwoLines,
		cmdDisplayCtrl | displayOn,
		cmdEntryMode | entryIncrement,
	} {
		if err := d.command(cmd); err != nil {
			return err
		}
	}
	return d.Clear()
}

// nibble returns the two bus writes that latch the high nibble of b.
func (d *Display) nibble(b, mode byte) []byte {
	v := b&0xF0 | mode | d.backlight
	return []byte{v | pinEnable, v}
}

// frame encodes data as nibble pairs in one bus transfer.
func (d *Display) frame(data []byte, mode byte) []byte {
	out := make([]byte, 0, len(data)*4)
	for _, b := range data {
		out = append(out, d.nibble(b, mode)...)
		out = append(out, d.nibble(b<<4, mode)...)
	}
	return out
}

func (d *Display) command(cmd byte) error {
	return d.dev.Tx(d.frame([]byte{cmd}, 0), nil)
}

// Clear blanks the display and homes the cursor
func (d *Display) Clear() error {
	if err := d.command(cmdClear); err != nil {
		return err
	}
	d.sleep(2 * time.Millisecond)
	return nil
}

// SetCursor moves the DDRAM address to col on row
func (d *Display) SetCursor(col, row uint8) error {
	if row >= d.rows || int(row) >= len(rowOffsets) {
		return fmt.Errorf("%w: row %d on a %d-row display", irlcd.ErrInvalidParameter, row, d.rows)
	}
	return d.command(cmdSetDDRAMAddr | (rowOffsets[row] + col))
}

// Write sends p as character data at the cursor
func (d *Display) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := d.dev.Tx(d.frame(p, pinRS), nil); err != nil {
		return 0, fmt.Errorf("failed to write %d characters: %w", len(p), err)
	}
	return len(p), nil
}

// CreateChar programs glyph into CGRAM slot (0-7)
func (d *Display) CreateChar(slot uint8, glyph irlcd.Glyph) error {
	if slot >= irlcd.GlyphSlots {
		return fmt.Errorf("%w: glyph slot %d", irlcd.ErrInvalidParameter, slot)
	}
	if err := d.command(cmdSetCGRAMAddr | slot<<3); err != nil {
		return err
	}
	_, err := d.Write(glyph[:])
	return err
}

// SetBacklight switches the backlight
func (d *Display) SetBacklight(on bool) error {
	if on {
		d.backlight = pinBacklight
	} else {
		d.backlight = 0
	}
	return d.dev.Tx([]byte{d.backlight}, nil)
}

// Close releases the bus if New opened it
func (d *Display) Close() error {
	if d.closer == nil {
		return nil
	}
	if err := d.closer.Close(); err != nil {
		return fmt.Errorf("failed to close I2C bus %s: %w", d.busName, err)
	}
	return nil
}
