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

//go:build tinygo

// firmware runs the bridge on an RP2040 board: an HD44780 in 4-bit GPIO
// mode, an NEC IR receiver module and the USB serial port to the host.
package main

import (
	"context"
	"machine"
	"runtime/interrupt"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"tinygo.org/x/drivers/hd44780"
	"tinygo.org/x/drivers/irremote"
)

// Pin assignments
const (
	pinLCDD4 = machine.GP2
	pinLCDD5 = machine.GP3
	pinLCDD6 = machine.GP4
	pinLCDD7 = machine.GP5
	pinLCDEN = machine.GP6
	pinLCDRS = machine.GP7
	pinIR    = machine.GP15
)

// lcd adapts the tinygo HD44780 driver to irlcd.Display. The driver
// buffers Write until Display, which sends bytes verbatim from the
// cursor.
type lcd struct {
	dev *hd44780.Device
}

func (l *lcd) SetCursor(col, row uint8) error {
	l.dev.SetCursor(col, row)
	return nil
}

func (l *lcd) Write(p []byte) (int, error) {
	n, err := l.dev.Write(p)
	if err != nil {
		return n, err
	}
	return n, l.dev.Display()
}

func (l *lcd) CreateChar(slot uint8, glyph irlcd.Glyph) error {
	l.dev.CreateCharacter(slot<<3, glyph[:])
	return nil
}

// link adapts machine.Serial. Its only ReadByte error is an empty buffer,
// which the bridge expects as irlcd.ErrNoData.
type link struct {
	machine.Serialer
}

func (l link) ReadByte() (byte, error) {
	b, err := l.Serialer.ReadByte()
	if err != nil {
		return 0, irlcd.ErrNoData
	}
	return b, nil
}

// remote latches the first decode from the interrupt handler until the
// bridge calls Resume, so no decode is overwritten before it is relayed.
type remote struct {
	data    irlcd.IrData
	pending bool
}

func (r *remote) handle(d irremote.Data) {
	if r.pending {
		return
	}
	r.data = irlcd.IrData{
		Address: d.Address,
		Command: byte(d.Command),
		Repeat:  d.Flags&irremote.DataFlagIsRepeat != 0,
	}
	r.pending = true
}

func (r *remote) Decode() (irlcd.IrData, bool) {
	state := interrupt.Disable()
	defer interrupt.Restore(state)
	return r.data, r.pending
}

func (r *remote) Resume() {
	state := interrupt.Disable()
	r.pending = false
	interrupt.Restore(state)
}

// halt blinks the onboard LED forever; there is no other way to report a
// setup failure without corrupting the serial protocol.
func halt() {
	led := machine.LED
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	for {
		led.High()
		time.Sleep(100 * time.Millisecond)
		led.Low()
		time.Sleep(100 * time.Millisecond)
	}
}

func main() {
	if err := machine.Serial.Configure(machine.UARTConfig{BaudRate: irlcd.DefaultBaudRate}); err != nil {
		halt()
	}

	dev, err := hd44780.NewGPIO4Bit(
		[]machine.Pin{pinLCDD4, pinLCDD5, pinLCDD6, pinLCDD7},
		pinLCDEN, pinLCDRS, machine.NoPin,
	)
	if err != nil {
		halt()
	}
	if err := dev.Configure(hd44780.Config{Width: irlcd.LineWidth, Height: 2}); err != nil {
		halt()
	}

	rem := &remote{}
	receiver := irremote.NewReceiver(pinIR)
	receiver.Configure()
	receiver.SetCommandHandler(rem.handle)

	bridge, err := irlcd.New(&lcd{dev: &dev}, link{machine.Serial}, rem)
	if err != nil {
		halt()
	}
	if err := bridge.Run(context.Background()); err != nil {
		halt()
	}
}
