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
	"context"
	"fmt"
	"time"
)

const (
	// DefaultSettleDelay keeps the splash readable before frames arrive
	DefaultSettleDelay = time.Second
	// DefaultIdleInterval is the pause after an idle loop iteration
	DefaultIdleInterval = time.Millisecond
)

// Config holds the bridge settings
type Config struct {
	Glyphs GlyphTable
	Splash Splash
	// ReadTimeout bounds the wait for each byte of an inbound frame
	ReadTimeout time.Duration
	// SettleDelay is how long the splash stays up before polling starts
	SettleDelay time.Duration
	// IdleInterval is slept after an iteration that found nothing to do
	IdleInterval time.Duration
}

// DefaultConfig returns the default bridge configuration
func DefaultConfig() *Config {
	return &Config{
		Glyphs:       DefaultGlyphs(),
		Splash:       DefaultSplash,
		ReadTimeout:  DefaultReadTimeout,
		SettleDelay:  DefaultSettleDelay,
		IdleInterval: DefaultIdleInterval,
	}
}

// Stats counts what the polling loop has done since startup
type Stats struct {
	Iterations     uint64
	FramesRendered uint64
	FrameErrors    uint64
	IrEvents       uint64
}

// Bridge ties a display, a serial link and an IR receiver together.
//
// Thread Safety: Bridge is NOT thread-safe. Init, Poll and Run must be
// called from a single goroutine, which then has exclusive use of the
// display, the serial link and the receiver.
type Bridge struct {
	display  Display
	serial   SerialChannel
	ir       IrReceiver
	clock    Clock
	config   *Config
	renderer *Renderer
	receiver *FrameReceiver
	relay    *Relay
	debugBuf []byte
	stats    Stats
	ready    bool
}

// New creates a bridge over the three devices
func New(display Display, serial SerialChannel, ir IrReceiver, opts ...Option) (*Bridge, error) {
	if display == nil || serial == nil || ir == nil {
		return nil, fmt.Errorf("%w: display, serial and IR receiver are required", ErrInvalidParameter)
	}

	bridge := &Bridge{
		display:  display,
		serial:   serial,
		ir:       ir,
		clock:    NewSystemClock(),
		config:   DefaultConfig(),
		debugBuf: make([]byte, 0, 80),
	}

	for _, opt := range opts {
		if err := opt(bridge); err != nil {
			return nil, err
		}
	}

	bridge.renderer = NewRenderer(display)
	bridge.receiver = NewFrameReceiver(serial, bridge.clock, bridge.config.ReadTimeout)
	bridge.relay = NewRelay(serial, ir, bridge.clock)
	return bridge, nil
}

// Init programs the glyph table, shows the splash and waits the settle
// delay. It may run only once per bridge.
func (b *Bridge) Init() error {
	if b.ready {
		return ErrAlreadyInitialized
	}

	b.renderer.InstallGlyphs(&b.config.Glyphs)
	b.renderer.ShowSplash(b.config.Splash)
	if b.config.SettleDelay > 0 {
		b.clock.Sleep(b.config.SettleDelay)
	}

	b.ready = true
	debugln("bridge initialized")
	return nil
}

// Poll runs one loop iteration: the IR receiver first, then the serial
// link. It reports whether either had anything to service.
func (b *Bridge) Poll() bool {
	b.stats.Iterations++
	busy := false

	if b.relay.Poll() {
		b.stats.IrEvents++
		busy = true
	}

	if b.serial.Buffered() > 0 {
		b.serviceFrame()
		busy = true
	}

	return busy
}

// Run initializes the bridge if needed and polls until ctx is done. A
// frame read in progress always completes before ctx is checked.
func (b *Bridge) Run(ctx context.Context) error {
	if !b.ready {
		if err := b.Init(); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !b.Poll() && b.config.IdleInterval > 0 {
			b.clock.Sleep(b.config.IdleInterval)
		}
	}
}

// Stats returns the loop counters
func (b *Bridge) Stats() Stats {
	return b.stats
}

// Config returns the active configuration
func (b *Bridge) Config() Config {
	return *b.config
}

// serviceFrame reads one frame attempt and renders or reports it.
func (b *Bridge) serviceFrame() {
	f, err := b.receiver.Receive()
	if got, ok := IsFrameError(err); ok {
		b.stats.FrameErrors++
		b.debugBuf = AppendDebug(b.debugBuf[:0], got)
		if _, werr := b.serial.Write(b.debugBuf); werr != nil {
			debugf("diagnostic write failed: %v", werr)
		}
		return
	}
	if err != nil {
		debugf("frame read failed: %v", err)
		return
	}

	b.renderer.RenderLine(f.Line(0), 0, LineWidth)
	b.renderer.RenderLine(f.Line(1), 1, LineWidth)
	b.stats.FramesRendered++
}
