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

package host

import (
	"sync"
	"time"
)

// DefaultThrottle is the minimum gap between two dispatches of one
// button. Held NEC buttons repeat roughly every 110 ms.
const DefaultThrottle = 200 * time.Millisecond

// Handler receives the device timestamp of a dispatched press
type Handler func(at time.Duration)

type throttleEntry struct {
	handler Handler
	window  time.Duration
	last    time.Duration
	seen    bool
}

// Throttler debounces remote buttons per command code.
type Throttler struct {
	entries [256]throttleEntry
	def     time.Duration
	mu      sync.Mutex
}

// NewThrottler creates a throttler; def <= 0 selects DefaultThrottle.
func NewThrottler(def time.Duration) *Throttler {
	if def <= 0 {
		def = DefaultThrottle
	}
	return &Throttler{def: def}
}

// On registers the handler for a command. A throttle <= 0 uses the
// throttler's default window.
func (t *Throttler) On(command byte, throttle time.Duration, fn Handler) {
	if throttle <= 0 {
		throttle = t.def
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	e := &t.entries[command]
	e.handler = fn
	e.window = throttle
}

// Dispatch reports whether a press at time at falls outside the window of
// the previous accepted press of the same command, and if so calls its
// handler. The first press of a command is always accepted, as is a
// press stamped earlier than the last one (the device restarted).
func (t *Throttler) Dispatch(command byte, at time.Duration) bool {
	t.mu.Lock()
	e := &t.entries[command]
	window := e.window
	if window == 0 {
		window = t.def
	}
	if e.seen && at >= e.last && at-e.last <= window {
		t.mu.Unlock()
		return false
	}
	e.seen = true
	e.last = at
	fn := e.handler
	t.mu.Unlock()

	if fn != nil {
		fn(at)
	}
	return true
}

// Reset forgets every command's last press, e.g. after the device
// restarted and its clock went back to zero.
func (t *Throttler) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.entries {
		t.entries[i].seen = false
		t.entries[i].last = 0
	}
}
