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
	"context"
	"errors"
	"fmt"

	"github.com/golang/glog"
)

// Monitor reads device messages continuously and hands them to callbacks.
type Monitor struct {
	client    *Client
	throttler *Throttler

	// OnIrCommand is called for each accepted remote press
	OnIrCommand func(msg Message)
	// OnDebug is called for each device diagnostic
	OnDebug func(msg Message)
}

// NewMonitor creates a monitor. With a nil throttler every IR message is
// delivered.
func NewMonitor(client *Client, throttler *Throttler) *Monitor {
	return &Monitor{
		client:    client,
		throttler: throttler,
	}
}

// Throttler returns the throttler in use, or nil
func (m *Monitor) Throttler() *Throttler {
	return m.throttler
}

type readResult struct {
	err error
	msg Message
}

// Start reads until ctx is done or the stream fails. Reads block in a
// helper goroutine; it exits once the underlying stream is closed or
// returns an error.
func (m *Monitor) Start(ctx context.Context) error {
	results := make(chan readResult)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		for {
			msg, err := m.client.ReadMessage()
			select {
			case results <- readResult{msg: msg, err: err}:
			case <-stop:
				return
			}
			if err != nil && !isDecodeError(err) {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case res := <-results:
			if res.err != nil {
				if isDecodeError(res.err) {
					glog.V(1).Infof("skipping device line: %v", res.err)
					continue
				}
				return fmt.Errorf("read failed: %w", res.err)
			}
			m.dispatch(res.msg)
		}
	}
}

func (m *Monitor) dispatch(msg Message) {
	switch msg.Type {
	case MessageTypeIrCommand:
		if m.throttler != nil && !m.throttler.Dispatch(msg.Command, msg.Time) {
			glog.V(2).Infof("throttled command %d at %v", msg.Command, msg.Time)
			return
		}
		if m.OnIrCommand != nil {
			m.OnIrCommand(msg)
		}
	case MessageTypeDebug:
		if m.OnDebug != nil {
			m.OnDebug(msg)
		}
	}
}

func isDecodeError(err error) bool {
	return errors.Is(err, ErrMalformedMessage) || errors.Is(err, ErrUnknownMessage)
}
