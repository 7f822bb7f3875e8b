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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"github.com/ZaparooProject/go-irlcd/host"
	"github.com/ZaparooProject/go-irlcd/host/mqtt"
	"github.com/golang/glog"
)

const (
	modeSend     = "send"
	modeMonitor  = "monitor"
	modeProgress = "progress"
	modeDetect   = "detect"
)

// updateInterval caps display refreshes at 10 per second.
const updateInterval = 100 * time.Millisecond

// overlayDuration is how long the position overlay stays up.
const overlayDuration = 4 * time.Second

func runMode(ctx context.Context, cfg *config) error {
	switch *cfg.mode {
	case modeDetect:
		return runDetect(ctx, cfg)
	case modeSend, modeMonitor, modeProgress:
	default:
		return fmt.Errorf("unknown mode %q", *cfg.mode)
	}

	port, path, err := openPort(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = port.Close() }()
	glog.V(1).Infof("opened %s", path)

	client := host.NewClient(port)
	switch *cfg.mode {
	case modeSend:
		return runSend(client, *cfg.line1, *cfg.line2)
	case modeProgress:
		return runProgress(ctx, client, *cfg.title, *cfg.length)
	default:
		return runMonitor(ctx, client, port, cfg)
	}
}

func runDetect(ctx context.Context, cfg *config) error {
	devices, err := discoverDevices(ctx, *cfg.timeout)
	if err != nil {
		return err
	}
	for _, d := range devices {
		_, _ = fmt.Printf("%-5s %-24s %-7s %s\n", d.Transport, d.Path, d.Confidence, d.Name)
	}
	return nil
}

func runSend(client *host.Client, line1, line2 string) error {
	if err := client.Show(composeText(line1, line2)); err != nil {
		return err
	}
	_, _ = fmt.Println("Frame sent")
	return nil
}

// composeText lays out two plain lines of text.
func composeText(line1, line2 string) *host.Screen {
	s := host.NewScreen()
	s.WriteString(0, 0, line1, irlcd.LineWidth)
	s.WriteString(1, 0, line2, irlcd.LineWidth)
	return s
}

// composeProgress lays out a playback screen: the title or the position
// overlay on top, the progress bar below.
func composeProgress(title string, position, length time.Duration, overlay bool) *host.Screen {
	s := host.NewScreen()
	if overlay {
		s.WriteString(0, 0, host.FormatTime(position)+" / "+host.FormatTime(length), irlcd.LineWidth)
	} else {
		s.SetGlyph(0, 0, irlcd.GlyphPlay)
		s.WriteString(0, 2, title, irlcd.LineWidth-2)
	}
	s.ProgressBar(1, position, length)
	return s
}

func runProgress(ctx context.Context, client *host.Client, title string, length time.Duration) error {
	ticker := time.NewTicker(updateInterval)
	defer ticker.Stop()

	start := time.Now()
	for {
		position := min(time.Since(start), length)
		if err := client.Show(composeProgress(title, position, length, position < overlayDuration)); err != nil {
			return err
		}
		if position >= length {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func runMonitor(ctx context.Context, client *host.Client, port io.Closer, cfg *config) error {
	var publisher *mqtt.Publisher
	if *cfg.mqttURL != "" {
		p, err := mqtt.NewPublisher(*cfg.mqttURL, *cfg.topic)
		if err != nil {
			return err
		}
		if err := p.Connect(); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
		defer func() { _ = p.Close() }()
		publisher = p
		_, _ = fmt.Printf("Mirroring to MQTT topic %s\n", p.Topic())
	}

	monitor := host.NewMonitor(client, host.NewThrottler(*cfg.throttle))
	monitor.OnIrCommand = func(msg host.Message) {
		_, _ = fmt.Println(formatEvent(msg))
		if publisher != nil {
			if err := publisher.Publish(msg); err != nil {
				glog.Warningf("mqtt publish failed: %v", err)
			}
		}
	}
	monitor.OnDebug = func(msg host.Message) {
		_, _ = fmt.Println(formatEvent(msg))
	}

	// Reads block; closing the port is what unblocks them.
	go func() {
		<-ctx.Done()
		_ = port.Close()
	}()

	_, _ = fmt.Println("Monitoring remote presses... (Ctrl+C to quit)")
	err := monitor.Start(ctx)
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func formatEvent(msg host.Message) string {
	switch msg.Type {
	case host.MessageTypeIrCommand:
		return fmt.Sprintf("[%10s] button 0x%02X (%d)", msg.Time, msg.Command, msg.Command)
	case host.MessageTypeDebug:
		if n, ok := msg.FrameBytes(); ok {
			return fmt.Sprintf("device rejected a frame: %d of %d bytes arrived", n, irlcd.BufferSize)
		}
		return "device: " + msg.Text
	default:
		return string(msg.Raw)
	}
}
