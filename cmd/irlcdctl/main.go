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

// irlcdctl drives an irlcd device from the host computer: it sends
// display frames, watches remote-control presses and lists candidate
// devices.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang/glog"
)

type config struct {
	devicePath *string
	mode       *string
	line1      *string
	line2      *string
	title      *string
	mqttURL    *string
	topic      *string
	length     *time.Duration
	throttle   *time.Duration
	openDelay  *time.Duration
	timeout    *time.Duration
	baud       *int
}

func parseFlags() *config {
	cfg := &config{
		devicePath: flag.String("device", "",
			"Serial device path (e.g., /dev/ttyACM0 or COM3). Leave empty for auto-detection."),
		mode:  flag.String("mode", modeMonitor, "Mode: send, monitor, progress or detect"),
		line1: flag.String("line1", "", "First display line (send mode)"),
		line2: flag.String("line2", "", "Second display line (send mode)"),
		title: flag.String("title", "Now playing", "Track title (progress mode)"),
		mqttURL: flag.String("mqtt", "",
			"Broker URL to mirror device messages to, e.g. mqtt://broker:1883/home (monitor mode)"),
		topic:     flag.String("topic", "irlcd/events", "MQTT topic below the URL prefix"),
		length:    flag.Duration("length", 30*time.Second, "Track length (progress mode)"),
		throttle:  flag.Duration("throttle", 200*time.Millisecond, "Minimum gap between presses of one button"),
		openDelay: flag.Duration("open-delay", 0, "Wait after opening the port, for boards that reset on open"),
		timeout:   flag.Duration("timeout", 5*time.Second, "Device detection timeout"),
		baud:      flag.Int("baud", 57600, "Serial baud rate"),
	}
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()
	defer glog.Flush()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runMode(ctx, cfg); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "irlcdctl: %v\n", err)
		glog.Flush()
		os.Exit(1)
	}
}
