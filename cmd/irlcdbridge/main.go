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

// irlcdbridge runs the bridge on a Linux board: an HD44780 behind an I2C
// backpack, the kernel LIRC receiver and a serial link to the host.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"github.com/ZaparooProject/go-irlcd/display/i2c"
	"github.com/ZaparooProject/go-irlcd/internal/config"
	"github.com/ZaparooProject/go-irlcd/ir/lirc"
	"github.com/ZaparooProject/go-irlcd/transport/uart"
	"github.com/golang/glog"
)

const defaultConfigPath = "/etc/irlcd.yaml"

// serialOpenRetries covers a USB gadget port that appears a few seconds
// after boot.
const serialOpenRetries = 30

func main() {
	configPath := flag.String("config", defaultConfigPath, "Path to the YAML configuration file")
	debug := flag.Bool("debug", false, "Enable debug logging (overrides the config file)")
	flag.Parse()
	defer glog.Flush()

	if err := run(*configPath, *debug); err != nil && !errors.Is(err, context.Canceled) {
		glog.Exitf("irlcdbridge: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err == nil {
		return cfg, nil
	}
	if path == defaultConfigPath && errors.Is(err, fs.ErrNotExist) {
		glog.Warningf("%s not found, using defaults", path)
		return config.Default(), nil
	}
	return nil, fmt.Errorf("config load failed: %w", err)
}

func run(configPath string, debug bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	irlcd.SetDebugEnabled(cfg.Debug || debug)

	display, err := i2c.New(cfg.Display.Bus, cfg.Display.Address)
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}
	defer func() { _ = display.Close() }()
	glog.Infof("display on bus %q at 0x%02X", cfg.Display.Bus, cfg.Display.Address)

	receiver, err := lirc.Open(cfg.IR.Device)
	if err != nil {
		return fmt.Errorf("ir receiver: %w", err)
	}
	defer func() { _ = receiver.Close() }()
	glog.Infof("ir receiver %s", cfg.IR.Device)

	link, err := uart.NewWithConfig(cfg.Serial.Port, &uart.Config{
		BaudRate:    cfg.Serial.Baud,
		OpenRetries: serialOpenRetries,
		RetryDelay:  time.Second,
	})
	if err != nil {
		return fmt.Errorf("serial link: %w", err)
	}
	defer func() { _ = link.Close() }()
	glog.Infof("serial link %s at %d baud", cfg.Serial.Port, cfg.Serial.Baud)

	bridge, err := irlcd.New(display, link, receiver, cfg.BridgeOptions()...)
	if err != nil {
		return fmt.Errorf("bridge: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = bridge.Run(ctx)
	stats := bridge.Stats()
	glog.Infof("stopped after %d iterations: %d frames, %d frame errors, %d IR events",
		stats.Iterations, stats.FramesRendered, stats.FrameErrors, stats.IrEvents)
	return err
}
