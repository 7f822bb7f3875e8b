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

// Package detection finds candidate serial links and LCD backpacks for the
// bridge without the caller having to know device paths up front.
package detection

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"
)

var (
	// ErrNoDevicesFound is returned when a detector finds nothing usable
	ErrNoDevicesFound = errors.New("no devices found")

	// ErrDetectionTimeout is returned when the context expires mid-scan
	ErrDetectionTimeout = errors.New("detection timed out")

	// ErrUnsupportedPlatform is returned by detectors with no backend for
	// the running OS
	ErrUnsupportedPlatform = errors.New("detection not supported on this platform")
)

// Mode controls how intrusive detection is allowed to be.
type Mode int

const (
	// Passive only enumerates; it never talks to a device.
	Passive Mode = iota
	// Safe touches well-known addresses with harmless reads.
	Safe
	// Full probes every plausible address.
	Full
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Passive:
		return "passive"
	case Safe:
		return "safe"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Confidence ranks how likely a result is to be the device we want.
type Confidence int

const (
	Low Confidence = iota
	Medium
	High
)

// String returns the confidence name
func (c Confidence) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("confidence(%d)", int(c))
	}
}

// DeviceInfo describes one detected device.
type DeviceInfo struct {
	Metadata   map[string]string
	Transport  string // "uart" or "i2c"
	Path       string
	Name       string
	Confidence Confidence
}

// Options configures detection
type Options struct {
	IgnorePaths []string
	Blocklist   []string
	Timeout     time.Duration
	Mode        Mode
}

// DefaultOptions returns passive detection with a 5 second budget and the
// default blocklist.
func DefaultOptions() Options {
	return Options{
		Mode:      Passive,
		Timeout:   5 * time.Second,
		Blocklist: DefaultBlocklist(),
	}
}

// Detector finds devices on one kind of transport.
type Detector interface {
	Detect(ctx context.Context, opts *Options) ([]DeviceInfo, error)
	Transport() string
}

var (
	registryMu sync.RWMutex
	registry   = map[string]Detector{}
)

// RegisterDetector adds a detector to the registry. Registering the same
// transport twice replaces the earlier detector.
func RegisterDetector(d Detector) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[d.Transport()] = d
}

// Detectors returns the registered detectors sorted by transport name.
func Detectors() []Detector {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Detector, 0, len(registry))
	for _, d := range registry {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Transport() < out[j].Transport()
	})
	return out
}

// DetectAll runs every registered detector with a background context.
func DetectAll(opts *Options) ([]DeviceInfo, error) {
	return DetectAllContext(context.Background(), opts)
}

// DetectAllContext runs every registered detector and merges the results,
// highest confidence first. Detector errors are ignored unless nothing at
// all was found.
func DetectAllContext(ctx context.Context, opts *Options) ([]DeviceInfo, error) {
	if opts == nil {
		defaults := DefaultOptions()
		opts = &defaults
	}
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	var (
		devices []DeviceInfo
		errs    []error
	)
	for _, d := range Detectors() {
		found, err := d.Detect(ctx, opts)
		if err != nil {
			if !errors.Is(err, ErrNoDevicesFound) && !errors.Is(err, ErrUnsupportedPlatform) {
				errs = append(errs, fmt.Errorf("%s: %w", d.Transport(), err))
			}
			continue
		}
		devices = append(devices, found...)
	}

	if len(devices) == 0 {
		if ctx.Err() != nil {
			return nil, ErrDetectionTimeout
		}
		if len(errs) > 0 {
			return nil, errors.Join(append([]error{ErrNoDevicesFound}, errs...)...)
		}
		return nil, ErrNoDevicesFound
	}

	sort.SliceStable(devices, func(i, j int) bool {
		return devices[i].Confidence > devices[j].Confidence
	})
	return devices, nil
}
