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

// Package transport provides internal transport utilities
package transport

import (
	"errors"
	"time"
)

// ErrTimeout is returned when TimeoutRetry gives up
var ErrTimeout = errors.New("operation timed out")

// ErrRetriesExhausted is returned when WithRetry runs out of attempts
var ErrRetriesExhausted = errors.New("retries exhausted")

// Clock is the time source used by the retry helpers
type Clock interface {
	Uptime() time.Duration
	Sleep(d time.Duration)
}

// RetryOperation represents a function that can be retried
// Returns: data, shouldRetry, error
// - data: the result if successful
// - shouldRetry: true if the operation should be retried
// - error: any permanent error that should stop retries
type RetryOperation[T any] func() (T, bool, error)

// RetryConfig configures retry behavior
type RetryConfig struct {
	Clock       Clock
	OnRetry     func(attempt int) error
	Description string
	MaxRetries  int
	RetryDelay  time.Duration
}

// WithRetry executes an operation with retry logic
func WithRetry[T any](config RetryConfig, operation RetryOperation[T]) (T, error) {
	var zero T

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		result, shouldRetry, err := operation()
		if err != nil {
			return zero, err
		}

		if !shouldRetry {
			return result, nil
		}

		if attempt >= config.MaxRetries {
			break
		}

		if config.OnRetry != nil {
			if err := config.OnRetry(attempt + 1); err != nil {
				return zero, err
			}
		}

		if config.RetryDelay > 0 {
			sleep(config.Clock, config.RetryDelay)
		}
	}

	if config.Description != "" {
		return zero, errors.Join(ErrRetriesExhausted, errors.New(config.Description))
	}
	return zero, ErrRetriesExhausted
}

// TimeoutRetry keeps calling operation until it stops asking for a retry or
// timeout elapses on clock. The operation always runs at least once, and
// between attempts the helper sleeps for interval.
func TimeoutRetry[T any](clock Clock, timeout, interval time.Duration, operation RetryOperation[T]) (T, error) {
	var zero T
	deadline := clock.Uptime() + timeout

	for {
		result, shouldRetry, err := operation()
		if err != nil {
			return zero, err
		}

		if !shouldRetry {
			return result, nil
		}

		if clock.Uptime() >= deadline {
			return zero, ErrTimeout
		}

		clock.Sleep(interval)
	}
}

func sleep(clock Clock, d time.Duration) {
	if clock == nil {
		time.Sleep(d)
		return
	}
	clock.Sleep(d)
}
