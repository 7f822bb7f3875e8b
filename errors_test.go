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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFrameError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		name    string
		wantGot int
		wantOK  bool
	}{
		{
			name:   "nil error",
			err:    nil,
			wantOK: false,
		},
		{
			name:    "frame error",
			err:     &FrameError{Got: 12},
			wantGot: 12,
			wantOK:  true,
		},
		{
			name:    "wrapped frame error",
			err:     fmt.Errorf("poll: %w", &FrameError{Got: 31}),
			wantGot: 31,
			wantOK:  true,
		},
		{
			name:   "bare sentinel",
			err:    ErrFrameLength,
			wantOK: false,
		},
		{
			name:   "unrelated error",
			err:    errors.New("boom"),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := IsFrameError(tt.err)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantGot, got)
		})
	}
}

func TestFrameError_Is(t *testing.T) {
	t.Parallel()

	err := &FrameError{Got: 0}
	assert.ErrorIs(t, err, ErrFrameLength)
	assert.Equal(t, "expected 33; got only 0 bytes of data", err.Error())
}

func TestTransportError(t *testing.T) {
	t.Parallel()

	base := errors.New("permission denied")
	err := NewTransportError("open", "/dev/ttyGS0", base)

	assert.Equal(t, "open /dev/ttyGS0: permission denied", err.Error())
	assert.ErrorIs(t, err, base)
	assert.Equal(t, "read: permission denied", NewTransportError("read", "", base).Error())
}
