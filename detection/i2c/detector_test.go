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

package i2c

import (
	"testing"

	"github.com/ZaparooProject/go-irlcd/detection"
	"github.com/stretchr/testify/assert"
)

func TestCandidateAddresses(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []uint8{0x27, 0x3F}, candidateAddresses(detection.Passive))
	assert.Equal(t, []uint8{0x27, 0x3F}, candidateAddresses(detection.Safe))

	full := candidateAddresses(detection.Full)
	assert.Len(t, full, 16)
	assert.Equal(t, uint8(0x20), full[0])
	assert.Equal(t, uint8(0x27), full[7])
	assert.Equal(t, uint8(0x38), full[8])
	assert.Equal(t, uint8(0x3F), full[15])
}

func TestConfidenceFor(t *testing.T) {
	t.Parallel()

	assert.Equal(t, detection.Medium, confidenceFor(0x27))
	assert.Equal(t, detection.Medium, confidenceFor(0x3F))
	assert.Equal(t, detection.Low, confidenceFor(0x22))
}

func TestDetector_Transport(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "i2c", New().Transport())
}
