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

package lirc

import (
	"encoding/binary"
	"testing"
	"time"

	irlcd "github.com/ZaparooProject/go-irlcd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(ts uint64, flags, proto uint16, keycode uint32, scancode uint64) []byte {
	b := make([]byte, scancodeSize)
	order := binary.NativeEndian
	order.PutUint64(b[0:8], ts)
	order.PutUint16(b[8:10], flags)
	order.PutUint16(b[10:12], proto)
	order.PutUint32(b[12:16], keycode)
	order.PutUint64(b[16:24], scancode)
	return b
}

func TestParseScancode(t *testing.T) {
	t.Parallel()

	sc, err := parseScancode(record(1_500_000, flagRepeat, uint16(ProtoNEC), 0, 0x0045))
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Microsecond, sc.Timestamp)
	assert.Equal(t, ProtoNEC, sc.Protocol)
	assert.Equal(t, uint64(0x45), sc.Scancode)

	_, err = parseScancode(make([]byte, 10))
	require.Error(t, err)
}

func TestScancode_IrData(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sc   Scancode
		want irlcd.IrData
	}{
		{
			name: "nec",
			sc:   Scancode{Protocol: ProtoNEC, Scancode: 0x0045},
			want: irlcd.IrData{Command: 69, Address: 0},
		},
		{
			name: "nec repeat",
			sc:   Scancode{Protocol: ProtoNEC, Scancode: 0x0716, Flags: flagRepeat},
			want: irlcd.IrData{Command: 0x16, Address: 0x07, Repeat: true},
		},
		{
			name: "necx",
			sc:   Scancode{Protocol: ProtoNECX, Scancode: 0x7F8018},
			want: irlcd.IrData{Command: 0x18, Address: 0x7F80},
		},
		{
			name: "nec32",
			sc:   Scancode{Protocol: ProtoNEC32, Scancode: 0x12344AB5},
			want: irlcd.IrData{Command: 0x4A, Address: 0x1234},
		},
		{
			name: "rc5 toggle is not a repeat",
			sc:   Scancode{Protocol: ProtoRC5, Scancode: 0x0010, Flags: flagToggle},
			want: irlcd.IrData{Command: 0x10},
		},
		{
			name: "sony",
			sc:   Scancode{Protocol: ProtoSony12, Scancode: 0x010015},
			want: irlcd.IrData{Command: 0x15, Address: 0x01},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.sc.IrData())
		})
	}
}
