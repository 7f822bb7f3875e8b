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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendIrCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		want  string
		event IrEvent
	}{
		{
			name:  "scenario",
			event: IrEvent{Command: 69, Time: 15234 * time.Millisecond},
			want:  `{"type":"ircommand","command":69,"time":15234}` + "\n",
		},
		{
			name:  "zero",
			event: IrEvent{},
			want:  `{"type":"ircommand","command":0,"time":0}` + "\n",
		},
		{
			name:  "sub-millisecond truncated",
			event: IrEvent{Command: 255, Time: 1999 * time.Microsecond},
			want:  `{"type":"ircommand","command":255,"time":1}` + "\n",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, string(AppendIrCommand(nil, tt.event)))
		})
	}
}

func TestAppendDebug(t *testing.T) {
	t.Parallel()

	line := AppendDebug(nil, 20)
	assert.Equal(t, `{"type":"debug","message":"expected 33; got only 20 bytes of data"}`+"\n", string(line))

	var decoded struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(line, &decoded))
	assert.Equal(t, MessageTypeDebug, decoded.Type)
	assert.Equal(t, (&FrameError{Got: 20}).Error(), decoded.Message)
}

func TestAppendReusesBuffer(t *testing.T) {
	t.Parallel()

	buf := make([]byte, 0, 64)
	buf = AppendIrCommand(buf[:0], IrEvent{Command: 1})
	buf = AppendIrCommand(buf[:0], IrEvent{Command: 2})
	assert.Equal(t, `{"type":"ircommand","command":2,"time":0}`+"\n", string(buf))
}
