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

package detection

import (
	"path/filepath"
	"strings"
)

// DefaultBlocklist names USB serial devices that are never an irlcd board.
// Entries are "VID:PID" or a bare "VID" for a whole vendor, in hex.
func DefaultBlocklist() []string {
	return []string{
		"1A86:55D4", // WCH CH9102 on many GPS modules
		"10C4:EA71", // CP2102N in some Zigbee coordinators
		"0658:0200", // Aeotec Z-Stick Gen5
		"1CF1:0030", // dresden elektronik ConBee
	}
}

// FormatVIDPID turns the vendor and product IDs reported by a port
// enumerator into the canonical "VVVV:PPPP" form. IDs may carry a 0x prefix
// and fewer than four digits. ok is false when either ID is not a 16-bit
// hex number.
func FormatVIDPID(vid, pid string) (vidpid string, ok bool) {
	v, ok := formatUSBID(vid)
	if !ok {
		return "", false
	}
	p, ok := formatUSBID(pid)
	if !ok {
		return "", false
	}
	return v + ":" + p, true
}

// IsBlocked reports whether vidpid matches a blocklist entry. Entries that
// fail to parse are skipped.
func IsBlocked(vidpid string, blocklist []string) bool {
	vid, pid, ok := splitVIDPID(vidpid)
	if !ok || pid == "" {
		return false
	}
	for _, entry := range blocklist {
		bv, bp, ok := splitVIDPID(entry)
		if !ok || bv != vid {
			continue
		}
		if bp == "" || bp == pid {
			return true
		}
	}
	return false
}

// splitVIDPID parses "VID:PID" or "VID". pid is empty for the bare form.
func splitVIDPID(s string) (vid, pid string, ok bool) {
	s = strings.TrimSpace(s)
	rawVID, rawPID, hasPID := strings.Cut(s, ":")
	if vid, ok = formatUSBID(rawVID); !ok {
		return "", "", false
	}
	if !hasPID {
		return vid, "", true
	}
	if pid, ok = formatUSBID(rawPID); !ok {
		return "", "", false
	}
	return vid, pid, true
}

func formatUSBID(id string) (string, bool) {
	id = strings.TrimSpace(id)
	id = strings.TrimPrefix(strings.TrimPrefix(id, "0x"), "0X")
	if id == "" || len(id) > 4 {
		return "", false
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return "", false
		}
	}
	return strings.Repeat("0", 4-len(id)) + strings.ToUpper(id), true
}

// IsPathIgnored reports whether devicePath is one of ignorePaths. Paths are
// compared after cleaning and case folding, so "/dev/ttyACM0/" and
// "/DEV/ttyacm0" match.
func IsPathIgnored(devicePath string, ignorePaths []string) bool {
	if devicePath == "" {
		return false
	}
	want := canonicalPath(devicePath)
	for _, p := range ignorePaths {
		if p == "" {
			continue
		}
		if p == devicePath || canonicalPath(p) == want {
			return true
		}
	}
	return false
}

func canonicalPath(path string) string {
	return strings.ToLower(filepath.Clean(path))
}
