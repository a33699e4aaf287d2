// Copyright (c) 2025 The Zaparoo Project.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of go-romfix.
//
// go-romfix is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-romfix is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-romfix.  If not, see <https://www.gnu.org/licenses/>.

package fixer

import (
	bin "github.com/ZaparooProject/go-romfix/internal/binary"
)

// SNES header field offsets (relative to a candidate header base).
const (
	snesMapModeOffset    = 0xD5
	snesROMTypeOffset    = 0xD6
	snesROMSizeOffset    = 0xD7
	snesRAMSizeOffset    = 0xD8
	snesRegionOffset     = 0xD9
	snesComplementOffset = 0xDC
	snesChecksumOffset   = 0xDE

	// All header reads stay below base + snesHeaderSpan.
	snesHeaderSpan = 0xE0
)

// snesHeaderBases are the candidate header base offsets, in search order.
// Standard and extended variants of the LoROM and HiROM bank layouts each
// place the header at a different offset.
var snesHeaderBases = []int{0x7F00, 0xFF00, 0x407F00, 0x40FF00}

// snesHeaderNames labels each candidate base for display.
var snesHeaderNames = []string{"LoROM", "HiROM", "Ex-LoROM", "Ex-HiROM"}

// snesMapModes are the map-mode byte values a plausible header may carry.
var snesMapModes = map[byte]bool{
	0x20: true, 0x21: true, 0x22: true, 0x23: true, 0x25: true,
	0x30: true, 0x31: true, 0x32: true, 0x33: true, 0x35: true,
	0x3A: true,
}

// snesHeader is a located header instance within copier-stripped content.
type snesHeader struct {
	base      int
	index     int
	mapMode   byte
	satellite bool
}

// CopierOffset returns 512 when the image carries a legacy copier header
// (file size is 512 bytes past a 1 KiB multiple), otherwise 0. The offset
// applies to all SNES header-location arithmetic but never to Genesis.
func CopierOffset(data []byte) int {
	if len(data)%1024 == 512 {
		return 512
	}
	return 0
}

// snesHeaderPlausible checks whether the bytes at base look like a SNES
// header: map mode, cartridge type, size codes and region code must all be
// within valid ranges. Out-of-range reads fail the check for this base only.
func snesHeaderPlausible(content []byte, base int) bool {
	if base+snesHeaderSpan > len(content) {
		return false
	}

	if !snesMapModes[content[base+snesMapModeOffset]] {
		return false
	}
	if !snesROMTypePlausible(content[base+snesROMTypeOffset]) {
		return false
	}

	romSize := content[base+snesROMSizeOffset]
	ramSize := content[base+snesRAMSizeOffset]
	region := content[base+snesRegionOffset]
	return romSize > 6 && romSize < 0x0E && ramSize < 8 && region < 0x15
}

// snesROMTypePlausible checks the cartridge-type byte: plain ROM variants
// (< 3), or a known coprocessor nibble pair.
func snesROMTypePlausible(romType byte) bool {
	if romType < 3 {
		return true
	}
	switch romType >> 4 {
	case 0x0, 0x1, 0x2, 0x3, 0x4, 0x5, 0xE, 0xF:
	default:
		return false
	}
	switch romType & 0x0F {
	case 3, 4, 5, 6, 9:
		return true
	default:
		return false
	}
}

// snesSatelliteHeader checks for a Satellaview (BS-X) compatible header:
// a base map mode with a zero low nibble in the region byte. These share
// the structural shape of ordinary headers but are checksummed differently
// and must never be patched.
func snesSatelliteHeader(content []byte, base int) bool {
	if base+snesHeaderSpan > len(content) {
		return false
	}
	switch content[base+snesMapModeOffset] {
	case 0x20, 0x21, 0x30, 0x31:
	default:
		return false
	}
	return content[base+snesRegionOffset]&0x0F == 0
}

// findSNESHeader locates the SNES header in copier-stripped content. The
// candidate bases are tried in order and the first plausible one wins, with
// two exceptions: map modes 0x25/0x35 at a LoROM/HiROM base redirect to the
// extended base they point at (map mode >> 4) when that base also passes,
// and a Satellaview match is only returned if no ordinary header is found
// at any base.
func findSNESHeader(content []byte) (snesHeader, bool) {
	var satellite snesHeader
	haveSatellite := false

	for i, base := range snesHeaderBases {
		if base >= len(content) {
			// Larger bases only apply to larger images.
			break
		}

		if snesHeaderPlausible(content, base) {
			header := snesHeader{
				base:    base,
				index:   i,
				mapMode: content[base+snesMapModeOffset],
			}
			if i < 2 && (header.mapMode == 0x25 || header.mapMode == 0x35) {
				alt := int(header.mapMode >> 4)
				altBase := snesHeaderBases[alt]
				if snesHeaderPlausible(content, altBase) {
					return snesHeader{
						base:    altBase,
						index:   alt,
						mapMode: content[altBase+snesMapModeOffset],
					}, true
				}
			}
			return header, true
		}

		if !haveSatellite && snesSatelliteHeader(content, base) {
			satellite = snesHeader{
				base:      base,
				index:     i,
				mapMode:   content[base+snesMapModeOffset],
				satellite: true,
			}
			haveSatellite = true
		}
	}

	if haveSatellite {
		return satellite, true
	}
	return snesHeader{}, false
}

// SNESChecksum computes the checksum and complement for copier-stripped
// content with a header at base. Images smaller than their declared size
// are corrected for the console's mirroring behavior.
func SNESChecksum(content []byte, base int, mapMode byte) (checksum, complement uint16) {
	// Seed so that the checksum/complement field region contributes as if
	// it held the 0xFF,0xFF,0x00,0x00 placeholder (which sums to 0x01FE);
	// its actual bytes are subtracted here and added back in the full sum.
	s := 0x01FE
	for _, b := range content[base+snesComplementOffset : base+snesHeaderSpan] {
		s -= int(b)
	}
	for _, b := range content {
		s += int(b)
	}

	size := len(content)
	sizeCode := content[base+snesROMSizeOffset]
	// The size code is a power-of-two image size in KiB.
	declared := 1 << (uint(sizeCode) + 10)

	switch {
	case mapMode == 0x3A && sizeCode < 0x0D && size < declared:
		// Odd-sized fast ROM variant: the console reads every byte twice.
		s <<= 1
	case size < declared && size > 0x20000 && mapMode != 0x3A:
		// The missing tail is filled by address wrapping into the repeating
		// block at the end of the physical image.
		missing := declared - size
		dataRepeat := declared
		for dataRepeat > size {
			dataRepeat >>= 1
		}
		repeatOffset := size - dataRepeat
		if dataRepeat < size && repeatOffset > 0 {
			for j := 0; j < missing; j++ {
				s += int(content[j%repeatOffset+dataRepeat])
			}
		}
	}

	checksum = uint16(s)
	complement = ^checksum
	return checksum, complement
}

// snesFix locates the SNES header and corrects the little-endian complement
// and checksum fields in place. Satellaview images are reported but never
// mutated. When apply is false the image is left untouched.
func snesFix(data []byte, apply bool) *Report {
	report := &Report{Console: ConsoleSNES}

	copier := CopierOffset(data)
	content := data[copier:]

	header, ok := findSNESHeader(content)
	if !ok {
		report.Outcome = OutcomeUnrecognized
		report.Reason = "valid SNES ROM header not found"
		return report
	}
	report.Label = snesHeaderNames[header.index]

	if header.satellite {
		report.Outcome = OutcomeSkipped
		report.Reason = "Satellaview (BS-X) image, checksum not supported"
		return report
	}

	checksum, complement := SNESChecksum(content, header.base, header.mapMode)
	storedChecksum := bin.WordLE(content, header.base+snesChecksumOffset)
	storedComplement := bin.WordLE(content, header.base+snesComplementOffset)

	report.OldChecksum = storedChecksum
	report.NewChecksum = checksum

	if storedChecksum == checksum && storedComplement == complement {
		report.Outcome = OutcomeAlreadyCorrect
		return report
	}

	report.Outcome = OutcomeFixed
	if apply {
		bin.PutWordLE(data, copier+header.base+snesComplementOffset, complement)
		bin.PutWordLE(data, copier+header.base+snesChecksumOffset, checksum)
	}
	return report
}
