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

// Genesis header offsets
const (
	genesisSignatureOffset = 0x100
	genesisSignatureEnd    = 0x110
	genesisChecksumOffset  = 0x18E
	genesisSumStart        = 0x200

	// Minimum image size that can hold the checksum field.
	genesisMinSize = genesisChecksumOffset + 2
)

// Genesis signature strings found at 0x100, padded to 16 bytes with spaces.
var genesisSignatures = []string{
	"SEGA MEGA DRIVE",
	"SEGA GENESIS",
}

// detectGenesis checks for a Genesis/Mega Drive signature at 0x100.
// It never fails; an undersized image simply doesn't match.
func detectGenesis(data []byte) bool {
	if len(data) < genesisSignatureEnd {
		return false
	}
	sig := bin.CleanString(data[genesisSignatureOffset:genesisSignatureEnd])
	for _, want := range genesisSignatures {
		if sig == want {
			return true
		}
	}
	return false
}

// GenesisChecksum computes the Genesis boot checksum: the sum of big-endian
// 16-bit words from 0x200 to the end of the image, with 16-bit wraparound.
// The header and vector table are excluded, matching the console's own boot
// routine. A dangling final byte of an odd-length image is ignored.
func GenesisChecksum(data []byte) uint16 {
	var sum uint16
	for i := genesisSumStart; i+1 < len(data); i += 2 {
		sum += bin.WordBE(data, i)
	}
	return sum
}

// genesisFix corrects the big-endian checksum field at 0x18E. When apply is
// false the image is left untouched and the report describes what a fix
// would do.
func genesisFix(data []byte, apply bool) *Report {
	report := &Report{Console: ConsoleGenesis}

	if len(data) < genesisMinSize {
		report.Outcome = OutcomeStructuralError
		report.Reason = "ROM too small for Genesis checksum"
		return report
	}

	stored := bin.WordBE(data, genesisChecksumOffset)
	computed := GenesisChecksum(data)

	report.OldChecksum = stored
	report.NewChecksum = computed

	if stored == computed {
		report.Outcome = OutcomeAlreadyCorrect
		return report
	}

	report.Outcome = OutcomeFixed
	if apply {
		bin.PutWordBE(data, genesisChecksumOffset, computed)
	}
	return report
}
