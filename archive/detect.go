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

package archive

import (
	"fmt"
	"path/filepath"
	"strings"
)

// romExtensions are the cartridge-image extensions this tool processes:
// Genesis / Mega Drive and SNES dumps.
var romExtensions = map[string]bool{
	".bin": true,
	".md":  true,
	".sfc": true,
	".smc": true,
}

// IsROMFile checks if a filename has a recognized ROM extension.
// The check is case-insensitive.
func IsROMFile(filename string) bool {
	return romExtensions[strings.ToLower(filepath.Ext(filename))]
}

// FindROMFiles returns the paths of all files in the archive that carry a
// recognized ROM extension.
func FindROMFiles(arc Archive) ([]string, error) {
	files, err := arc.List()
	if err != nil {
		return nil, fmt.Errorf("list archive files: %w", err)
	}

	var roms []string
	for _, file := range files {
		if IsROMFile(file.Name) {
			roms = append(roms, file.Name)
		}
	}

	if len(roms) == 0 {
		return nil, NoROMFilesError{}
	}
	return roms, nil
}
