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
	"path/filepath"
	"strings"
)

// Path represents a parsed archive path with optional internal path.
type Path struct {
	ArchivePath  string // Path to the archive file
	InternalPath string // Path inside the archive (empty means all ROM entries)
}

// archiveExtensions are the supported archive extensions, in parse order.
var archiveExtensions = []string{".zip", ".7z", ".rar", ".gz", ".xz"}

// ParsePath parses a path that may reference a file inside an archive,
// like "/roms/pack.zip/games/game.sfc". It returns nil if the path does
// not reference an archive at all.
func ParsePath(path string) *Path {
	normalized := filepath.ToSlash(path)
	lower := strings.ToLower(normalized)

	for _, ext := range archiveExtensions {
		idx := strings.Index(lower, ext+"/")
		if idx == -1 {
			continue
		}
		return &Path{
			ArchivePath:  path[:idx+len(ext)],
			InternalPath: normalized[idx+len(ext)+1:],
		}
	}

	if IsArchiveExtension(filepath.Ext(path)) {
		return &Path{ArchivePath: path}
	}
	return nil
}
