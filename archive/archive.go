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

// Package archive provides read-only access to ROM files stored inside
// archives. It supports ZIP, 7z and RAR archives as well as gzip- and
// xz-compressed single files. Archived ROMs can be checked but never
// rewritten.
package archive

import (
	"path/filepath"
	"strings"
)

// FileInfo contains information about a file in an archive.
type FileInfo struct {
	// Name is the full path within the archive.
	Name string

	// Size is the uncompressed size, or -1 if unknown until decompression.
	Size int64
}

// Archive provides read access to files within an archive.
type Archive interface {
	// List returns all files in the archive.
	List() ([]FileInfo, error)

	// ReadFile reads the full contents of a file within the archive.
	// Checksum fixing needs the whole image in memory, so there is no
	// streaming variant.
	ReadFile(internalPath string) ([]byte, error)

	// Close closes the archive.
	Close() error
}

// Open opens an archive file based on its extension.
// Supported formats: .zip, .7z, .rar, .gz, .xz
func Open(path string) (Archive, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".zip":
		return OpenZIP(path)
	case ".7z":
		return OpenSevenZip(path)
	case ".rar":
		return OpenRAR(path)
	case ".gz", ".xz":
		return OpenCompressed(path)
	default:
		return nil, FormatError{Format: ext}
	}
}

// IsArchiveExtension checks if an extension is a supported archive format.
func IsArchiveExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".zip", ".7z", ".rar", ".gz", ".xz":
		return true
	default:
		return false
	}
}
