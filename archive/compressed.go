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
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"
)

// CompressedFile treats a gzip- or xz-compressed single file as a one-entry
// archive. The entry name is the file name with the compression extension
// stripped, so "game.sfc.gz" lists as "game.sfc".
type CompressedFile struct {
	path string
	ext  string
}

// OpenCompressed opens a .gz or .xz compressed file.
func OpenCompressed(path string) (*CompressedFile, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".gz", ".xz":
	default:
		return nil, FormatError{Format: ext, Reason: "not a compressed file"}
	}

	// Fail early on missing files so Open behaves like the other formats.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat compressed file: %w", err)
	}

	return &CompressedFile{
		path: path,
		ext:  ext,
	}, nil
}

// List returns the single entry. The uncompressed size is not recorded in a
// way worth trusting for either format, so it is reported as unknown.
func (cf *CompressedFile) List() ([]FileInfo, error) {
	return []FileInfo{{
		Name: strings.TrimSuffix(filepath.Base(cf.path), filepath.Ext(cf.path)),
		Size: -1,
	}}, nil
}

// ReadFile decompresses and returns the single entry.
func (cf *CompressedFile) ReadFile(internalPath string) ([]byte, error) {
	entries, _ := cf.List()
	if !strings.EqualFold(filepath.ToSlash(internalPath), entries[0].Name) {
		return nil, FileNotFoundError{
			Archive:      cf.path,
			InternalPath: internalPath,
		}
	}

	file, err := os.Open(cf.path) //nolint:gosec // User-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("open compressed file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var reader io.Reader
	switch cf.ext {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("create gzip reader: %w", err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	case ".xz":
		xzr, err := xz.NewReader(file)
		if err != nil {
			return nil, fmt.Errorf("create xz reader: %w", err)
		}
		reader = xzr
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", cf.ext, err)
	}
	return data, nil
}

// Close releases resources. Compressed files hold nothing open between reads.
func (*CompressedFile) Close() error {
	return nil
}
