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

package romfix

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/go-romfix/archive"
)

// Scan returns the candidate ROM and archive paths under root, in directory
// order. With recursive set, subdirectories are walked too. The caller
// decides what to do with each candidate; Scan itself reads no file contents.
func Scan(root string, recursive bool) ([]string, error) {
	if recursive {
		return scanTree(root)
	}
	return scanDir(root)
}

// IsCandidate checks whether a file name looks like a ROM or an archive
// that may contain ROMs.
func IsCandidate(name string) bool {
	return archive.IsROMFile(name) || archive.IsArchiveExtension(filepath.Ext(name))
}

func scanDir(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsCandidate(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(root, entry.Name()))
	}
	return paths, nil
}

func scanTree(root string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsCandidate(d.Name()) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk directory: %w", err)
	}
	return paths, nil
}
