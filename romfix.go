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

// Package romfix inspects Sega Genesis / Mega Drive and Super Nintendo
// cartridge images and rewrites their embedded header checksums to match
// the computed content checksum. It detects the console format from the
// image contents, locates the correct header among the format's candidate
// offsets and patches the checksum fields per the format's numeric rules.
package romfix

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/go-romfix/archive"
	"github.com/ZaparooProject/go-romfix/fixer"
)

// Report is an alias for fixer.Report for convenience.
type Report = fixer.Report

// Console is an alias for fixer.Console for convenience.
type Console = fixer.Console

// Outcome is an alias for fixer.Outcome for convenience.
type Outcome = fixer.Outcome

// Re-export console constants for convenience.
const (
	ConsoleGenesis = fixer.ConsoleGenesis
	ConsoleSNES    = fixer.ConsoleSNES
	ConsoleUnknown = fixer.ConsoleUnknown
)

// Re-export outcome constants for convenience.
const (
	OutcomeAlreadyCorrect  = fixer.OutcomeAlreadyCorrect
	OutcomeFixed           = fixer.OutcomeFixed
	OutcomeUnrecognized    = fixer.OutcomeUnrecognized
	OutcomeStructuralError = fixer.OutcomeStructuralError
	OutcomeSkipped         = fixer.OutcomeSkipped
)

// DetectConsole detects the console format of an in-memory ROM image.
func DetectConsole(data []byte) Console {
	return fixer.DetectConsole(data)
}

// Fix corrects the checksum of an in-memory ROM image in place.
func Fix(data []byte) *Report {
	return fixer.Fix(data)
}

// Check reports the checksum status of an in-memory ROM image without
// mutating it.
func Check(data []byte) *Report {
	return fixer.Check(data)
}

// FixFile reads the ROM at path, corrects its checksum and writes the file
// back when it changed. The returned report describes the outcome even when
// the write-back fails.
func FixFile(path string) (*Report, error) {
	return processFile(path, true)
}

// CheckFile reads the ROM at path and reports its checksum status without
// modifying the file.
func CheckFile(path string) (*Report, error) {
	return processFile(path, false)
}

func processFile(path string, apply bool) (*Report, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided path is expected
	if err != nil {
		return nil, fmt.Errorf("read ROM file: %w", err)
	}

	var report *Report
	if apply {
		report = fixer.Fix(data)
	} else {
		report = fixer.Check(data)
	}
	report.FileName = filepath.Base(path)

	if apply && report.Changed() {
		if err := writeBack(path, data); err != nil {
			return report, err
		}
	}
	return report, nil
}

// writeBack rewrites the file in full, preserving its mode where possible.
func writeBack(path string, data []byte) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("write ROM file: %w", err)
	}
	return nil
}

// CheckArchive reports the checksum status of ROM files inside an archive.
// Archives are never rewritten. internalPath selects a single entry; when
// empty, every entry with a recognized ROM extension is checked.
func CheckArchive(path, internalPath string) ([]*Report, error) {
	arc, err := archive.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer func() { _ = arc.Close() }()

	entries := []string{internalPath}
	if internalPath == "" {
		entries, err = archive.FindROMFiles(arc)
		if err != nil {
			return nil, fmt.Errorf("scan archive %s: %w", path, err)
		}
	}

	reports := make([]*Report, 0, len(entries))
	for _, entry := range entries {
		data, err := arc.ReadFile(entry)
		if err != nil {
			return reports, fmt.Errorf("read %s from archive: %w", entry, err)
		}
		report := fixer.Check(data)
		report.FileName = path + "/" + entry
		reports = append(reports, report)
	}
	return reports, nil
}
