package fixer

import (
	"bytes"
	"testing"
)

func TestDetectConsole(t *testing.T) {
	genesisAndSNES := createSNESROM(0x8000, 0x7F00, 0x20, 7)
	copy(genesisAndSNES[0x100:], "SEGA GENESIS")

	tests := []struct {
		name string
		rom  []byte
		want Console
	}{
		{
			name: "Genesis",
			rom:  createGenesisROM(0x400, "SEGA GENESIS", 0),
			want: ConsoleGenesis,
		},
		{
			name: "Mega Drive",
			rom:  createGenesisROM(0x400, "SEGA MEGA DRIVE", 0),
			want: ConsoleGenesis,
		},
		{
			name: "SNES LoROM",
			rom:  createSNESROM(0x8000, 0x7F00, 0x20, 7),
			want: ConsoleSNES,
		},
		{
			name: "SNES with copier header",
			rom:  append(make([]byte, 512), createSNESROM(0x8000, 0x7F00, 0x20, 7)...),
			want: ConsoleSNES,
		},
		{
			name: "SNES satellite variant",
			rom: func() []byte {
				rom := make([]byte, 0x8000)
				rom[0x7F00+snesMapModeOffset] = 0x20
				rom[0x7F00+snesRegionOffset] = 0x30
				return rom
			}(),
			want: ConsoleSNES,
		},
		{
			name: "Genesis wins over SNES",
			rom:  genesisAndSNES,
			want: ConsoleGenesis,
		},
		{
			name: "zero buffer",
			rom:  make([]byte, 0x8000),
			want: ConsoleUnknown,
		},
		{
			name: "empty",
			rom:  nil,
			want: ConsoleUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectConsole(tt.rom); got != tt.want {
				t.Errorf("DetectConsole() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFixUnknownFormat(t *testing.T) {
	rom := make([]byte, 0x1000)
	orig := bytes.Clone(rom)

	report := Fix(rom)
	if report.Console != ConsoleUnknown {
		t.Errorf("Console = %v, want %v", report.Console, ConsoleUnknown)
	}
	if report.Outcome != OutcomeUnrecognized {
		t.Errorf("Outcome = %v, want %v", report.Outcome, OutcomeUnrecognized)
	}
	if !bytes.Equal(rom, orig) {
		t.Error("unrecognized image was mutated")
	}
}

func TestReportChanged(t *testing.T) {
	if !(&Report{Outcome: OutcomeFixed}).Changed() {
		t.Error("Changed() = false for fixed report")
	}
	if (&Report{Outcome: OutcomeAlreadyCorrect}).Changed() {
		t.Error("Changed() = true for already-correct report")
	}
	if (&Report{Outcome: OutcomeSkipped}).Changed() {
		t.Error("Changed() = true for skipped report")
	}
}
