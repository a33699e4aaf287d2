package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildBinary builds the romfix binary into a temp dir and returns its path.
func buildBinary(t *testing.T) string {
	t.Helper()

	binPath := filepath.Join(t.TempDir(), "romfix")
	cmd := exec.Command("go", "build", "-o", binPath, "github.com/ZaparooProject/go-romfix/cmd/romfix")
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return binPath
}

// writeGenesisROM writes a minimal Genesis image with a wrong stored checksum.
func writeGenesisROM(t *testing.T, dir, name string) string {
	t.Helper()

	rom := make([]byte, 0x400)
	copy(rom[0x100:], "SEGA GENESIS")
	rom[0x18E] = 0x12
	rom[0x18F] = 0x34

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, rom, 0o644); err != nil {
		t.Fatalf("write test ROM: %v", err)
	}
	return path
}

func TestCLIVersion(t *testing.T) {
	binPath := buildBinary(t)

	output, err := exec.Command(binPath, "-version").CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run version command: %v", err)
	}
	if !strings.Contains(string(output), "romfix version") {
		t.Errorf("version output incorrect: %s", output)
	}
}

func TestCLIFixDirectory(t *testing.T) {
	binPath := buildBinary(t)
	dir := t.TempDir()
	writeGenesisROM(t, dir, "game.md")

	output, err := exec.Command(binPath, dir).CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run fix: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "checksum fixed") {
		t.Errorf("fix output incorrect: %s", output)
	}

	// A second run finds nothing left to do.
	output, err = exec.Command(binPath, dir).CombinedOutput()
	if err != nil {
		t.Fatalf("failed to re-run fix: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "already correct") {
		t.Errorf("re-run output incorrect: %s", output)
	}
}

func TestCLICheckDoesNotModify(t *testing.T) {
	binPath := buildBinary(t)
	dir := t.TempDir()
	path := writeGenesisROM(t, dir, "game.bin")

	before, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ROM: %v", err)
	}

	output, err := exec.Command(binPath, "-check", dir).CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run check: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), "checksum mismatch") {
		t.Errorf("check output incorrect: %s", output)
	}

	after, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("re-read ROM: %v", err)
	}
	if string(before) != string(after) {
		t.Error("check mode modified the ROM file")
	}
}

func TestCLIJSONOutput(t *testing.T) {
	binPath := buildBinary(t)
	dir := t.TempDir()
	writeGenesisROM(t, dir, "game.md")

	output, err := exec.Command(binPath, "-check", "-json", dir).CombinedOutput()
	if err != nil {
		t.Fatalf("failed to run json check: %v\n%s", err, output)
	}
	if !strings.Contains(string(output), `"Outcome"`) {
		t.Errorf("json output incorrect: %s", output)
	}
}
