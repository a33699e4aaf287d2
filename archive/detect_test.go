package archive

import (
	"errors"
	"testing"
)

type fakeArchive struct {
	files []FileInfo
}

func (fa *fakeArchive) List() ([]FileInfo, error) { return fa.files, nil }

func (*fakeArchive) ReadFile(string) ([]byte, error) { return nil, nil }

func (*fakeArchive) Close() error { return nil }

func TestIsROMFile(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"game.bin", true},
		{"game.md", true},
		{"game.sfc", true},
		{"game.smc", true},
		{"GAME.SFC", true},
		{"game.iso", false},
		{"game.sfc.bak", false},
		{"readme.txt", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsROMFile(tt.name); got != tt.want {
			t.Errorf("IsROMFile(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFindROMFiles(t *testing.T) {
	arc := &fakeArchive{files: []FileInfo{
		{Name: "readme.txt", Size: 10},
		{Name: "games/sonic.md", Size: 0x80000},
		{Name: "games/mario.sfc", Size: 0x100000},
	}}

	roms, err := FindROMFiles(arc)
	if err != nil {
		t.Fatalf("FindROMFiles() error = %v", err)
	}
	want := []string{"games/sonic.md", "games/mario.sfc"}
	if len(roms) != len(want) {
		t.Fatalf("FindROMFiles() = %v, want %v", roms, want)
	}
	for i := range want {
		if roms[i] != want[i] {
			t.Errorf("roms[%d] = %q, want %q", i, roms[i], want[i])
		}
	}
}

func TestFindROMFilesEmpty(t *testing.T) {
	arc := &fakeArchive{files: []FileInfo{
		{Name: "readme.txt", Size: 10},
	}}

	_, err := FindROMFiles(arc)
	var noROMs NoROMFilesError
	if !errors.As(err, &noROMs) {
		t.Errorf("FindROMFiles() error = %v, want NoROMFilesError", err)
	}
}
