package archive

import "testing"

func TestParsePath(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantArchive  string
		wantInternal string
		wantNil      bool
	}{
		{
			name:         "zip with internal path",
			path:         "roms/pack.zip/games/game.sfc",
			wantArchive:  "roms/pack.zip",
			wantInternal: "games/game.sfc",
		},
		{
			name:         "7z with internal path",
			path:         "pack.7z/game.md",
			wantArchive:  "pack.7z",
			wantInternal: "game.md",
		},
		{
			name:        "bare archive",
			path:        "pack.rar",
			wantArchive: "pack.rar",
		},
		{
			name:        "compressed single file",
			path:        "game.sfc.gz",
			wantArchive: "game.sfc.gz",
		},
		{
			name:         "case-insensitive extension",
			path:         "PACK.ZIP/GAME.SFC",
			wantArchive:  "PACK.ZIP",
			wantInternal: "GAME.SFC",
		},
		{
			name:    "plain ROM file",
			path:    "game.sfc",
			wantNil: true,
		},
		{
			name:    "plain directory",
			path:    "roms/snes",
			wantNil: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParsePath(tt.path)
			if tt.wantNil {
				if got != nil {
					t.Fatalf("ParsePath() = %+v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("ParsePath() = nil, want non-nil")
			}
			if got.ArchivePath != tt.wantArchive {
				t.Errorf("ArchivePath = %q, want %q", got.ArchivePath, tt.wantArchive)
			}
			if got.InternalPath != tt.wantInternal {
				t.Errorf("InternalPath = %q, want %q", got.InternalPath, tt.wantInternal)
			}
		})
	}
}
