package binary

import "testing"

func TestWords(t *testing.T) {
	b := []byte{0x00, 0x12, 0x34, 0x00}

	if got := WordBE(b, 1); got != 0x1234 {
		t.Errorf("WordBE = 0x%04X, want 0x1234", got)
	}
	if got := WordLE(b, 1); got != 0x3412 {
		t.Errorf("WordLE = 0x%04X, want 0x3412", got)
	}

	PutWordBE(b, 0, 0xABCD)
	if b[0] != 0xAB || b[1] != 0xCD {
		t.Errorf("PutWordBE wrote %02X %02X, want AB CD", b[0], b[1])
	}

	PutWordLE(b, 2, 0xABCD)
	if b[2] != 0xCD || b[3] != 0xAB {
		t.Errorf("PutWordLE wrote %02X %02X, want CD AB", b[2], b[3])
	}
}

func TestCleanString(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"plain", []byte("SEGA GENESIS"), "SEGA GENESIS"},
		{"space padded", []byte("SEGA GENESIS    "), "SEGA GENESIS"},
		{"null terminated", []byte("SEGA\x00GENESIS"), "SEGA"},
		{"leading whitespace", []byte("  SEGA"), "SEGA"},
		{"empty", nil, ""},
		{"only nulls", []byte{0, 0, 0}, ""},
		{"non-ASCII passthrough", []byte{0xFF, 'A', 0xFE}, string([]byte{0xFF, 'A', 0xFE})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanString(tt.in); got != tt.want {
				t.Errorf("CleanString(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
