// Package binary provides byte-slice helpers for reading and patching
// fields in ROM images held fully in memory.
package binary

import (
	"encoding/binary"
	"strings"
)

// WordBE reads a big-endian 16-bit word at off. The caller must ensure
// off+2 <= len(b).
func WordBE(b []byte, off int) uint16 {
	return binary.BigEndian.Uint16(b[off:])
}

// WordLE reads a little-endian 16-bit word at off. The caller must ensure
// off+2 <= len(b).
func WordLE(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off:])
}

// PutWordBE writes v as a big-endian 16-bit word at off.
func PutWordBE(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:], v)
}

// PutWordLE writes v as a little-endian 16-bit word at off.
func PutWordLE(b []byte, off int, v uint16) {
	binary.LittleEndian.PutUint16(b[off:], v)
}

// CleanString converts bytes to a string, truncating at the first null byte
// and trimming whitespace. Non-ASCII bytes are passed through untouched so
// that garbage input degrades to a failed comparison rather than an error.
func CleanString(b []byte) string {
	end := len(b)
	for i, c := range b {
		if c == 0 {
			end = i
			break
		}
	}
	return strings.TrimSpace(string(b[:end]))
}
