package z80asm

import (
	"strings"
	"testing"
)

func TestToIntelHexChecksum(t *testing.T) {
	hex := ToIntelHex([]byte{0x3E, 0x01, 0x76}, 0x0000)
	lines := strings.Split(strings.TrimRight(hex, "\r\n"), "\r\n")
	if len(lines) != 2 {
		t.Fatalf("expected a data record and an EOF record, got %d lines: %v", len(lines), lines)
	}
	want := ":030000003E0176"
	// checksum: 03+00+00+00+3E+01+76 = 0xB8, two's complement mod 256 = 0x48
	want += "48"
	if lines[0] != want {
		t.Fatalf("got %q, want %q", lines[0], want)
	}
	if lines[1] != ":00000001FF" {
		t.Fatalf("got %q, want EOF record", lines[1])
	}
}

func TestToIntelHexSplitsLongImages(t *testing.T) {
	image := make([]byte, 20)
	hex := ToIntelHex(image, 0)
	lines := strings.Split(strings.TrimRight(hex, "\r\n"), "\r\n")
	if len(lines) != 3 {
		t.Fatalf("expected 2 data records plus EOF, got %d: %v", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], ":10") {
		t.Fatalf("first record should carry 16 (0x10) bytes: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], ":04") {
		t.Fatalf("second record should carry the remaining 4 bytes: %q", lines[1])
	}
}
