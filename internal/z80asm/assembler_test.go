package z80asm

import (
	"bytes"
	"strings"
	"testing"
)

func assembleOK(t *testing.T, source string) AssemblyResult {
	t.Helper()
	result := Assemble(source)
	if !result.Success() {
		t.Fatalf("expected successful assembly, got errors: %v", result.Errors)
	}
	return result
}

func TestE1HelloWorld(t *testing.T) {
	source := `        ORG  0100h
BDOS    EQU  0005h
PRINT   EQU  9
START:  LD   C,PRINT
        LD   DE,MSG
        CALL BDOS
        RET
MSG:    DEFM 'Hi'
        DB   0Dh,0Ah,'$'
        END  START
`
	result := assembleOK(t, source)
	if result.LoadAddr != 0x0100 {
		t.Fatalf("load address: got %#04x, want 0x0100", result.LoadAddr)
	}
	if len(result.Image) != 14 {
		t.Fatalf("image length: got %d, want 14", len(result.Image))
	}
	if got := result.Image[5:8]; !bytes.Equal(got, []byte{0xCD, 0x05, 0x00}) {
		t.Fatalf("CALL BDOS bytes: got % X, want CD 05 00", got)
	}
	if result.Image[8] != 0xC9 {
		t.Fatalf("RET byte: got %#02x, want 0xC9", result.Image[8])
	}
	msgAddr, ok := result.Symbols["MSG"]
	if !ok || msgAddr != 0x0109 {
		t.Fatalf("MSG symbol: got (%#04x, %v), want (0x0109, true)", msgAddr, ok)
	}
	if got := result.Image[9:14]; !bytes.Equal(got, []byte{0x48, 0x69, 0x0D, 0x0A, 0x24}) {
		t.Fatalf("MSG bytes: got % X, want 48 69 0D 0A 24", got)
	}
}

func TestE2ForwardReference(t *testing.T) {
	source := `        ORG 0100h
        JP  TARGET
        NOP
TARGET: HALT
`
	result := assembleOK(t, source)
	want := []byte{0xC3, 0x04, 0x01, 0x00, 0x76}
	if !bytes.Equal(result.Image, want) {
		t.Fatalf("got % X, want % X", result.Image, want)
	}
	if addr := result.Symbols["TARGET"]; addr != 0x0104 {
		t.Fatalf("TARGET: got %#04x, want 0x0104", addr)
	}
}

func TestE3RelativeJumpOutOfRange(t *testing.T) {
	source := `        ORG 0100h
        JR  FAR
        DS  200
FAR:    NOP
`
	result := Assemble(source)
	if result.Success() {
		t.Fatalf("expected assembly to fail")
	}
	found := false
	for _, d := range result.Errors {
		if strings.Contains(d.Message, "out of range") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an out-of-range diagnostic, got: %v", result.Errors)
	}
}

func TestE4DjnzLoop(t *testing.T) {
	source := `        ORG  0100h
        LD   B,10
LOOP:   DEC  B
        DJNZ LOOP
        RET
`
	result := assembleOK(t, source)
	want := []byte{0x06, 0x0A, 0x05, 0x10, 0xFD, 0xC9}
	if !bytes.Equal(result.Image, want) {
		t.Fatalf("got % X, want % X", result.Image, want)
	}
}

func TestE5EightyEightyEquivalence(t *testing.T) {
	a := assembleOK(t, "ORG 100h\nLXI H,1234h\nMOV A,M\nRET\n")
	b := assembleOK(t, "ORG 100h\nLD HL,1234h\nLD A,(HL)\nRET\n")
	want := []byte{0x21, 0x34, 0x12, 0x7E, 0xC9}
	if !bytes.Equal(a.Image, want) {
		t.Fatalf("8080 form: got % X, want % X", a.Image, want)
	}
	if !bytes.Equal(b.Image, want) {
		t.Fatalf("Z80 form: got % X, want % X", b.Image, want)
	}
}

func TestE6IndexedAddressing(t *testing.T) {
	source := `        ORG 0100h
        LD  A,(IX+5)
        LD  (IY-3),B
        BIT 7,(IX+0)
`
	result := assembleOK(t, source)
	want := []byte{0xDD, 0x7E, 0x05, 0xFD, 0x70, 0xFD, 0xDD, 0xCB, 0x00, 0x7E}
	if !bytes.Equal(result.Image, want) {
		t.Fatalf("got % X, want % X", result.Image, want)
	}
}

func TestDeterministicOutput(t *testing.T) {
	source := "ORG 100h\nLD A,1\nADD A,2\nRET\n"
	a := assembleOK(t, source)
	b := assembleOK(t, source)
	if !bytes.Equal(a.Image, b.Image) {
		t.Fatalf("two assemblies of the same source produced different images")
	}
	if a.HexText != b.HexText {
		t.Fatalf("two assemblies of the same source produced different HEX text")
	}
}

func TestHexTerminator(t *testing.T) {
	result := assembleOK(t, "ORG 100h\nNOP\nRET\n")
	if !strings.HasSuffix(result.HexText, ":00000001FF\r\n") {
		t.Fatalf("HEX output does not end with the EOF record: %q", result.HexText)
	}
}

func TestUndefinedLabelReportsError(t *testing.T) {
	result := Assemble("ORG 100h\nJP NOWHERE\n")
	if result.Success() {
		t.Fatalf("expected an error for a never-defined label")
	}
}

func TestDuplicateLabelReportsError(t *testing.T) {
	result := Assemble("LBL: NOP\nLBL: NOP\n")
	if result.Success() {
		t.Fatalf("expected an error for a duplicate label definition")
	}
}

func TestLdRegFromHLIncrement(t *testing.T) {
	result := assembleOK(t, "ORG 100h\nLD A,(HL+)\nRET\n")
	want := []byte{0x7E, 0x23, 0xC9}
	if !bytes.Equal(result.Image, want) {
		t.Fatalf("LD A,(HL+): got % X, want % X", result.Image, want)
	}
}

func TestDsFillByte(t *testing.T) {
	result := assembleOK(t, "ORG 100h\nDS 4,0FFh\nRET\n")
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xC9}
	if !bytes.Equal(result.Image, want) {
		t.Fatalf("DS with fill byte: got % X, want % X", result.Image, want)
	}
}

func TestDsDefaultsToZeroFill(t *testing.T) {
	result := assembleOK(t, "ORG 100h\nDS 3\nRET\n")
	want := []byte{0x00, 0x00, 0x00, 0xC9}
	if !bytes.Equal(result.Image, want) {
		t.Fatalf("DS with no fill operand: got % X, want % X", result.Image, want)
	}
}

func TestDwUndefinedSymbolReportsRealLine(t *testing.T) {
	source := "ORG 100h\nNOP\nNOP\nDW NOWHERE\n"
	result := Assemble(source)
	if result.Success() {
		t.Fatalf("expected an error for a never-defined label in DW")
	}
	if len(result.Errors) != 1 || result.Errors[0].Line != 4 {
		t.Fatalf("expected a single error on line 4, got %v", result.Errors)
	}
}

func TestDbDollarBindsToOwnStatementPC(t *testing.T) {
	// The DB statement sits at 0102h; its own "$" operand must evaluate
	// to 0102h (low byte 02h here), not PC 0.
	source := "ORG 100h\nNOP\nNOP\nDB $\n"
	result := assembleOK(t, source)
	want := []byte{0x00, 0x00, 0x02}
	if !bytes.Equal(result.Image, want) {
		t.Fatalf("DB $: got % X, want % X", result.Image, want)
	}
}
