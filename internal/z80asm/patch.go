// Forward-reference patch records and resolution.
//
// Pass 2 cannot always resolve a label the moment it encodes the
// instruction referencing it (the label may be defined later in the
// source), so it leaves a placeholder byte (or byte pair) in the output
// buffer and records a patch describing how to fill it in once every label
// is known. The Patcher below runs after Pass 2 completes.

package z80asm

import "fmt"

// patch describes one unresolved reference left behind by Pass 2.
type patch struct {
	Offset     int    // byte offset into the output image
	Label      string // referenced symbol name
	Line       int    // source line, for diagnostics
	IsRelative bool   // true for JR/DJNZ displacement bytes, false for absolute
	NextPC     uint16 // PC immediately after the relative operand byte, for displacement math
	Bias       int64  // constant added to the resolved label value (label+n forms)
}

// resolvePatches fills in every pending patch once the symbol table is
// complete, appending a diagnostic and leaving the placeholder bytes
// untouched for any patch whose label never got defined or whose relative
// displacement falls outside [-128, 127].
func resolvePatches(buf []byte, patches []patch, syms *SymbolTable, diags *diagnosticList) {
	for _, p := range patches {
		addr, ok := syms.Lookup(p.Label)
		if !ok {
			diags.errorf(p.Line, "undefined symbol: %s", p.Label)
			continue
		}
		value := int64(addr) + p.Bias

		if p.IsRelative {
			disp := value - int64(p.NextPC)
			if disp < -128 || disp > 127 {
				diags.errorf(p.Line, "Relative jump to '%s' out of range", p.Label)
				continue
			}
			buf[p.Offset] = byte(int8(disp))
			continue
		}

		buf[p.Offset] = byte(value)
		if p.Offset+1 < len(buf) {
			buf[p.Offset+1] = byte(value >> 8)
		}
	}
}

func (p patch) String() string {
	kind := "absolute"
	if p.IsRelative {
		kind = "relative"
	}
	return fmt.Sprintf("patch{offset=%d label=%s line=%d kind=%s}", p.Offset, p.Label, p.Line, kind)
}
