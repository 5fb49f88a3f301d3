// Pass 1: walks the statement list once, assigning each instruction and
// data directive a program counter and binding every label to its address
// before Pass 2 emits a single byte. EQU/DEFC constants are evaluated
// immediately rather than deferred to point of use: with no macro layer
// to justify lazy re-evaluation, an EQU referencing an undefined label is
// reported as an error immediately instead of being deferred.

package z80asm

// pass1Result carries everything Pass 2 needs so it never has to
// re-derive sizing or label addresses and risk disagreeing with Pass 1.
type pass1Result struct {
	stmts    []statement
	pcAtLine []uint16 // PC at the start of each statement, parallel to stmts
	loadAddr uint16
	syms     *SymbolTable
	endLine  int // index into stmts of an END directive, or len(stmts)
}

func runPass1(stmts []statement, diags *diagnosticList) pass1Result {
	syms := NewSymbolTable()
	res := pass1Result{syms: syms}

	var pc uint16
	orgSeen := false
	endIdx := len(stmts)

	for idx, st := range stmts {
		constDef := st.Mnemonic == "EQU" || st.Mnemonic == "DEFC" ||
			(st.Mnemonic == "SET" && len(st.Operands) == 1)
		if st.Label != "" && !constDef {
			if !syms.Define(st.Label, pc) {
				diags.errorf(st.Line, "duplicate label definition: %s", st.Label)
			}
		}

		res.pcAtLine = append(res.pcAtLine, pc)

		switch st.Mnemonic {
		case "":
			continue
		case "END":
			endIdx = idx
		case "ORG":
			if len(st.Operands) != 1 {
				diags.errorf(st.Line, "ORG requires exactly one operand")
				continue
			}
			v, err := evalConstExpr(st.Operands[0], pc, syms)
			if err != nil {
				diags.errorf(st.Line, "ORG: %s", err)
				continue
			}
			pc = uint16(v)
			res.pcAtLine[idx] = pc
			if !orgSeen {
				res.loadAddr = pc
				orgSeen = true
			}
		case "EQU", "DEFC":
			if st.Label == "" || len(st.Operands) != 1 {
				diags.errorf(st.Line, "%s requires a label and one operand", st.Mnemonic)
				continue
			}
			v, err := evalConstExpr(st.Operands[0], pc, syms)
			if err != nil {
				diags.errorf(st.Line, "%s: %s", st.Mnemonic, err)
				continue
			}
			if !syms.Define(st.Label, uint16(v)) {
				diags.errorf(st.Line, "duplicate label definition: %s", st.Label)
			}
		case "SET":
			// SET as a constant-assignment directive (distinct from the
			// bit-manipulation SET instruction, disambiguated by a label
			// being present on this line).
			if st.Label != "" && len(st.Operands) == 1 {
				v, err := evalConstExpr(st.Operands[0], pc, syms)
				if err != nil {
					diags.errorf(st.Line, "SET: %s", err)
					continue
				}
				syms.Define(st.Label, uint16(v))
				continue
			}
			n := sizeOrDefault(st, diags)
			pc += uint16(n)
		case "PUBLIC", "EXTERN", "GLOBAL", "MODULE", "SECTION",
			"IF", "ELSE", "ENDIF", "TITLE", "PAGE", "EJECT", "NAME", "MACLIB", "INCLUDE":
			// Tokenised but inert: conditional assembly and linkage
			// directives are explicit non-goals.
		default:
			n := sizeOrDefault(st, diags)
			pc += uint16(n)
		}

		if st.Mnemonic == "END" {
			break
		}
	}

	for len(res.pcAtLine) < len(stmts) {
		res.pcAtLine = append(res.pcAtLine, pc)
	}

	res.stmts = stmts
	res.endLine = endIdx
	return res
}

func sizeOrDefault(st statement, diags *diagnosticList) int {
	n, ok := instructionSize(st.Mnemonic, st.Operands)
	if !ok {
		diags.errorf(st.Line, "unknown mnemonic: %s", st.Mnemonic)
	}
	return n
}

// evalConstExpr evaluates an ORG/EQU/DEFC/SET/DS operand, which must
// resolve immediately: an unresolved forward reference is reported as an
// error here rather than deferred to a patch record, since these
// directives affect sizing and label binding for every later line.
func evalConstExpr(toks []Token, pc uint16, syms *SymbolTable) (int64, error) {
	res, err := evalExpr(toks, pc, syms)
	if err != nil {
		return 0, err
	}
	if !res.resolved {
		return 0, errUndefined(res.label)
	}
	return res.value, nil
}

func errUndefined(label string) error {
	return &undefinedSymbolError{label: label}
}

type undefinedSymbolError struct{ label string }

func (e *undefinedSymbolError) Error() string {
	return "undefined symbol: " + e.label
}
