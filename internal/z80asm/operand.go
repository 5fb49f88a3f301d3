// Operand parsing: splits the token list following a mnemonic into
// comma-separated operand token groups, and classifies each group into a
// typed Operand rather than concatenating tokens back into strings and
// re-splitting them inside individual directive handlers. Operands stay
// as typed token slices end to end, so sizing and encoding never have to
// re-parse text to recover what shape an operand is.

package z80asm

// OperandKind classifies a parsed instruction operand.
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandReg              // plain register or condition-code name
	OperandIndReg           // (BC) (DE) (HL) (SP) (C) (IX) (IY)
	OperandIndRegInc        // (HL+) pseudo-op: LD r,(HL); INC HL
	OperandIndexed          // (IX+d) (IY+d)
	OperandIndAddr          // (expr)
	OperandImm              // bare expr: number, $, label, label±n
	OperandString           // quoted string literal (data directives)
)

// Operand is one parsed instruction argument.
type Operand struct {
	Kind OperandKind
	Reg  string  // canonical register/condition name, for Reg/IndReg/Indexed
	Disp []Token // displacement expression, for Indexed
	Expr []Token // value expression, for IndAddr/Imm
	Str  string  // literal text, for String
}

// splitOperands breaks toks (everything after the mnemonic up to the
// line's NewLine/EOF) into comma-separated groups, respecting a single
// level of parenthesis nesting so "(IX+1),A" splits correctly.
func splitOperands(toks []Token) [][]Token {
	var groups [][]Token
	var cur []Token
	depth := 0
	for _, t := range toks {
		switch t.Kind {
		case TokLeftParen:
			depth++
			cur = append(cur, t)
		case TokRightParen:
			depth--
			cur = append(cur, t)
		case TokComma:
			if depth == 0 {
				groups = append(groups, cur)
				cur = nil
				continue
			}
			cur = append(cur, t)
		default:
			cur = append(cur, t)
		}
	}
	if len(cur) > 0 {
		groups = append(groups, cur)
	}
	return groups
}

// parseOperand classifies a single operand's token group.
func parseOperand(toks []Token) Operand {
	if len(toks) == 0 {
		return Operand{Kind: OperandNone}
	}
	if len(toks) == 1 && toks[0].Kind == TokString {
		return Operand{Kind: OperandString, Str: toks[0].Val}
	}
	if toks[0].Kind == TokLeftParen && toks[len(toks)-1].Kind == TokRightParen {
		inner := toks[1 : len(toks)-1]
		if len(inner) == 2 && inner[0].Kind == TokRegister && inner[0].Val == "HL" &&
			inner[1].Kind == TokPlus {
			return Operand{Kind: OperandIndRegInc, Reg: "HL"}
		}
		if len(inner) == 1 && inner[0].Kind == TokRegister {
			return Operand{Kind: OperandIndReg, Reg: normalizeReg(inner[0].Val)}
		}
		if len(inner) >= 2 && inner[0].Kind == TokRegister &&
			(inner[0].Val == "IX" || inner[0].Val == "IY") &&
			(inner[1].Kind == TokPlus || inner[1].Kind == TokMinus) {
			disp := inner[1:]
			if inner[1].Kind == TokPlus {
				disp = inner[2:]
			}
			return Operand{Kind: OperandIndexed, Reg: inner[0].Val, Disp: disp}
		}
		if len(inner) == 1 && inner[0].Kind == TokIdentifier && inner[0].Val == "M" {
			return Operand{Kind: OperandIndReg, Reg: "HL"}
		}
		return Operand{Kind: OperandIndAddr, Expr: inner}
	}
	if len(toks) == 1 && toks[0].Val == "M" {
		// Bare 8080 "M" outside of parens always means memory-via-HL here
		// ("MOV A,M", "ADD M", ...). dispatch classifies every operand
		// through this function before JP/CALL/RET look for a condition,
		// so the Z80 "M" (minus) condition code is never recognised.
		return Operand{Kind: OperandIndReg, Reg: "HL"}
	}
	if len(toks) == 1 && toks[0].Kind == TokRegister {
		return Operand{Kind: OperandReg, Reg: normalizeReg(toks[0].Val)}
	}
	return Operand{Kind: OperandImm, Expr: toks}
}

// normalizeReg maps 8080 register aliases onto their Z80 spellings.
func normalizeReg(name string) string {
	switch name {
	case "PSW":
		return "AF"
	case "M":
		return "HL"
	}
	return name
}

// reg8Codes is the 3-bit register field encoding shared by most 8-bit ALU
// and load instructions: B=0 C=1 D=2 E=3 H=4 L=5 A=7; 6 is reserved for
// (HL), handled by callers directly since it is not a plain register
// operand.
var reg8Codes = map[string]byte{
	"B": 0, "C": 1, "D": 2, "E": 3, "H": 4, "L": 5, "A": 7,
}

// reg8IndexHalves maps IX/IY half-registers onto the same 3-bit field as
// their HL counterparts; callers must also emit the DD/FD prefix.
var reg8IndexHalves = map[string]byte{
	"IXH": 4, "IXL": 5, "IYH": 4, "IYL": 5,
}

// reg16Codes is the 2-bit pair encoding used by most 16-bit instructions:
// BC=0 DE=1 HL=2 SP=3.
var reg16Codes = map[string]byte{
	"BC": 0, "DE": 1, "HL": 2, "SP": 3,
}

// reg16PushPopCodes is the PUSH/POP variant, where slot 3 is AF, not SP.
var reg16PushPopCodes = map[string]byte{
	"BC": 0, "DE": 1, "HL": 2, "AF": 3,
}

// condCodes is the 3-bit condition encoding: NZ=0 Z=1 NC=2 C=3 PO=4 PE=5
// P=6 M=7.
var condCodes = map[string]byte{
	"NZ": 0, "Z": 1, "NC": 2, "C": 3, "PO": 4, "PE": 5, "P": 6, "M": 7,
}

// jrCondCodes is the restricted set JR/conditional-JR and DJNZ accept.
var jrCondCodes = map[string]bool{"NZ": true, "Z": true, "NC": true, "C": true}

func isCond(name string) bool {
	_, ok := condCodes[name]
	return ok
}
