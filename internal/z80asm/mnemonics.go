// Mnemonic, register, and directive sets used to classify identifiers at
// lex time. All lookups are case-insensitive; the lexer upper-cases the
// matched word before storing it in the Token. Registers and
// mnemonics/directives are split into two separate token kinds so the
// parser never has to re-inspect a word's spelling to tell them apart.

package z80asm

// registerNames is every token the lexer classifies as TokRegister:
// 8/16-bit registers, index-register halves, condition codes, and the
// alternate accumulator/flags pair.
var registerNames = map[string]bool{
	"A": true, "B": true, "C": true, "D": true, "E": true, "H": true, "L": true,
	"I": true, "R": true,
	"AF": true, "AF'": true, "BC": true, "DE": true, "HL": true, "SP": true,
	"IX": true, "IY": true,
	"IXH": true, "IXL": true, "IYH": true, "IYL": true,
	"NZ": true, "Z": true, "NC": true, "PO": true, "PE": true, "P": true, "M": true,
	// 8080 aliases: single-letter/PSW register-pair names.
	"PSW": true,
}

// instructionMnemonics is every Z80 instruction mnemonic (excluding
// directives, which are listed separately so they could eventually be
// split into their own token kind if the grammar ever needs it).
var instructionMnemonics = map[string]bool{
	"NOP": true, "HALT": true, "DI": true, "EI": true, "EXX": true,
	"RLCA": true, "RRCA": true, "RLA": true, "RRA": true,
	"DAA": true, "CPL": true, "SCF": true, "CCF": true,
	"NEG": true, "RETI": true, "RETN": true,
	"LDI": true, "LDIR": true, "CPI": true, "CPIR": true,
	"INI": true, "INIR": true, "OUTI": true, "OTIR": true,
	"LDD": true, "LDDR": true, "CPD": true, "CPDR": true,
	"IND": true, "INDR": true, "OUTD": true, "OTDR": true,
	"RLD": true, "RRD": true,
	"INC": true, "DEC": true,
	"ADD": true, "ADC": true, "SBC": true, "SUB": true,
	"AND": true, "OR": true, "XOR": true, "CP": true,
	"LD": true, "EX": true,
	"JP": true, "JR": true, "CALL": true, "RET": true, "DJNZ": true, "RST": true,
	"PUSH": true, "POP": true,
	"IN": true, "OUT": true,
	"BIT": true, "SET": true, "RES": true,
	"RLC": true, "RRC": true, "RL": true, "RR": true,
	"SLA": true, "SRA": true, "SRL": true,
	"IM": true,
	// 8080 mnemonics with no direct Z80 spelling collision.
	"MOV": true, "MVI": true, "LXI": true, "LDAX": true, "STAX": true,
	"INX": true, "DCX": true, "DAD": true, "INR": true, "DCR": true,
	"ADI": true, "ACI": true, "SUI": true, "SBI": true,
	"ANI": true, "XRI": true, "ORI": true,
	"LDA": true, "STA": true, "LHLD": true, "SHLD": true,
	"JMP": true, "PCHL": true, "SPHL": true, "XCHG": true, "XTHL": true,
	"HLT": true, "RAL": true, "RAR": true, "CMA": true, "STC": true,
	"CMC": true,
	// 8080 conditional jump/call/return mnemonics.
	"JZ": true, "JNZ": true, "JC": true, "JNC": true, "JPE": true, "JPO": true,
	"JM": true,
	"CZ": true, "CNZ": true, "CC": true, "CNC": true, "CPE": true, "CPO": true,
	"CM": true,
	"RZ": true, "RNZ": true, "RC": true, "RNC": true, "RPE": true, "RPO": true,
	"RP": true, "RM": true,
}

// directiveMnemonics lists pseudo-ops tokenised as TokMnemonic alongside
// real instructions.
var directiveMnemonics = map[string]bool{
	"ORG": true, "END": true,
	"EQU": true, "SET": true, "DEFC": true,
	"DB": true, "DEFB": true, "DEFM": true,
	"DW": true, "DEFW": true,
	"DS": true, "DEFS": true,
	"PUBLIC": true, "EXTERN": true, "GLOBAL": true,
	"MODULE": true, "SECTION": true,
	"IF": true, "ELSE": true, "ENDIF": true,
	"TITLE": true, "PAGE": true, "EJECT": true, "NAME": true, "MACLIB": true,
	"INCLUDE": true,
}

// isMnemonic reports whether word (already upper-cased) is a known
// instruction or directive.
func isMnemonic(word string) bool {
	return instructionMnemonics[word] || directiveMnemonics[word]
}

// isDirective reports whether word is a directive as opposed to a real
// instruction mnemonic.
func isDirective(word string) bool {
	return directiveMnemonics[word]
}

// isRegister reports whether word is a register or condition-code name.
func isRegister(word string) bool {
	return registerNames[word]
}
