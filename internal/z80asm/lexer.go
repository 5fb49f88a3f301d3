// One-shot tokeniser: source text in, a flat Token slice out.
//
// Lex runs as a single synchronous loop over the scanner's peek/next
// primitives and appends directly to a slice, rather than as a goroutine
// communicating over a channel: no stage of this assembler may suspend or
// hand control to a queue, so the whole pipeline stays a plain sequence
// of function calls.

package z80asm

import (
	"strings"
)

// Lex tokenises source and returns the flat token stream. It never fails
// outright: lexical errors (if any arise in future extensions) would be
// reported as diagnostics rather than a Go error, so a run always
// completes and reports everything it found wrong in one pass.
func Lex(source string) []Token {
	s := newScanner([]byte(source))
	var toks []Token

	emit := func(kind TokenKind, val string) {
		toks = append(toks, Token{Kind: kind, Val: val, Line: s.line})
	}

	for !s.atEOF() {
		b := s.peek()
		switch {
		case b == ' ' || b == '\t':
			s.next()
		case b == '\r':
			s.next()
		case b == '\n':
			emit(TokNewLine, "\n")
			s.next()
		case b == ';':
			s.ignore(charSet("") /* no-op to keep style consistent */)
			for s.peek() != '\n' && s.peek() != eof {
				s.next()
			}
		case b == ',':
			s.next()
			emit(TokComma, ",")
		case b == ':':
			s.next()
			emit(TokColon, ":")
		case b == '(':
			s.next()
			emit(TokLeftParen, "(")
		case b == ')':
			s.next()
			emit(TokRightParen, ")")
		case b == '+':
			s.next()
			emit(TokPlus, "+")
		case b == '-':
			s.next()
			emit(TokMinus, "-")
		case b == '*':
			s.next()
			emit(TokMultiply, "*")
		case b == '/':
			s.next()
			emit(TokDivide, "/")
		case b == '=':
			s.next()
			emit(TokEquals, "=")
		case b == '\'' || b == '"':
			lexString(s, emit, b)
		case b == '$':
			lexDollarOrNumber(s, emit)
		case isDigit(b):
			lexNumber(s, emit)
		case isIdentStart(b) || b == '.':
			lexWord(s, emit)
		default:
			s.next()
			emit(TokUnknown, string(b))
		}
	}
	emit(TokEOF, "")
	return toks
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStart(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentCont(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '\'' || b == '$'
}

// lexString consumes a quoted string literal, capturing its raw
// unescaped body. An unterminated string is permitted: scanning simply
// stops at end of line or end of input.
func lexString(s *scanner, emit func(TokenKind, string), quote byte) {
	s.next() // opening quote
	var sb strings.Builder
	for {
		c := s.peek()
		if c == eof || c == '\n' || c == quote {
			break
		}
		sb.WriteByte(c)
		s.next()
	}
	if s.peek() == quote {
		s.next()
	}
	emit(TokString, sb.String())
}

// lexDollarOrNumber disambiguates '$' as the current-PC symbol from '$'
// as a hex-literal prefix: "$FF" is a Number, bare "$" is TokDollar.
func lexDollarOrNumber(s *scanner, emit func(TokenKind, string)) {
	if isHexDigit(s.peekAt(1)) {
		lexNumber(s, emit)
		return
	}
	s.next()
	emit(TokDollar, "$")
}

// lexNumber consumes one of the lexer's normalised numeric literal forms
// and emits a canonical text form:
//   0xFF, $FF, 0FFh -> "0xFF"
//   10110b          -> "10110b" (with embedded '$' group separators
//                       stripped before classification)
//   plain decimal   -> kept verbatim
func lexNumber(s *scanner, emit func(TokenKind, string)) {
	// '0x'/'0X' prefix form.
	if s.peek() == '0' && (s.peekAt(1) == 'x' || s.peekAt(1) == 'X') {
		s.next()
		s.next()
		hex := collectHexDigits(s)
		emit(TokNumber, "0x"+strings.ToUpper(trimLeadingZeros(hex)))
		return
	}
	// '$FF' prefix form (the caller already verified a hex digit follows).
	if s.peek() == '$' {
		s.next()
		hex := collectHexDigits(s)
		emit(TokNumber, "0x"+strings.ToUpper(trimLeadingZeros(hex)))
		return
	}

	raw := collectHexDigits(s)
	switch suffix := s.peek(); suffix {
	case 'h', 'H':
		s.next()
		emit(TokNumber, "0x"+strings.ToUpper(trimLeadingZeros(raw)))
		return
	case 'b', 'B':
		// Strict suffix detection: only a trailing b/B where every
		// consumed digit is 0/1 denotes binary (so e.g. "181" isn't
		// misread as a malformed binary literal).
		if isBinaryDigits(raw) {
			s.next()
			emit(TokNumber, raw+"b")
			return
		}
	case 'o', 'O', 'q', 'Q':
		if isOctalDigits(raw) {
			s.next()
			emit(TokNumber, raw+"o")
			return
		}
	}
	emit(TokNumber, raw)
}

// collectHexDigits consumes a run of hex digits, stripping any embedded
// '$' group separators (8080 convention, e.g. "1111$1110B").
func collectHexDigits(s *scanner) string {
	var sb strings.Builder
	for isHexDigit(s.peek()) || s.peek() == '$' {
		c := s.next()
		if c != '$' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s)-1 && s[i] == '0' {
		i++
	}
	return s[i:]
}

func isOctalDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '7' {
			return false
		}
	}
	return true
}

func isBinaryDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

// lexWord consumes an identifier-shaped word (mnemonic, register, or
// plain identifier), stripping embedded '$' separators per the 8080
// convention that treats '$' as a no-op grouping character inside names
// ("set$alloc$bit" == "setallocbit").
func lexWord(s *scanner, emit func(TokenKind, string)) {
	leadingDot := s.peek() == '.'
	var raw strings.Builder
	if leadingDot {
		raw.WriteByte('.')
		s.next()
	}
	for isIdentCont(s.peek()) {
		c := s.next()
		if c != '$' {
			raw.WriteByte(c)
		}
	}
	word := raw.String()
	if leadingDot {
		// Dot-prefixed pseudo-mnemonics (.Z80, .8080): preserved verbatim,
		// upper-cased, tokenised as Mnemonic. Neither pass recognises them:
		// each is reported as an unknown mnemonic and takes one zero byte.
		emit(TokMnemonic, strings.ToUpper(word))
		return
	}
	upper := strings.ToUpper(word)
	switch {
	case isRegister(upper):
		emit(TokRegister, upper)
	case isMnemonic(upper):
		emit(TokMnemonic, upper)
	default:
		emit(TokIdentifier, word)
	}
}
