package z80asm

import "testing"

func kindsOf(toks []Token) []TokenKind {
	kinds := make([]TokenKind, len(toks))
	for i, t := range toks {
		kinds[i] = t.Kind
	}
	return kinds
}

func requireKinds(t *testing.T, toks []Token, want ...TokenKind) {
	t.Helper()
	got := kindsOf(toks)
	if len(got) != len(want) {
		t.Fatalf("token count mismatch: got %d (%v), want %d (%v)", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestLexSimpleInstruction(t *testing.T) {
	toks := Lex("LD A,5")
	requireKinds(t, toks, TokMnemonic, TokRegister, TokComma, TokNumber, TokEOF)
	if toks[3].Val != "5" {
		t.Fatalf("number literal: got %q, want %q", toks[3].Val, "5")
	}
}

func TestLexLabelColon(t *testing.T) {
	toks := Lex("START: NOP")
	requireKinds(t, toks, TokIdentifier, TokColon, TokMnemonic, TokEOF)
}

func TestLexComment(t *testing.T) {
	toks := Lex("NOP ; a comment\nHALT")
	requireKinds(t, toks, TokMnemonic, TokNewLine, TokMnemonic, TokEOF)
}

func TestLexHexForms(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"0x1A", "0x1A"},
		{"$FF", "0xFF"},
		{"0FFh", "0xFF"},
		{"1234", "1234"},
		{"10110b", "10110b"},
	}
	for _, c := range cases {
		toks := Lex(c.src)
		if len(toks) < 1 || toks[0].Kind != TokNumber {
			t.Fatalf("%s: expected a number token, got %v", c.src, toks)
		}
		if toks[0].Val != c.want {
			t.Errorf("%s: got %q, want %q", c.src, toks[0].Val, c.want)
		}
	}
}

func TestLexDollarAlone(t *testing.T) {
	toks := Lex("JP $")
	requireKinds(t, toks, TokMnemonic, TokDollar, TokEOF)
}

func TestLexIndexedOperand(t *testing.T) {
	toks := Lex("LD A,(IX+5)")
	requireKinds(t, toks,
		TokMnemonic, TokRegister, TokComma,
		TokLeftParen, TokRegister, TokPlus, TokNumber, TokRightParen,
		TokEOF,
	)
}

func TestLexString(t *testing.T) {
	toks := Lex(`DB "hi"`)
	requireKinds(t, toks, TokMnemonic, TokString, TokEOF)
	if toks[1].Val != "hi" {
		t.Fatalf("string body: got %q, want %q", toks[1].Val, "hi")
	}
}
