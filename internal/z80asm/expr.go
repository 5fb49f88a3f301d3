// Minimal expression evaluator: number literals, the '$' PC symbol,
// single-label lookup, and a single infix '+'/'-' with a pure-number
// right operand. A full operator-precedence arithmetic grammar with casts
// and macro-expression symbols is deliberately out of scope; every
// operand here reduces directly to tokens -> value, deferring to symbol
// lookup and erroring on anything else instead of silently defaulting.

package z80asm

import (
	"fmt"
	"strconv"
	"strings"
)

// evalResult is the outcome of evaluating an operand expression.
type evalResult struct {
	value      int64
	resolved   bool   // false if the value depends on an undefined label
	label      string // the unresolved label name, if !resolved
	isRelative bool   // not set by evalExpr or its callers; patches record relativity in patch.IsRelative
}

// parseNumber decodes one of the lexer's normalised Number token texts:
// "0xFF" (hex), "1010b" (binary), "17o" (octal), or plain decimal. Base
// suffix detection is strict: the suffix byte must be present and the
// remaining digits valid for that base, or an error is returned instead
// of silently falling back to decimal.
func parseNumber(text string) (int64, error) {
	if text == "" {
		return 0, fmt.Errorf("empty numeric literal")
	}
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		v, err := strconv.ParseInt(text[2:], 16, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid hex literal: %s", text)
		}
		return v, nil
	}
	last := text[len(text)-1]
	switch last {
	case 'b', 'B':
		v, err := strconv.ParseInt(text[:len(text)-1], 2, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid binary literal: %s", text)
		}
		return v, nil
	case 'o', 'O':
		v, err := strconv.ParseInt(text[:len(text)-1], 8, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid octal literal: %s", text)
		}
		return v, nil
	}
	v, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric literal: %s", text)
	}
	return v, nil
}

// evalExpr evaluates the operand token sequence toks (already isolated to
// a single operand, i.e. not containing commas), with '$' bound to pc:
// a number, '$', a label, or label±n.
func evalExpr(toks []Token, pc uint16, syms *SymbolTable) (evalResult, error) {
	toks = trimParens(toks)
	if len(toks) == 0 {
		return evalResult{}, fmt.Errorf("empty expression")
	}

	if len(toks) == 1 {
		return evalSingle(toks[0], pc, syms)
	}

	if len(toks) == 2 && toks[0].Kind == TokMinus && toks[1].Kind == TokNumber {
		n, err := parseNumber(toks[1].Val)
		if err != nil {
			return evalResult{}, err
		}
		return evalResult{value: -n, resolved: true}, nil
	}

	if len(toks) == 3 && (toks[1].Kind == TokPlus || toks[1].Kind == TokMinus) {
		left, err := evalSingle(toks[0], pc, syms)
		if err != nil {
			return evalResult{}, err
		}
		if toks[2].Kind != TokNumber {
			return evalResult{}, fmt.Errorf("right-hand side of %s must be a number: %s", toks[1].Val, toks[2].Val)
		}
		n, err := parseNumber(toks[2].Val)
		if err != nil {
			return evalResult{}, err
		}
		if toks[1].Kind == TokMinus {
			n = -n
		}
		left.value += n
		return left, nil
	}

	return evalResult{}, fmt.Errorf("unsupported expression")
}

// trimParens strips every layer of parentheses that encloses the whole
// token list, so "(LABEL+1)" and "((LABEL+1))" both evaluate as LABEL+1.
func trimParens(toks []Token) []Token {
	for len(toks) >= 2 && toks[0].Kind == TokLeftParen && toks[len(toks)-1].Kind == TokRightParen {
		toks = toks[1 : len(toks)-1]
	}
	return toks
}

func evalSingle(t Token, pc uint16, syms *SymbolTable) (evalResult, error) {
	switch t.Kind {
	case TokDollar:
		return evalResult{value: int64(pc), resolved: true}, nil
	case TokNumber:
		n, err := parseNumber(t.Val)
		if err != nil {
			return evalResult{}, err
		}
		return evalResult{value: n, resolved: true}, nil
	case TokIdentifier:
		if addr, ok := syms.Lookup(t.Val); ok {
			return evalResult{value: int64(addr), resolved: true}, nil
		}
		return evalResult{resolved: false, label: t.Val}, nil
	default:
		return evalResult{}, fmt.Errorf("not a number or label: %s", t.Val)
	}
}
