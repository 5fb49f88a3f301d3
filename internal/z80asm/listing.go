// Plain listing-line formatting: one line per source statement showing
// its address and encoded bytes alongside the original source text.
// Colourised/paginated rendering for a terminal is explicitly out of
// scope here; that belongs to the command-line front end.

package z80asm

import (
	"fmt"
	"strings"
)

// ListingLine is one row of the assembly listing.
type ListingLine struct {
	Address uint16
	Bytes   []byte
	Source  string
}

// String renders l in the classic "AAAA  XX XX XX XX          source" form.
func (l ListingLine) String() string {
	var hexPart strings.Builder
	for _, b := range l.Bytes {
		fmt.Fprintf(&hexPart, "%02X ", b)
	}
	return fmt.Sprintf("%04X  %-12s  %s", l.Address, strings.TrimRight(hexPart.String(), " "), l.Source)
}

// statementSource reconstructs the original-ish source text of a
// statement from its tokens, for display in a listing line. It is a
// best-effort reconstruction, not a byte-for-byte copy of the input line.
func statementSource(st statement) string {
	var sb strings.Builder
	if st.Label != "" {
		sb.WriteString(st.Label)
		sb.WriteString(": ")
	}
	if st.Mnemonic != "" {
		sb.WriteString(st.Mnemonic)
		sb.WriteString(" ")
	}
	for i, group := range st.Operands {
		if i > 0 {
			sb.WriteString(",")
		}
		for j, t := range group {
			if j > 0 {
				sb.WriteString(" ")
			}
			sb.WriteString(t.Val)
		}
	}
	return strings.TrimSpace(sb.String())
}
