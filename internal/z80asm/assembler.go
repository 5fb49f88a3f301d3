// Top-level orchestration: wires the preprocessor, lexer, both passes,
// the patcher, and the Intel HEX serialiser into the single Assemble
// entry point. Every call starts from fresh state, since nothing here may
// suspend or hold state across calls (no concurrency, no stateful
// singletons living longer than one assembly run).

package z80asm

// AssemblyResult is the complete outcome of assembling one source file.
type AssemblyResult struct {
	Image      []byte
	HexText    string
	Errors     []Diagnostic
	Warnings   []Diagnostic
	Symbols    map[string]uint16
	Listing    []ListingLine
	LoadAddr   uint16
}

// Success reports whether assembly completed with no errors (warnings are
// permitted).
func (r AssemblyResult) Success() bool {
	return len(r.Errors) == 0
}

// Engine assembles Z80/8080 source text. It holds no state between calls;
// its fields are the optional include-file resolver used by the
// preprocessor and the include search path handed to it.
type Engine struct {
	Resolver     FileResolver
	IncludePaths []string
}

// Assemble runs the full pipeline over source (already the contents of
// originPath, before INCLUDE expansion) and returns the assembled image,
// HEX text, diagnostics, symbol table, and listing.
func (e Engine) Assemble(source, originPath string) AssemblyResult {
	diags := &diagnosticList{}

	expanded := source
	if e.Resolver != nil {
		var includeErrs []string
		expanded, includeErrs = Preprocess(source, originPath, e.IncludePaths, e.Resolver)
		for _, msg := range includeErrs {
			diags.errorf(0, "%s", msg)
		}
	}

	toks := Lex(expanded)
	stmts := splitStatements(toks)

	p1 := runPass1(stmts, diags)

	enc := &encoder{syms: p1.syms, diags: diags}
	var image []byte
	var listing []ListingLine

	for i, st := range p1.stmts {
		if i > p1.endLine {
			break
		}
		pc := p1.pcAtLine[i]
		before := len(image)
		enc.encodeStatement(&image, st, pc)
		listing = append(listing, ListingLine{
			Address: pc,
			Bytes:   append([]byte(nil), image[before:]...),
			Source:  statementSource(st),
		})
		if st.Mnemonic == "END" {
			break
		}
	}

	resolvePatches(image, enc.patches, p1.syms, diags)

	errs, warns := diags.split()
	var hexText string
	if len(errs) == 0 {
		hexText = ToIntelHex(image, p1.loadAddr)
	}
	return AssemblyResult{
		Image:    image,
		HexText:  hexText,
		Errors:   errs,
		Warnings: warns,
		Symbols:  p1.syms.Snapshot(),
		Listing:  listing,
		LoadAddr: p1.loadAddr,
	}
}

// Assemble is a package-level convenience wrapper around Engine for
// callers with no INCLUDE resolver configured.
func Assemble(source string) AssemblyResult {
	return Engine{}.Assemble(source, "")
}
