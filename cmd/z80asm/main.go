// Command z80asm assembles Z80/8080-syntax source into a raw binary image,
// an Intel HEX file, and optional listing/symbol-table text.
package main

import (
	"fmt"
	"gopkg.in/alecthomas/kingpin.v1"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/nmlgc/z80asm/internal/z80asm"
)

var diagLogger = log.New(os.Stderr, "", 0)

func main() {
	source := kingpin.Arg(
		"source", "Assembly source file.",
	).Required().ExistingFile()

	includes := kingpin.Flag(
		"include", "Add the given directory to the INCLUDE search path.",
	).Short('I').Strings()

	output := kingpin.Flag(
		"output", "Base name for generated output files (defaults to the source file's name).",
	).Short('o').String()

	wantBin := kingpin.Flag(
		"bin", "Write the raw binary image.",
	).Default("true").Bool()

	wantHex := kingpin.Flag(
		"hex", "Write the Intel HEX image.",
	).Default("true").Bool()

	wantListing := kingpin.Flag(
		"listing", "Write the assembly listing.",
	).Bool()

	wantSymbols := kingpin.Flag(
		"symbols", "Write the symbol table.",
	).Bool()

	noColor := kingpin.Flag(
		"no-color", "Disable ANSI color in diagnostic output.",
	).Bool()

	kingpin.Parse()

	contents, err := ioutil.ReadFile(*source)
	if err != nil {
		diagLogger.Fatalln(err)
	}

	base := *output
	if base == "" {
		base = strings.TrimSuffix(*source, filepath.Ext(*source))
	}

	engine := z80asm.Engine{
		Resolver:     z80asm.OSFileResolver{},
		IncludePaths: *includes,
	}
	result := engine.Assemble(string(contents), *source)

	for _, d := range result.Warnings {
		printDiagnostic(d, *noColor)
	}
	for _, d := range result.Errors {
		printDiagnostic(d, *noColor)
	}

	if *wantBin {
		if err := ioutil.WriteFile(base+".bin", result.Image, 0644); err != nil {
			diagLogger.Fatalln(err)
		}
	}
	if *wantHex {
		if err := ioutil.WriteFile(base+".hex", []byte(result.HexText), 0644); err != nil {
			diagLogger.Fatalln(err)
		}
	}
	if *wantListing {
		var sb strings.Builder
		for _, line := range result.Listing {
			sb.WriteString(line.String())
			sb.WriteString("\n")
		}
		if err := ioutil.WriteFile(base+".lst", []byte(sb.String()), 0644); err != nil {
			diagLogger.Fatalln(err)
		}
	}
	if *wantSymbols {
		var sb strings.Builder
		for name, addr := range result.Symbols {
			fmt.Fprintf(&sb, "%-32s %04X\n", name, addr)
		}
		if err := ioutil.WriteFile(base+".sym", []byte(sb.String()), 0644); err != nil {
			diagLogger.Fatalln(err)
		}
	}

	if !result.Success() {
		os.Exit(1)
	}
}

func printDiagnostic(d z80asm.Diagnostic, noColor bool) {
	if noColor {
		diagLogger.Println(d.String())
		return
	}
	color := "\x1b[33m" // yellow for warnings
	if d.Severity == z80asm.SeverityError {
		color = "\x1b[31m" // red for errors
	}
	diagLogger.Println(color + d.String() + "\x1b[0m")
}
