// Command jslexdump tokenizes a JavaScript source file and prints its token
// stream and diagnostics, a thin demonstration harness over the jslex
// package analogous to pongo2's own example programs.
package main

import (
	"fmt"
	"os"

	"github.com/ahmafi/jslex"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <file.js>\n", os.Args[0])
		os.Exit(2)
	}

	path := os.Args[1]
	text, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "jslexdump: %v\n", err)
		os.Exit(1)
	}

	src := jslex.NewSource(text)
	sink := &jslex.DiagnosticList{}
	l := jslex.NewLexer(src, sink)

	for {
		tok := l.Peek()
		printToken(tok, src)
		if tok.Kind == jslex.EndOfFile {
			break
		}
		l.Skip()
	}

	if len(sink.Diagnostics) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d diagnostic(s):\n", len(sink.Diagnostics))
		for _, d := range sink.Diagnostics {
			fmt.Fprintln(os.Stderr, d.Error())
		}
		os.Exit(1)
	}
}

func printToken(tok jslex.Token, src *jslex.Source) {
	newline := ""
	if tok.HasLeadingNewline {
		newline = " (leading newline)"
	}
	if tok.Kind == jslex.Identifier {
		fmt.Printf("%-24s %6d %6d  %q%s\n", tok.Kind, tok.Begin, tok.End, tok.IdentifierName(src), newline)
		return
	}
	fmt.Printf("%-24s %6d %6d  %q%s\n", tok.Kind, tok.Begin, tok.End, tok.Text(src), newline)
}
