package jslex

import (
	"strings"
	"testing"
)

// FuzzLexer feeds arbitrary byte sequences through the full token stream,
// the way pongo2's own FuzzLexer exercises its lexer directly rather than
// through template execution. The lexer must never panic and must always
// reach EndOfFile; malformed input is reported as diagnostics, not errors.
func FuzzLexer(f *testing.F) {
	// Numbers
	f.Add("0")
	f.Add("0b101")
	f.Add("0B_1_0")
	f.Add("0o17")
	f.Add("0x1F_FF")
	f.Add("0123")
	f.Add("0123n")
	f.Add("01.2e+3n")
	f.Add("1_000_000")
	f.Add("1__000")
	f.Add("1_")
	f.Add("1.5e10")
	f.Add(".5")
	f.Add("1.2.3")
	f.Add("0b")
	f.Add("0x")
	f.Add("1e")
	f.Add("1n")

	// Strings
	f.Add(`"hello"`)
	f.Add(`'hello'`)
	f.Add(`"hello\"world"`)
	f.Add("\"unterminated")
	f.Add("\"line1\nline2\"")
	f.Add(`"back\` + "\n" + `slash continuation"`)

	// Templates
	f.Add("`hello`")
	f.Add("`hello${42}`")
	f.Add("`a${1}b${2}c`")
	f.Add("`unterminated")
	f.Add("`line1\nline2`")

	// Regexp (lexer only sees these via ReparseAsRegexp in the parser; the
	// fuzz target exercises the raw division/regexp ambiguity path too)
	f.Add("/abc/gi")
	f.Add("/[a-z/]/")
	f.Add("/unterminated")

	// Identifiers and escapes
	f.Add("abc")
	f.Add("_underscore")
	f.Add("$dollar")
	f.Add(`\u{1F600}`)
	f.Add(`if`)
	f.Add("你好")
	f.Add("π")

	// Keywords
	f.Add("for")
	f.Add("yield")
	f.Add("async")

	// Punctuators, including maximal munch edge cases
	f.Add(">>>=")
	f.Add(">>>")
	f.Add("...")
	f.Add("=>")
	f.Add("??")
	f.Add("+++")
	f.Add("a+++b")

	// Comments and whitespace
	f.Add("// line comment\nx")
	f.Add("/* block */x")
	f.Add("/* unterminated")
	f.Add("<!-- html comment\nx")
	f.Add("#!/usr/bin/env node\nx")
	f.Add(" x")
	f.Add(" x")

	// Malformed trivia
	f.Add("#x")
	f.Add("@@@x")
	f.Add("\x01\x02x")

	// Mixed/complex
	f.Add("function fib(n) { return n < 2 ? n : fib(n-1) + fib(n-2); }")
	f.Add("const x = `${a}${b}${c}`;")
	f.Add(strings.Repeat("(", 200) + strings.Repeat(")", 200))
	f.Add(strings.Repeat("a", 2000))

	// Invalid UTF-8
	f.Add("abc\xff\xfedef")

	f.Fuzz(func(t *testing.T, input string) {
		src := NewSource([]byte(input))
		sink := &DiagnosticList{}
		l := NewLexer(src, sink)

		seen := 0
		for {
			tok := l.Peek()
			if tok.End < tok.Begin {
				t.Fatalf("token with End < Begin: %+v", tok)
			}
			if tok.Kind == EndOfFile {
				break
			}
			seen++
			if seen > 1_000_000 {
				t.Fatal("lexer failed to make progress toward EndOfFile")
			}
			l.Skip()
		}
	})
}
