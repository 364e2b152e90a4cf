package jslex

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// lexAll drives a Lexer to end_of_file and returns every token including it.
func lexAll(src *Source, sink DiagnosticSink) []Token {
	l := NewLexer(src, sink)
	var toks []Token
	for {
		tok := l.Peek()
		toks = append(toks, tok)
		if tok.Kind == EndOfFile {
			return toks
		}
		l.Skip()
	}
}

// TestProgressProperty verifies spec.md §8 invariant 1: for any input,
// draining the token stream reaches end_of_file in at most size+1 steps.
func TestProgressProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("repeated skip terminates within size+1 steps", prop.ForAll(
		func(text string) bool {
			src := NewSource([]byte(text))
			sink := &DiagnosticList{}
			toks := lexAll(src, sink)
			return len(toks) <= src.Size()+1 && toks[len(toks)-1].Kind == EndOfFile
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestSpanCoverageProperty verifies spec.md §8 invariant 2: token spans,
// treated as a sorted, non-overlapping set of intervals, tile [0, size)
// once the gaps between them (skipped trivia) are accounted for — i.e. no
// token's Begin precedes the previous token's End, and the last token's End
// reaches size.
func TestSpanCoverageProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("token spans are ordered, non-overlapping, and reach size", prop.ForAll(
		func(text string) bool {
			src := NewSource([]byte(text))
			sink := &DiagnosticList{}
			toks := lexAll(src, sink)
			prevEnd := 0
			for _, tok := range toks {
				if tok.Begin < prevEnd || tok.End < tok.Begin {
					return false
				}
				prevEnd = tok.End
			}
			return prevEnd == src.Size()
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}

// TestIdentifierNormalizationIdempotence verifies spec.md §8 invariant 4:
// re-lexing an already-normalized buffer (escape decoded, trailing spaces)
// reproduces the same identifier name and introduces no further diagnostics.
func TestIdentifierNormalizationIdempotence(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("re-lexing a normalized identifier buffer is a fixed point", prop.ForAll(
		func(suffix string) bool {
			// The escape for U+0041 always decodes to 'A'; the random alphanumeric suffix
			// gives each run a distinct identifier spelling.
			escaped := "\\u0041" + suffix
			src := NewSource([]byte(escaped))
			sink := &DiagnosticList{}
			l := NewLexer(src, sink)
			first := l.Peek()
			if first.Kind != Identifier {
				return true
			}
			normalizedName := append([]byte(nil), first.IdentifierName(src)...)

			// src was mutated in place by the first lex; a fresh Lexer over
			// the same (now-normalized) buffer must reproduce the name
			// without mutating it further or reporting anything new.
			sink2 := &DiagnosticList{}
			l2 := NewLexer(src, sink2)
			second := l2.Peek()
			return second.Kind == Identifier &&
				string(second.IdentifierName(src)) == string(normalizedName) &&
				len(sink2.Diagnostics) == 0
		},
		gen.RegexMatch(`[a-zA-Z0-9]{0,8}`),
	))

	properties.TestingRun(t)
}

// TestPunctuatorRoundTripProperty verifies spec.md §8 invariant 5: lexing
// any punctuator's canonical spelling alone produces exactly that kind and
// one end_of_file, for every entry in the closed punctuator set.
func TestPunctuatorRoundTripProperty(t *testing.T) {
	spellings := map[string]TokenType{}
	for _, p := range punctuators4 {
		spellings[p.text] = p.kind
	}
	for _, p := range punctuators3 {
		spellings[p.text] = p.kind
	}
	for _, p := range punctuators2 {
		spellings[p.text] = p.kind
	}
	for b, kind := range punctuators1 {
		spellings[string(b)] = kind
	}

	for text, kind := range spellings {
		text, kind := text, kind
		t.Run(text, func(t *testing.T) {
			toks, diags := tokenize(t, text)
			if len(diags) != 0 {
				t.Fatalf("want no diagnostics, got %v", diags)
			}
			if !kindsEqual(kinds(toks), kind, EndOfFile) {
				t.Fatalf("want [%s end_of_file], got %v", kind, kinds(toks))
			}
		})
	}
}

// TestKeywordRoundTripProperty is the keyword half of invariant 5.
func TestKeywordRoundTripProperty(t *testing.T) {
	for spelling, kind := range keywords {
		spelling, kind := spelling, kind
		t.Run(spelling, func(t *testing.T) {
			toks, diags := tokenize(t, spelling)
			if len(diags) != 0 {
				t.Fatalf("want no diagnostics, got %v", diags)
			}
			if !kindsEqual(kinds(toks), kind, EndOfFile) {
				t.Fatalf("want [%s end_of_file], got %v", kind, kinds(toks))
			}
		})
	}
}

// TestErrorSpanLocalityProperty verifies spec.md §8 invariant 6: every
// reported span is non-empty and contained within [0, size).
func TestErrorSpanLocalityProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every diagnostic span is non-empty and in bounds", prop.ForAll(
		func(text string) bool {
			src := NewSource([]byte(text))
			sink := &DiagnosticList{}
			lexAll(src, sink)
			for _, d := range sink.Diagnostics {
				for _, sp := range d.Spans {
					if sp.Empty() || sp.Begin < 0 || sp.End > src.Size() || sp.Begin > sp.End {
						return false
					}
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
