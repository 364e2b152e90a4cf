package jslex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainIdentifiers(t *testing.T) {
	cases := []string{"a", "abc", "_underscore", "$dollar", "CamelCase123", "你好", "π"}
	for _, c := range cases {
		t.Run(c, func(t *testing.T) {
			toks, diags := tokenize(t, c)
			require.Equal(t, []TokenType{Identifier, EndOfFile}, kinds(toks))
			assert.Empty(t, diags)
			src := NewSource([]byte(c))
			assert.Equal(t, c, string(toks[0].IdentifierName(src)))
		})
	}
}

func TestKeywordsClassifiedCorrectly(t *testing.T) {
	cases := map[string]TokenType{
		"for": For, "if": If, "yield": Yield, "async": Async, "of": Of,
		"true": True, "false": False, "null": Null,
	}
	for src, want := range cases {
		t.Run(src, func(t *testing.T) {
			toks, diags := tokenize(t, src)
			require.Equal(t, []TokenType{want, EndOfFile}, kinds(toks))
			assert.Empty(t, diags)
		})
	}
}

func TestIdentifierUnicodeEscape(t *testing.T) {
	src := NewSource([]byte("h\\u0065llo"))
	sink := &DiagnosticList{}
	l := NewLexer(src, sink)
	tok := l.Peek()
	require.Equal(t, Identifier, tok.Kind)
	assert.Equal(t, "hello", string(tok.IdentifierName(src)))
	assert.Empty(t, sink.Diagnostics)
}

func TestIdentifierBraceEscape(t *testing.T) {
	src := NewSource([]byte(`\u{1F600}`))
	sink := &DiagnosticList{}
	l := NewLexer(src, sink)
	tok := l.Peek()
	require.Equal(t, Identifier, tok.Kind)
	// U+1F600 is not a valid JS identifier code point, but the scanner
	// still decodes and normalizes it, reporting the disallowed character.
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, EscapedCharacterDisallowedInIdentifiers, sink.Diagnostics[0].Kind)
}

func TestKeywordCannotContainEscape(t *testing.T) {
	src := NewSource([]byte("f\\u006Fr")) // "for" spelled with an escape
	sink := &DiagnosticList{}
	l := NewLexer(src, sink)
	tok := l.Peek()
	require.Equal(t, Identifier, tok.Kind, "an escaped keyword spelling lexes as a plain identifier")
	assert.Equal(t, "for", string(tok.IdentifierName(src)))
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, KeywordsCannotContainEscapeSequences, sink.Diagnostics[0].Kind)
}

func TestIdentifierOutOfRangeEscapeIsNotNormalized(t *testing.T) {
	src := NewSource([]byte(`too\u{110000}big`))
	sink := &DiagnosticList{}
	l := NewLexer(src, sink)
	tok := l.Peek()
	require.Equal(t, Identifier, tok.Kind)
	require.Len(t, sink.Diagnostics, 1)
	assert.Equal(t, EscapedCodePointInIdentifierOutOfRange, sink.Diagnostics[0].Kind)
	assert.Equal(t, `too\u{110000}big`, string(tok.IdentifierName(src)))
}

func TestLoneBackslashInIdentifier(t *testing.T) {
	_, diags := tokenize(t, `a\b`)
	require.Len(t, diags, 1)
	assert.Equal(t, UnexpectedBackslashInIdentifier, diags[0].Kind)
}

func TestUnclosedBraceEscape(t *testing.T) {
	_, diags := tokenize(t, `\u{41`)
	require.Len(t, diags, 1)
	assert.Equal(t, UnclosedIdentifierEscapeSequence, diags[0].Kind)
}

func TestInvalidUTF8InIdentifierIsReported(t *testing.T) {
	_, diags := tokenize(t, "abc\xffdef")
	require.Len(t, diags, 1)
	assert.Equal(t, InvalidUTF8Sequence, diags[0].Kind)
}
