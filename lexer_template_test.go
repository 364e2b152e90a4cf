package jslex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplateNoSubstitutions(t *testing.T) {
	toks, diags := tokenize(t, "`plain text`")
	require.Equal(t, []TokenType{CompleteTemplate, EndOfFile}, kinds(toks))
	assert.Empty(t, diags)
	assert.Equal(t, 12, toks[0].End-toks[0].Begin)
}

func TestTemplateMultilineIsNotUnclosed(t *testing.T) {
	toks, diags := tokenize(t, "`line1\nline2`")
	require.Equal(t, []TokenType{CompleteTemplate, EndOfFile}, kinds(toks))
	assert.Empty(t, diags)
}

func TestTemplateMultipleSubstitutions(t *testing.T) {
	src := NewSource([]byte("`a${1}b${2}c`"))
	sink := &DiagnosticList{}
	l := NewLexer(src, sink)

	var kindsSeen []TokenType
	for {
		tok := l.Peek()
		kindsSeen = append(kindsSeen, tok.Kind)
		if tok.Kind == EndOfFile {
			break
		}
		if tok.Kind == RightCurly {
			l.SkipInTemplate(0)
			continue
		}
		l.Skip()
	}

	require.Equal(t, []TokenType{
		IncompleteTemplate, Number, RightCurly,
		IncompleteTemplate, Number, RightCurly,
		CompleteTemplate, EndOfFile,
	}, kindsSeen)
	assert.Empty(t, sink.Diagnostics)
}

func TestTemplateUnclosed(t *testing.T) {
	toks, diags := tokenize(t, "`unterminated")
	require.Len(t, diags, 1)
	assert.Equal(t, UnclosedTemplate, diags[0].Kind)
	require.Equal(t, []TokenType{CompleteTemplate, EndOfFile}, kinds(toks))
}

func TestTemplateEscapedBacktickAndDollar(t *testing.T) {
	toks, diags := tokenize(t, "`a\\`b\\${c}`")
	require.Equal(t, []TokenType{CompleteTemplate, EndOfFile}, kinds(toks))
	assert.Empty(t, diags)
}
