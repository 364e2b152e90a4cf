package jslex

import (
	"github.com/ahmafi/jslex/internal/chars"
	"github.com/ahmafi/jslex/internal/unicodeid"
)

// scanRegexp rescans the token starting at begin (src[begin] == '/') as a
// regular expression literal: body, then flags. It is only ever reached via
// ReparseAsRegexp, since a bare '/' is ambiguous with division and the
// choice belongs to the caller (spec.md §4.6, §5).
func (l *Lexer) scanRegexp(begin int) Token {
	pos, ok := l.scanRegexpBody(begin)
	if !ok {
		return Token{Kind: RegExp, Begin: begin, End: pos}
	}
	pos = l.scanRegexpFlags(pos)
	return Token{Kind: RegExp, Begin: begin, End: pos}
}

// scanRegexpBody scans from the opening '/' through the closing '/',
// treating a '[' … ']' character class as a region where an unescaped '/'
// does not terminate the literal. It reports UnclosedRegexpLiteral and
// returns ok=false if a line terminator or logical end is reached first.
func (l *Lexer) scanRegexpBody(begin int) (pos int, ok bool) {
	pos = begin + 1
	size := l.src.Size()
	inClass := false
	for {
		if pos >= size {
			l.sink.Report(Diagnostic{Kind: UnclosedRegexpLiteral, Spans: map[string]Span{"regexp_literal": {begin, pos}}})
			return pos, false
		}
		b := l.src.byteAt(pos)
		if b == '\n' || b == '\r' {
			l.sink.Report(Diagnostic{Kind: UnclosedRegexpLiteral, Spans: map[string]Span{"regexp_literal": {begin, pos}}})
			return pos, false
		}
		if b == '\\' {
			pos++
			if pos >= size {
				l.sink.Report(Diagnostic{Kind: UnclosedRegexpLiteral, Spans: map[string]Span{"regexp_literal": {begin, pos}}})
				return pos, false
			}
			nb := l.src.byteAt(pos)
			if nb == '\n' || nb == '\r' {
				l.sink.Report(Diagnostic{Kind: UnclosedRegexpLiteral, Spans: map[string]Span{"regexp_literal": {begin, pos}}})
				return pos, false
			}
			if nb >= 0x80 {
				_, w, decOK := chars.DecodeRune(l.src.Slice(pos, pos+4))
				if decOK {
					pos += w
					continue
				}
			}
			pos++
			continue
		}
		if b == '[' {
			inClass = true
			pos++
			continue
		}
		if b == ']' {
			inClass = false
			pos++
			continue
		}
		if b == '/' && !inClass {
			pos++
			return pos, true
		}
		if b >= 0x80 {
			r, w, decOK := chars.DecodeRune(l.src.Slice(pos, pos+4))
			if decOK && chars.IsLineSeparator(r) {
				l.sink.Report(Diagnostic{Kind: UnclosedRegexpLiteral, Spans: map[string]Span{"regexp_literal": {begin, pos}}})
				return pos, false
			}
			pos += w
			continue
		}
		pos++
	}
}

// scanRegexpFlags consumes the identifier-part run following a regexp
// literal's closing '/'. A \u escape within the flags is illegal (flags
// must be literal ASCII letters); each occurrence is reported but still
// consumed so scanning makes progress (spec.md §4.6).
func (l *Lexer) scanRegexpFlags(pos int) int {
	size := l.src.Size()
	for {
		b := l.src.byteAt(pos)
		if b == '\\' && l.src.byteAt(pos+1) == 'u' {
			escBegin := pos
			end := l.consumeGenericUnicodeEscape(pos)
			l.sink.Report(Diagnostic{Kind: RegexpLiteralFlagsCannotContainUnicodeEscapes, Spans: map[string]Span{"escape_sequence": {escBegin, end}}})
			pos = end
			continue
		}
		if pos >= size {
			break
		}
		if b < 0x80 {
			if isASCIIIdentifierStart(b) || chars.IsDecimalDigit(b) {
				pos++
				continue
			}
			break
		}
		r, w, ok := chars.DecodeRune(l.src.Slice(pos, pos+4))
		if !ok || !unicodeid.IsPart(r) {
			break
		}
		pos += w
	}
	return pos
}

// consumeGenericUnicodeEscape skips one \uXXXX or \u{H...} escape without
// validating or decoding it, for contexts (regexp flags) where the escape
// itself is already an error and only its extent matters.
func (l *Lexer) consumeGenericUnicodeEscape(pos int) int {
	p := pos + 2
	if l.src.byteAt(p) == '{' {
		p++
		for chars.IsHexDigit(l.src.byteAt(p)) {
			p++
		}
		if l.src.byteAt(p) == '}' {
			p++
		}
		return p
	}
	for i := 0; i < 4 && chars.IsHexDigit(l.src.byteAt(p)); i++ {
		p++
	}
	return p
}
