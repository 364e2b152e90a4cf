package jslex

import "github.com/ahmafi/jslex/internal/chars"

// scanString scans a single- or double-quoted string literal starting at
// begin (src[begin] is the opening quote). A backslash-newline pair is a
// line continuation, consumed without ending the literal; an unescaped LF,
// CR, or logical end terminates it with UnclosedStringLiteral (spec.md
// §4.4). Escape sequences are not validated here: the literal's *content*
// is out of this scanner's scope, only its extent.
func (l *Lexer) scanString(begin int) Token {
	quote := l.src.byteAt(begin)
	pos := begin + 1
	size := l.src.Size()
	for {
		if pos >= size {
			l.sink.Report(Diagnostic{Kind: UnclosedStringLiteral, Spans: map[string]Span{"string_literal": {begin, pos}}})
			return Token{Kind: String, Begin: begin, End: pos}
		}
		b := l.src.byteAt(pos)
		if b == quote {
			pos++
			return Token{Kind: String, Begin: begin, End: pos}
		}
		if b == '\n' || b == '\r' {
			l.sink.Report(Diagnostic{Kind: UnclosedStringLiteral, Spans: map[string]Span{"string_literal": {begin, pos}}})
			return Token{Kind: String, Begin: begin, End: pos}
		}
		if b == '\\' {
			pos++
			nb := l.src.byteAt(pos)
			if nb == '\r' {
				pos++
				if l.src.byteAt(pos) == '\n' {
					pos++
				}
				continue
			}
			if nb == '\n' {
				pos++
				continue
			}
			if pos >= size {
				l.sink.Report(Diagnostic{Kind: UnclosedStringLiteral, Spans: map[string]Span{"string_literal": {begin, pos}}})
				return Token{Kind: String, Begin: begin, End: pos}
			}
			if nb >= 0x80 {
				_, w, ok := chars.DecodeRune(l.src.Slice(pos, pos+4))
				if ok {
					pos += w
					continue
				}
			}
			pos++
			continue
		}
		if b >= 0x80 {
			_, w, _ := chars.DecodeRune(l.src.Slice(pos, pos+4))
			pos += w
			continue
		}
		pos++
	}
}
