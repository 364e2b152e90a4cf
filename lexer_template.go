package jslex

import "github.com/ahmafi/jslex/internal/chars"

// scanTemplateOpen scans a template literal's opening chunk, starting at
// its backtick. Unlike a string literal, raw line terminators are
// ordinary content here (spec.md §4.5) — only the closing backtick, a `${`
// substitution opener, or logical end terminate a chunk.
func (l *Lexer) scanTemplateOpen(begin int) Token {
	return l.scanTemplateChunk(begin, begin+1)
}

// scanTemplateBody resumes scanning a template literal's next chunk after a
// RightCurly closed a `${ … }` substitution; begin is where that chunk's
// content starts (no backtick to skip).
func (l *Lexer) scanTemplateBody(begin int) Token {
	return l.scanTemplateChunk(begin, begin)
}

// scanTemplateChunk is the shared body for both entry points: begin is the
// token's Begin, pos is where content scanning actually starts (past any
// opening backtick).
func (l *Lexer) scanTemplateChunk(begin, pos int) Token {
	size := l.src.Size()
	for {
		if pos >= size {
			l.sink.Report(Diagnostic{Kind: UnclosedTemplate, Spans: map[string]Span{"incomplete_template": {begin, pos}}})
			return Token{Kind: CompleteTemplate, Begin: begin, End: pos}
		}
		b := l.src.byteAt(pos)
		if b == '`' {
			pos++
			return Token{Kind: CompleteTemplate, Begin: begin, End: pos}
		}
		if b == '$' && l.src.byteAt(pos+1) == '{' {
			pos += 2
			return Token{Kind: IncompleteTemplate, Begin: begin, End: pos}
		}
		if b == '\\' {
			pos++
			if pos >= size {
				l.sink.Report(Diagnostic{Kind: UnclosedTemplate, Spans: map[string]Span{"incomplete_template": {begin, pos}}})
				return Token{Kind: CompleteTemplate, Begin: begin, End: pos}
			}
			if l.src.byteAt(pos) >= 0x80 {
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
