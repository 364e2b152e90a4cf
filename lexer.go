// Package jslex implements a recovering JavaScript lexical analyzer: it
// converts a byte-addressable Source into a stream of classified Tokens
// with precise source spans, reporting malformed input as Diagnostics on a
// caller-supplied sink rather than aborting. It is the front end of a
// JavaScript linter; parsing and later analysis are out of scope.
package jslex

import "github.com/ahmafi/jslex/internal/chars"

// Lexer is a single-pass, single-threaded token cursor over one Source. It
// holds a small amount of state beyond "current token": the position the
// next token will be scanned from, a one-token stash used by
// InsertSemicolon, and the byte offset the current token's leading trivia
// started being skipped from (used to compute synthetic-semicolon spans).
//
// A Lexer does no I/O and never suspends; every call returns once its work
// completes (§5). It mutates its Source during identifier normalization, so
// callers must treat the Source as exclusively owned by the Lexer for its
// lifetime.
type Lexer struct {
	src  *Source
	sink DiagnosticSink

	cur Token // the token Peek returns
	pos int   // where the next scan begins; == cur.End unless a synthetic semicolon is current

	prevEnd int    // pos at the start of the most recent scan, before trivia
	stashed *Token // set by InsertSemicolon, consumed by the next Skip
}

// NewLexer constructs a Lexer over src, scanning the first token eagerly so
// Peek is available immediately. Diagnostics discovered during scanning are
// reported to sink, which must be non-nil.
func NewLexer(src *Source, sink DiagnosticSink) *Lexer {
	l := &Lexer{src: src, sink: sink}
	l.cur = l.next()
	return l
}

// Peek returns the current token without advancing. Idempotent.
func (l *Lexer) Peek() Token { return l.cur }

// Skip advances past the current token. If a token was stashed by
// InsertSemicolon, it is restored verbatim (O(1), no rescanning); otherwise
// the next token is scanned from the source. Once EndOfFile is reached,
// further calls are no-ops.
func (l *Lexer) Skip() {
	if l.stashed != nil {
		l.cur = *l.stashed
		l.stashed = nil
		return
	}
	if l.cur.Kind == EndOfFile {
		return
	}
	l.cur = l.next()
}

// ReparseAsRegexp rewinds the cursor to the start of the current token
// (which must be Slash or SlashEqual) and rescans it as a regular
// expression literal. The resulting token's Kind is RegExp; its
// HasLeadingNewline is preserved from the original / token.
func (l *Lexer) ReparseAsRegexp() {
	begin := l.cur.Begin
	leadingNewline := l.cur.HasLeadingNewline
	tok := l.scanRegexp(begin)
	tok.HasLeadingNewline = leadingNewline
	l.pos = tok.End
	l.cur = tok
}

// SkipInTemplate resumes scanning the enclosing template literal after a
// RightCurly token that closed a ${ … } substitution. templateBegin (the
// byte offset the enclosing template literal opened at) is accepted for the
// caller's own bookkeeping, as spec.md's design calls for a caller-driven
// re-entry point rather than lexer-internal mode tracking; this lexer does
// not need it to compute the resuming span, since the resumed chunk always
// begins exactly where the RightCurly token ended.
func (l *Lexer) SkipInTemplate(templateBegin int) {
	_ = templateBegin
	begin := l.pos
	tok := l.scanTemplateBody(begin)
	tok.HasLeadingNewline = false
	l.pos = tok.End
	l.cur = tok
}

// InsertSemicolon synthesizes a Semicolon token with Begin == End equal to
// the end of the previously consumed token, stashing the current
// (look-ahead) token so the next Skip restores it unchanged. The synthetic
// token never advances the cursor.
func (l *Lexer) InsertSemicolon() {
	if l.stashed == nil {
		stashed := l.cur
		l.stashed = &stashed
	}
	l.cur = Token{Kind: Semicolon, Begin: l.prevEnd, End: l.prevEnd}
}

// next is the main driver: it skips whitespace/comments (tracking whether a
// line terminator was crossed), then dispatches on the first remaining byte
// to the appropriate scanner. It always returns a token and always makes
// progress by at least one byte unless already at logical end.
func (l *Lexer) next() Token {
	l.prevEnd = l.pos
	leadingNewline := l.skipTrivia()

	begin := l.pos
	size := l.src.Size()
	if begin >= size {
		l.pos = begin
		return Token{Kind: EndOfFile, Begin: begin, End: begin, HasLeadingNewline: leadingNewline}
	}

	b := l.src.byteAt(begin)
	var tok Token
	switch {
	case b == '"' || b == '\'':
		tok = l.scanString(begin)
	case b == '`':
		tok = l.scanTemplateOpen(begin)
	case chars.IsDecimalDigit(b), b == '.' && chars.IsDecimalDigit(l.src.byteAt(begin+1)):
		tok = l.scanNumber(begin)
	case isASCIIIdentifierStart(b), b == '\\', b >= 0x80:
		tok = l.scanIdentifier(begin)
	default:
		if punct, ok := l.scanPunctuator(begin); ok {
			tok = punct
		} else {
			tok = l.scanIdentifier(begin)
		}
	}
	tok.HasLeadingNewline = leadingNewline
	l.pos = tok.End
	return tok
}

func isASCIIIdentifierStart(b byte) bool {
	return b == '_' || b == '$' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// skipTrivia advances past whitespace, line terminators, comments, a
// leading shebang, and malformed #, @ and control bytes, reporting a
// diagnostic for each malformed run. It returns whether any line terminator
// was crossed (spec.md §4.2, §8 property 3).
func (l *Lexer) skipTrivia() bool {
	newline := false
	size := l.src.Size()
	for l.pos < size {
		b := l.src.byteAt(l.pos)
		switch {
		case l.pos == 0 && b == '#' && l.src.byteAt(1) == '!':
			l.skipShebang()
		case b == '\n':
			l.pos++
			newline = true
		case b == '\r':
			l.pos++
			if l.src.byteAt(l.pos) == '\n' {
				l.pos++
			}
			newline = true
		case chars.IsASCIISpace(b):
			l.pos++
		case b == '/' && l.src.byteAt(l.pos+1) == '/':
			l.pos += 2
			l.skipLineComment()
		case b == '/' && l.src.byteAt(l.pos+1) == '*':
			if l.skipBlockComment() {
				newline = true
			}
		case b == '<' && l.matchesASCII(l.pos, "<!--"):
			l.pos += 4
			l.skipLineComment()
		case b == '#':
			l.reportRun(UnexpectedHashCharacter, "where", 1)
		case b == '@':
			l.reportRun(UnexpectedAtCharacter, "where", -1)
		case chars.IsASCIIControl(b):
			l.reportRun(UnexpectedControlCharacter, "where", -2)
		case b >= 0x80:
			r, w, ok := chars.DecodeRune(l.src.Slice(l.pos, l.pos+4))
			if !ok {
				return newline // let the dispatcher's identifier fallback handle it
			}
			if chars.IsLineSeparator(r) {
				l.pos += w
				newline = true
				continue
			}
			if chars.IsUnicodeWhitespace(r) {
				l.pos += w
				continue
			}
			return newline
		default:
			return newline
		}
	}
	return newline
}

// reportRun consumes a maximal run of the byte at the current position
// (mode -1: '@' run; mode -2: ASCII-control run; mode 1: a lone '#') and
// reports one diagnostic over the whole run.
func (l *Lexer) reportRun(kind ErrorKind, spanName string, mode int) {
	start := l.pos
	switch mode {
	case 1:
		l.pos++
	case -1:
		for l.src.byteAt(l.pos) == '@' {
			l.pos++
		}
	case -2:
		for l.pos < l.src.Size() && chars.IsASCIIControl(l.src.byteAt(l.pos)) {
			l.pos++
		}
	}
	l.sink.Report(Diagnostic{Kind: kind, Spans: map[string]Span{spanName: {start, l.pos}}})
}

func (l *Lexer) matchesASCII(at int, s string) bool {
	for i := 0; i < len(s); i++ {
		if l.src.byteAt(at+i) != s[i] {
			return false
		}
	}
	return true
}

// skipShebang consumes a "#!" line at offset 0 through (but not including)
// the next line terminator, treated as an ordinary line comment.
func (l *Lexer) skipShebang() {
	l.pos += 2
	l.skipLineComment()
}

// skipLineComment consumes bytes up to (not including) the next LF, CR, LS,
// PS, or logical end. The caller has already consumed the comment opener.
func (l *Lexer) skipLineComment() {
	size := l.src.Size()
	for l.pos < size {
		b := l.src.byteAt(l.pos)
		if b == '\n' || b == '\r' {
			return
		}
		if b >= 0x80 {
			r, w, ok := chars.DecodeRune(l.src.Slice(l.pos, l.pos+4))
			if ok && chars.IsLineSeparator(r) {
				return
			}
			if ok {
				l.pos += w
				continue
			}
		}
		l.pos++
	}
}

// skipBlockComment consumes a /* … */ comment, reporting
// UnclosedBlockComment if logical end is reached first. Returns whether a
// line terminator was crossed inside the comment.
func (l *Lexer) skipBlockComment() bool {
	start := l.pos
	l.pos += 2
	newline := false
	size := l.src.Size()
	for {
		if l.pos >= size {
			l.sink.Report(Diagnostic{Kind: UnclosedBlockComment, Spans: map[string]Span{"comment_open": {start, start + 2}}})
			return newline
		}
		b := l.src.byteAt(l.pos)
		if b == '*' && l.src.byteAt(l.pos+1) == '/' {
			l.pos += 2
			return newline
		}
		if b == '\n' {
			l.pos++
			newline = true
			continue
		}
		if b == '\r' {
			l.pos++
			if l.src.byteAt(l.pos) == '\n' {
				l.pos++
			}
			newline = true
			continue
		}
		if b >= 0x80 {
			r, w, ok := chars.DecodeRune(l.src.Slice(l.pos, l.pos+4))
			if ok {
				if chars.IsLineSeparator(r) {
					newline = true
				}
				l.pos += w
				continue
			}
		}
		l.pos++
	}
}
