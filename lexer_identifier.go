package jslex

import (
	"unicode/utf8"

	"github.com/ahmafi/jslex/internal/chars"
	"github.com/ahmafi/jslex/internal/unicodeid"
)

// scanIdentifier scans an identifier or keyword starting at begin, which is
// either a raw UTF-8 IdentifierStart byte, a backslash introducing a \u
// escape, or a disallowed/invalid byte the driver routed here anyway so the
// error can be attributed to a concrete token (spec.md §4.7).
//
// If any \u escape is found, the decoded code points are UTF-8-encoded back
// into the source buffer starting at begin and the remainder up to the raw
// end is padded with spaces (§3 invariant 3); IdentifierName then returns
// the shorter normalized prefix while Text still spans the original bytes.
func (l *Lexer) scanIdentifier(begin int) Token {
	pos := begin
	atStart := true
	var decoded []byte
	invalidRunStart := -1

	flushInvalidRun := func(end int) {
		if invalidRunStart >= 0 {
			l.sink.Report(Diagnostic{Kind: InvalidUTF8Sequence, Spans: map[string]Span{"sequence": {invalidRunStart, end}}})
			invalidRunStart = -1
		}
	}
	ensureDecoded := func(uptoRaw int) {
		if decoded == nil {
			decoded = append(decoded, l.src.Slice(begin, uptoRaw)...)
		}
	}

	for {
		b := l.src.byteAt(pos)
		if b == '\\' {
			flushInvalidRun(pos)
			cp, end, ok := l.decodeIdentifierEscape(pos)
			if !ok {
				pos = end
				atStart = false
				continue
			}
			legal := cp
			if atStart {
				if !unicodeid.IsStart(legal) {
					l.sink.Report(Diagnostic{Kind: EscapedCharacterDisallowedInIdentifiers, Spans: map[string]Span{"escape_sequence": {pos, end}}})
				}
			} else if !unicodeid.IsPart(legal) {
				l.sink.Report(Diagnostic{Kind: EscapedCharacterDisallowedInIdentifiers, Spans: map[string]Span{"escape_sequence": {pos, end}}})
			}
			ensureDecoded(pos)
			var buf [utf8.UTFMax]byte
			n := utf8.EncodeRune(buf[:], cp)
			decoded = append(decoded, buf[:n]...)
			pos = end
			atStart = false
			continue
		}

		if pos >= l.src.Size() {
			break
		}
		if b < 0x80 {
			ok := false
			if atStart {
				ok = isASCIIIdentifierStart(b)
			} else {
				ok = isASCIIIdentifierStart(b) || chars.IsDecimalDigit(b)
			}
			if !ok {
				break
			}
			flushInvalidRun(pos)
			if decoded != nil {
				decoded = append(decoded, b)
			}
			pos++
			atStart = false
			continue
		}

		r, w, decOK := chars.DecodeRune(l.src.Slice(pos, pos+4))
		if !decOK {
			if invalidRunStart < 0 {
				invalidRunStart = pos
			}
			pos += w
			atStart = false
			continue
		}
		legalHere := unicodeid.IsPart(r)
		if atStart {
			legalHere = unicodeid.IsStart(r)
		}
		flushInvalidRun(pos)
		if !legalHere {
			l.sink.Report(Diagnostic{Kind: CharacterDisallowedInIdentifiers, Spans: map[string]Span{"character": {pos, pos + w}}})
		}
		if decoded != nil {
			decoded = append(decoded, l.src.Slice(pos, pos+w)...)
		}
		pos += w
		atStart = false
	}
	flushInvalidRun(pos)

	end := pos
	var nameBytes []byte
	normalizedEnd := 0
	if decoded != nil {
		l.src.normalize(begin, end, decoded)
		normalizedEnd = begin + len(decoded)
		nameBytes = decoded
	} else {
		nameBytes = l.src.Slice(begin, end)
	}

	kind := Identifier
	if kw, isKeyword := keywords[string(nameBytes)]; isKeyword {
		if decoded != nil {
			l.sink.Report(Diagnostic{Kind: KeywordsCannotContainEscapeSequences, Spans: map[string]Span{"where": {begin, end}}})
		} else {
			kind = kw
		}
	}

	return Token{Kind: kind, Begin: begin, End: end, normalizedEnd: normalizedEnd}
}

// decodeIdentifierEscape decodes one \uXXXX or \u{H...} escape at pos
// (src[pos] == '\\'). It reports its own diagnostics and returns ok=false
// for anything that isn't usable as a code point, including a lone
// backslash (reported as unexpected_backslash_in_identifier with a
// one-byte span) and a \u{...} value above U+10FFFF: on ok=false the raw
// source bytes are left untouched rather than folded into a normalized
// name. end is always the position scanning should resume from.
func (l *Lexer) decodeIdentifierEscape(pos int) (cp rune, end int, ok bool) {
	if l.src.byteAt(pos+1) != 'u' {
		l.sink.Report(Diagnostic{Kind: UnexpectedBackslashInIdentifier, Spans: map[string]Span{"backslash": {pos, pos + 1}}})
		return 0, pos + 1, false
	}
	p := pos + 2
	if l.src.byteAt(p) == '{' {
		p++
		digitsStart := p
		for chars.IsHexDigit(l.src.byteAt(p)) {
			p++
		}
		if p == digitsStart {
			l.sink.Report(Diagnostic{Kind: ExpectedHexDigitsInUnicodeEscape, Spans: map[string]Span{"escape_sequence": {pos, p}}})
			return 0, p, false
		}
		if l.src.byteAt(p) != '}' {
			l.sink.Report(Diagnostic{Kind: UnclosedIdentifierEscapeSequence, Spans: map[string]Span{"escape_sequence": {pos, p}}})
			return 0, p, false
		}
		val := hexValue(l.src.Slice(digitsStart, p))
		end = p + 1
		if val > 0x10FFFF {
			l.sink.Report(Diagnostic{Kind: EscapedCodePointInIdentifierOutOfRange, Spans: map[string]Span{"escape_sequence": {pos, end}}})
			return 0, end, false
		}
		return rune(val), end, true
	}
	for i := 0; i < 4; i++ {
		if !chars.IsHexDigit(l.src.byteAt(p + i)) {
			l.sink.Report(Diagnostic{Kind: ExpectedHexDigitsInUnicodeEscape, Spans: map[string]Span{"escape_sequence": {pos, p + i}}})
			return 0, p + i, false
		}
	}
	val := hexValue(l.src.Slice(p, p+4))
	return rune(val), p + 4, true
}

func hexValue(digits []byte) int {
	v := 0
	for _, b := range digits {
		v = v*16 + chars.HexValue(b)
		if v > 0x10FFFF {
			return v // already out of range; stop before the int can overflow
		}
	}
	return v
}
