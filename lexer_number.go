package jslex

import (
	"github.com/ahmafi/jslex/internal/chars"
	"github.com/ahmafi/jslex/internal/unicodeid"
)

// scanNumber dispatches a numeric literal starting at begin to the
// appropriate sub-scanner based on its prefix (spec.md §4.3).
func (l *Lexer) scanNumber(begin int) Token {
	if l.src.byteAt(begin) == '0' {
		switch l.src.byteAt(begin + 1) {
		case 'b', 'B':
			return l.scanRadixNumber(begin, chars.IsBinaryDigit, NoDigitsInBinaryNumber, UnexpectedCharactersInBinaryNumber)
		case 'o', 'O':
			return l.scanRadixNumber(begin, chars.IsOctalDigit, NoDigitsInOctalNumber, UnexpectedCharactersInOctalNumber)
		case 'x', 'X':
			return l.scanRadixNumber(begin, chars.IsHexDigit, NoDigitsInHexNumber, UnexpectedCharactersInHexNumber)
		}
		if chars.IsDecimalDigit(l.src.byteAt(begin + 1)) {
			return l.scanLegacyOctalNumber(begin)
		}
	}
	return l.scanDecimalNumber(begin)
}

// scanRadixNumber scans 0b/0o/0x literals, which share one shape: a prefix,
// a digit run in the given radix, an optional BigInt suffix, and no
// fraction or exponent.
func (l *Lexer) scanRadixNumber(begin int, isDigit func(byte) bool, noDigitsKind, garbageKind ErrorKind) Token {
	pos := begin + 2
	pos, hadDigit := l.scanDigitRun(pos, isDigit)
	if !hadDigit {
		l.sink.Report(Diagnostic{Kind: noDigitsKind, Spans: map[string]Span{"where": {begin, pos}}})
	}
	if l.src.byteAt(pos) == 'n' {
		pos++
	}
	garbageStart := pos
	pos = l.consumeTrailingGarbage(pos)
	if pos > garbageStart {
		l.sink.Report(Diagnostic{Kind: garbageKind, Spans: map[string]Span{"characters": {garbageStart, pos}}})
	}
	return Token{Kind: Number, Begin: begin, End: pos}
}

// scanLegacyOctalNumber scans a leading-zero integer (spec.md §4.3,
// "legacy octal"). If any digit is 8 or 9 the literal is silently
// reclassified as plain decimal; otherwise a fractional part, exponent, or
// BigInt suffix are each individually erroneous, reported in that fixed
// order (spec.md §5).
func (l *Lexer) scanLegacyOctalNumber(begin int) Token {
	digitsEnd, has89 := l.scanLegacyOctalDigits(begin)
	if has89 {
		return l.finishDecimalNumber(begin, digitsEnd)
	}

	pos := digitsEnd
	if l.src.byteAt(pos) == '.' {
		dotStart := pos
		pos++
		pos, _ = l.scanDigitRun(pos, chars.IsDecimalDigit)
		l.sink.Report(Diagnostic{Kind: OctalLiteralMayNotHaveDecimal, Spans: map[string]Span{"where": {dotStart, pos}}})
	}
	if b := l.src.byteAt(pos); b == 'e' || b == 'E' {
		expStart := pos
		pos++
		if s := l.src.byteAt(pos); s == '+' || s == '-' {
			pos++
		}
		digStart := pos
		pos, _ = l.scanDigitRun(pos, chars.IsDecimalDigit)
		if pos == digStart {
			pos = expStart // bare 'e' with no digits: not an exponent, rewind
		} else {
			l.sink.Report(Diagnostic{Kind: OctalLiteralMayNotHaveExponent, Spans: map[string]Span{"where": {expStart, pos}}})
		}
	}
	if l.src.byteAt(pos) == 'n' {
		nPos := pos
		pos++
		l.sink.Report(Diagnostic{Kind: OctalLiteralMayNotBeBigInt, Spans: map[string]Span{"where": {nPos, pos}}})
	}
	garbageStart := pos
	pos = l.consumeTrailingGarbage(pos)
	if pos > garbageStart {
		l.sink.Report(Diagnostic{Kind: UnexpectedCharactersInNumber, Spans: map[string]Span{"characters": {garbageStart, pos}}})
	}
	return Token{Kind: Number, Begin: begin, End: pos}
}

// scanLegacyOctalDigits scans a run of decimal digits (with separator
// validation) starting at pos, reporting whether any digit was 8 or 9.
func (l *Lexer) scanLegacyOctalDigits(pos int) (end int, has89 bool) {
	for {
		b := l.src.byteAt(pos)
		if chars.IsDecimalDigit(b) {
			if b == '8' || b == '9' {
				has89 = true
			}
			pos++
			continue
		}
		if b == '_' {
			next, consumed := l.scanUnderscoreRun(pos, chars.IsDecimalDigit)
			if !consumed {
				break
			}
			pos = next
			continue
		}
		break
	}
	return pos, has89
}

// scanDecimalNumber scans an ordinary decimal literal: integer part,
// optional fraction, optional exponent, optional BigInt suffix.
func (l *Lexer) scanDecimalNumber(begin int) Token {
	pos, _ := l.scanDigitRun(begin, chars.IsDecimalDigit)
	return l.finishDecimalNumber(begin, pos)
}

// finishDecimalNumber scans the fraction/exponent/BigInt-suffix/garbage
// tail of a decimal-shaped literal whose integer part has already been
// consumed through afterInteger (also used by legacy-octal-as-decimal
// reclassification).
func (l *Lexer) finishDecimalNumber(begin, afterInteger int) Token {
	pos := afterInteger
	hadFraction := false
	if l.src.byteAt(pos) == '.' {
		hadFraction = true
		pos++
		pos, _ = l.scanDigitRun(pos, chars.IsDecimalDigit)
	}

	hadExponent := false
	if b := l.src.byteAt(pos); b == 'e' || b == 'E' {
		expStart := pos
		save := pos
		pos++
		if s := l.src.byteAt(pos); s == '+' || s == '-' {
			pos++
		}
		digStart := pos
		pos, _ = l.scanDigitRun(pos, chars.IsDecimalDigit)
		if pos == digStart {
			l.sink.Report(Diagnostic{Kind: UnexpectedCharactersInNumber, Spans: map[string]Span{"characters": {expStart, save + 1}}})
			pos = save + 1
		} else {
			hadExponent = true
		}
	}

	if l.src.byteAt(pos) == 'n' {
		nPos := pos
		pos++
		if hadFraction {
			l.sink.Report(Diagnostic{Kind: BigIntLiteralContainsDecimalPoint, Spans: map[string]Span{"where": {nPos, pos}}})
		}
		if hadExponent {
			l.sink.Report(Diagnostic{Kind: BigIntLiteralContainsExponent, Spans: map[string]Span{"where": {nPos, pos}}})
		}
	}

	garbageStart := pos
	pos = l.consumeTrailingGarbage(pos)
	if pos > garbageStart {
		l.sink.Report(Diagnostic{Kind: UnexpectedCharactersInNumber, Spans: map[string]Span{"characters": {garbageStart, pos}}})
	}
	return Token{Kind: Number, Begin: begin, End: pos}
}

// scanDigitRun consumes a run of digit/underscore-separator bytes starting
// at pos, reporting NumberLiteralContainsConsecutiveUnderscores for a run of
// two or more underscores and NumberLiteralContainsTrailingUnderscores for a
// single underscore not strictly between two digits (spec.md §4.3).
func (l *Lexer) scanDigitRun(pos int, isDigit func(byte) bool) (end int, hadDigit bool) {
	start := pos
	for {
		b := l.src.byteAt(pos)
		if isDigit(b) {
			pos++
			hadDigit = true
			continue
		}
		if b == '_' {
			underscoreStart := pos
			for l.src.byteAt(pos) == '_' {
				pos++
			}
			runLen := pos - underscoreStart
			if runLen > 1 {
				l.sink.Report(Diagnostic{Kind: NumberLiteralContainsConsecutiveUnderscores, Spans: map[string]Span{"underscores": {underscoreStart, pos}}})
				continue
			}
			precededByDigit := underscoreStart > start && isDigit(l.src.byteAt(underscoreStart-1))
			followedByDigit := isDigit(l.src.byteAt(pos))
			if !precededByDigit || !followedByDigit {
				l.sink.Report(Diagnostic{Kind: NumberLiteralContainsTrailingUnderscores, Spans: map[string]Span{"underscores": {underscoreStart, pos}}})
			}
			continue
		}
		break
	}
	return pos, hadDigit
}

// scanUnderscoreRun is scanDigitRun's underscore-handling step factored out
// for callers (scanLegacyOctalDigits) that scan digits one at a time
// themselves rather than via scanDigitRun.
func (l *Lexer) scanUnderscoreRun(pos int, isDigit func(byte) bool) (end int, consumed bool) {
	underscoreStart := pos
	for l.src.byteAt(pos) == '_' {
		pos++
	}
	runLen := pos - underscoreStart
	if runLen > 1 {
		l.sink.Report(Diagnostic{Kind: NumberLiteralContainsConsecutiveUnderscores, Spans: map[string]Span{"underscores": {underscoreStart, pos}}})
		return pos, true
	}
	// a single underscore is a legal separator only when a digit (of the
	// same class) sits on both sides of it.
	precededByDigit := isDigit(l.src.byteAt(underscoreStart - 1))
	followedByDigit := isDigit(l.src.byteAt(pos))
	if !precededByDigit || !followedByDigit {
		l.sink.Report(Diagnostic{Kind: NumberLiteralContainsTrailingUnderscores, Spans: map[string]Span{"underscores": {underscoreStart, pos}}})
	}
	return pos, true
}

// consumeTrailingGarbage consumes identifier-part bytes following a
// structurally-complete number, the "unexpected characters" tail spec.md
// §4.3 calls for.
func (l *Lexer) consumeTrailingGarbage(pos int) int {
	size := l.src.Size()
	for pos < size {
		b := l.src.byteAt(pos)
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
