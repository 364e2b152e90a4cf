// Package unicodeid classifies code points as JavaScript IdentifierStart or
// IdentifierPart, per ECMA-262's extension of the Unicode ID_Start/ID_Continue
// properties.
package unicodeid

import "unicode"

const (
	zwnj = '‌' // zero width non-joiner, legal in IdentifierPart
	zwj  = '‍' // zero width joiner, legal in IdentifierPart
)

// startTables composes the Unicode categories that make up ID_Start, the
// same range-table set tdewolff/parse's js package uses for identifierStart.
var startTables = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Other_ID_Start,
}

// continueTables composes the Unicode categories that make up ID_Continue,
// mirroring tdewolff/parse's js package identifierContinue set.
var continueTables = []*unicode.RangeTable{
	unicode.Lu, unicode.Ll, unicode.Lt, unicode.Lm, unicode.Lo, unicode.Nl,
	unicode.Mn, unicode.Mc, unicode.Nd, unicode.Pc, unicode.Other_ID_Continue,
}

// IsStart reports whether r may begin a JavaScript identifier: a Unicode
// ID_Start code point, or one of the language's own additions ($, _).
func IsStart(r rune) bool {
	switch r {
	case '$', '_':
		return true
	}
	return unicode.IsOneOf(startTables, r)
}

// IsPart reports whether r may continue a JavaScript identifier: a Unicode
// ID_Continue code point, or one of $, ZWNJ, ZWJ. Unicode's Lu/Ll/Nd
// categories already cover plain ASCII letters and digits, so no separate
// ASCII fast path is needed for correctness.
func IsPart(r rune) bool {
	switch r {
	case '$', '_', zwnj, zwj:
		return true
	}
	return unicode.IsOneOf(continueTables, r)
}
