package jslex

import "fmt"

// ErrorKind enumerates the taxonomy of recoverable lexical errors the
// lexer's diagnostic sink must recognize (spec.md §6).
type ErrorKind int

const (
	UnclosedBlockComment ErrorKind = iota
	UnclosedStringLiteral
	UnclosedTemplate
	UnclosedRegexpLiteral
	UnclosedIdentifierEscapeSequence
	NoDigitsInBinaryNumber
	NoDigitsInOctalNumber
	NoDigitsInHexNumber
	UnexpectedCharactersInNumber
	UnexpectedCharactersInBinaryNumber
	UnexpectedCharactersInOctalNumber
	UnexpectedCharactersInHexNumber
	OctalLiteralMayNotHaveDecimal
	OctalLiteralMayNotHaveExponent
	OctalLiteralMayNotBeBigInt
	BigIntLiteralContainsDecimalPoint
	BigIntLiteralContainsExponent
	NumberLiteralContainsConsecutiveUnderscores
	NumberLiteralContainsTrailingUnderscores
	ExpectedHexDigitsInUnicodeEscape
	EscapedCodePointInIdentifierOutOfRange
	EscapedCharacterDisallowedInIdentifiers
	CharacterDisallowedInIdentifiers
	UnexpectedBackslashInIdentifier
	KeywordsCannotContainEscapeSequences
	RegexpLiteralFlagsCannotContainUnicodeEscapes
	InvalidUTF8Sequence
	UnexpectedHashCharacter
	UnexpectedAtCharacter
	UnexpectedControlCharacter
)

var errorKindNames = [...]string{
	"unclosed_block_comment",
	"unclosed_string_literal",
	"unclosed_template",
	"unclosed_regexp_literal",
	"unclosed_identifier_escape_sequence",
	"no_digits_in_binary_number",
	"no_digits_in_octal_number",
	"no_digits_in_hex_number",
	"unexpected_characters_in_number",
	"unexpected_characters_in_binary_number",
	"unexpected_characters_in_octal_number",
	"unexpected_characters_in_hex_number",
	"octal_literal_may_not_have_decimal",
	"octal_literal_may_not_have_exponent",
	"octal_literal_may_not_be_big_int",
	"big_int_literal_contains_decimal_point",
	"big_int_literal_contains_exponent",
	"number_literal_contains_consecutive_underscores",
	"number_literal_contains_trailing_underscores",
	"expected_hex_digits_in_unicode_escape",
	"escaped_code_point_in_identifier_out_of_range",
	"escaped_character_disallowed_in_identifiers",
	"character_disallowed_in_identifiers",
	"unexpected_backslash_in_identifier",
	"keywords_cannot_contain_escape_sequences",
	"regexp_literal_flags_cannot_contain_unicode_escapes",
	"invalid_utf_8_sequence",
	"unexpected_hash_character",
	"unexpected_at_character",
	"unexpected_control_character",
}

// String returns the error kind's spec.md name, e.g. "unclosed_string_literal".
func (k ErrorKind) String() string {
	if k >= 0 && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Diagnostic is a single recoverable lexical error: a Kind plus one or more
// named byte-offset spans identifying the offending bytes (spec.md §6, §7).
// *Diagnostic implements error so a caller who only cares about the first
// failure can treat it as one, in the same spirit as pongo2's own *Error.
type Diagnostic struct {
	Kind  ErrorKind
	Spans map[string]Span
}

// Error formats the diagnostic the way pongo2's *Error formats lexer/parser
// failures: a bracketed kind tag followed by the primary span.
func (d *Diagnostic) Error() string {
	primary, ok := d.primarySpan()
	if !ok {
		return fmt.Sprintf("[%s]", d.Kind)
	}
	return fmt.Sprintf("[%s] at [%d,%d)", d.Kind, primary.Begin, primary.End)
}

// primarySpan picks one span to report when only a single location is
// needed (e.g. Error()). Named spans are otherwise unordered, so this picks
// deterministically by preferring well-known names before falling back to
// an arbitrary one.
func (d *Diagnostic) primarySpan() (Span, bool) {
	for _, name := range []string{"where", "characters", "escape_sequence", "string_literal", "regexp_literal", "comment_open", "incomplete_template", "character", "sequence", "underscores", "backslash"} {
		if sp, ok := d.Spans[name]; ok {
			return sp, true
		}
	}
	for _, sp := range d.Spans {
		return sp, true
	}
	return Span{}, false
}

// DiagnosticSink is the append-only collector the lexer reports errors to.
// It is a borrowed reference: the lexer never retains diagnostics itself
// (spec.md §5).
type DiagnosticSink interface {
	Report(d Diagnostic)
}

// DiagnosticList is a DiagnosticSink that simply accumulates every
// diagnostic in order, the simplest conforming sink and the one
// cmd/jslexdump and the test suite use.
type DiagnosticList struct {
	Diagnostics []Diagnostic
}

// Report appends d to the list.
func (l *DiagnosticList) Report(d Diagnostic) {
	l.Diagnostics = append(l.Diagnostics, d)
}
