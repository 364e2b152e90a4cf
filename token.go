package jslex

import "fmt"

// TokenType classifies a Token. The zero value, EndOfFile, is what a Lexer
// reports once the source buffer is exhausted.
type TokenType int

// Structural and literal token kinds.
const (
	EndOfFile TokenType = iota
	Identifier
	Number
	String
	RegExp
	CompleteTemplate
	IncompleteTemplate
	Semicolon // an ordinary punctuator (§6) as well as InsertSemicolon's synthesized token
)

// Punctuator token kinds, recognized by maximal munch (§4.8).
const (
	Plus TokenType = iota + 100
	Minus
	Star
	Slash
	Percent
	Equal
	Less
	Greater
	Ampersand
	Pipe
	Circumflex
	Bang
	Tilde
	Dot
	Comma
	Colon
	Question
	LeftParen
	RightParen
	LeftSquare
	RightSquare
	LeftCurly
	RightCurly

	PlusPlus
	MinusMinus
	StarStar
	LessLess
	GreaterGreater
	GreaterGreaterGreater
	AmpersandAmpersand
	PipePipe
	EqualEqual
	EqualEqualEqual
	BangEqual
	BangEqualEqual
	LessEqual
	GreaterEqual
	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
	PercentEqual
	StarStarEqual
	AmpersandEqual
	PipeEqual
	CircumflexEqual
	LessLessEqual
	GreaterGreaterEqual
	GreaterGreaterGreaterEqual
	EqualGreater
	DotDotDot
)

// Keyword token kinds. Contextual keywords (as, async, await, from, get,
// let, of, static, yield) are classified the same as reserved keywords at
// this layer (spec.md §4.7).
const (
	As TokenType = iota + 300
	Async
	Await
	Break
	Case
	Catch
	Class
	Const
	Continue
	Debugger
	Default
	Delete
	Do
	Else
	Export
	Extends
	False
	Finally
	For
	From
	Function
	Get
	If
	Import
	In
	Instanceof
	Let
	New
	Null
	Of
	Return
	Static
	Super
	Switch
	This
	Throw
	True
	Try
	Typeof
	Var
	Void
	While
	With
	Yield
)

var tokenTypeNames = map[TokenType]string{
	EndOfFile:          "end_of_file",
	Identifier:         "identifier",
	Number:             "number",
	String:             "string",
	RegExp:             "regexp",
	CompleteTemplate:   "complete_template",
	IncompleteTemplate: "incomplete_template",
	Semicolon:          "semicolon",

	Plus: "plus", Minus: "minus", Star: "star", Slash: "slash",
	Percent: "percent", Equal: "equal", Less: "less", Greater: "greater",
	Ampersand: "ampersand", Pipe: "pipe", Circumflex: "circumflex",
	Bang: "bang", Tilde: "tilde", Dot: "dot", Comma: "comma",
	Colon: "colon", Question: "question", LeftParen: "left_paren",
	RightParen: "right_paren", LeftSquare: "left_square",
	RightSquare: "right_square", LeftCurly: "left_curly",
	RightCurly: "right_curly",

	PlusPlus: "plus_plus", MinusMinus: "minus_minus", StarStar: "star_star",
	LessLess: "less_less", GreaterGreater: "greater_greater",
	GreaterGreaterGreater: "greater_greater_greater",
	AmpersandAmpersand:    "ampersand_ampersand", PipePipe: "pipe_pipe",
	EqualEqual: "equal_equal", EqualEqualEqual: "equal_equal_equal",
	BangEqual: "bang_equal", BangEqualEqual: "bang_equal_equal",
	LessEqual: "less_equal", GreaterEqual: "greater_equal",
	PlusEqual: "plus_equal", MinusEqual: "minus_equal",
	StarEqual: "star_equal", SlashEqual: "slash_equal",
	PercentEqual: "percent_equal", StarStarEqual: "star_star_equal",
	AmpersandEqual: "ampersand_equal", PipeEqual: "pipe_equal",
	CircumflexEqual: "circumflex_equal", LessLessEqual: "less_less_equal",
	GreaterGreaterEqual:       "greater_greater_equal",
	GreaterGreaterGreaterEqual: "greater_greater_greater_equal",
	EqualGreater:              "equal_greater", DotDotDot: "dot_dot_dot",

	As: "as", Async: "async", Await: "await", Break: "break", Case: "case",
	Catch: "catch", Class: "class", Const: "const", Continue: "continue",
	Debugger: "debugger", Default: "default", Delete: "delete", Do: "do",
	Else: "else", Export: "export", Extends: "extends", False: "false",
	Finally: "finally", For: "for", From: "from", Function: "function",
	Get: "get", If: "if", Import: "import", In: "in",
	Instanceof: "instanceof", Let: "let", New: "new", Null: "null",
	Of: "of", Return: "return", Static: "static", Super: "super",
	Switch: "switch", This: "this", Throw: "throw", True: "true",
	Try: "try", Typeof: "typeof", Var: "var", Void: "void",
	While: "while", With: "with", Yield: "yield",
}

// String returns the token kind's spec.md name, e.g. "greater_greater_equal".
func (t TokenType) String() string {
	if name, ok := tokenTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// keywords maps a normalized identifier spelling to its keyword TokenType.
// Built once from tokenTypeNames so the two never drift apart.
var keywords = func() map[string]TokenType {
	m := make(map[string]TokenType, 64)
	for tt := As; tt <= Yield; tt++ {
		if name, ok := tokenTypeNames[tt]; ok {
			m[name] = tt
		}
	}
	return m
}()

// Span is a half-open byte range [Begin, End) into a source buffer.
type Span struct {
	Begin, End int
}

// Empty reports whether the span contains no bytes.
func (s Span) Empty() bool { return s.Begin == s.End }

// Token is an immutable record of one lexical element. Begin/End are
// half-open byte offsets into the Source the Lexer was constructed with.
type Token struct {
	Kind              TokenType
	Begin, End        int
	HasLeadingNewline bool

	// normalizedEnd is the end of the in-place-normalized identifier name,
	// valid only when Kind == Identifier and the identifier contained an
	// escape. Zero otherwise, meaning "use [Begin, End)".
	normalizedEnd int
}

// Span returns the token's source span.
func (t Token) Span() Span { return Span{t.Begin, t.End} }

// IdentifierName returns the token's normalized name bytes. For
// Kind == Identifier this is [Begin, End) unless the identifier contained a
// \u escape, in which case it is the shorter, in-place-normalized prefix
// (spec.md §3, §4.7); the caller must pass the same Source the token was
// produced from.
func (t Token) IdentifierName(src *Source) []byte {
	end := t.End
	if t.normalizedEnd != 0 {
		end = t.normalizedEnd
	}
	return src.Slice(t.Begin, end)
}

// Text returns the token's raw source bytes, [Begin, End).
func (t Token) Text(src *Source) []byte {
	return src.Slice(t.Begin, t.End)
}
