package jslex

// punctuators4, punctuators3, punctuators2 and punctuators1 list every
// recognized punctuator spelling, grouped by byte length, so scanPunctuator's maximal munch
// can simply try 4, then 3, then 2, then 1 bytes and take the first match
// (spec.md §4.8).
var punctuators4 = []struct {
	text string
	kind TokenType
}{
	{">>>=", GreaterGreaterGreaterEqual},
}

var punctuators3 = []struct {
	text string
	kind TokenType
}{
	{"===", EqualEqualEqual},
	{"!==", BangEqualEqual},
	{"**=", StarStarEqual},
	{"<<=", LessLessEqual},
	{">>=", GreaterGreaterEqual},
	{">>>", GreaterGreaterGreater},
	{"...", DotDotDot},
}

var punctuators2 = []struct {
	text string
	kind TokenType
}{
	{"++", PlusPlus},
	{"--", MinusMinus},
	{"**", StarStar},
	{"<<", LessLess},
	{">>", GreaterGreater},
	{"&&", AmpersandAmpersand},
	{"||", PipePipe},
	{"==", EqualEqual},
	{"!=", BangEqual},
	{"<=", LessEqual},
	{">=", GreaterEqual},
	{"+=", PlusEqual},
	{"-=", MinusEqual},
	{"*=", StarEqual},
	{"/=", SlashEqual},
	{"%=", PercentEqual},
	{"&=", AmpersandEqual},
	{"|=", PipeEqual},
	{"^=", CircumflexEqual},
	{"=>", EqualGreater},
}

var punctuators1 = map[byte]TokenType{
	'+': Plus, '-': Minus, '*': Star, '/': Slash, '%': Percent,
	'=': Equal, '<': Less, '>': Greater, '&': Ampersand, '|': Pipe,
	'^': Circumflex, '!': Bang, '~': Tilde, '.': Dot, ',': Comma,
	':': Colon, '?': Question, '(': LeftParen, ')': RightParen,
	'[': LeftSquare, ']': RightSquare, '{': LeftCurly, '}': RightCurly,
	';': Semicolon,
}

// scanPunctuator recognizes one punctuator token at begin by maximal munch:
// the longest matching spelling wins. ok is false if no punctuator starts
// at begin, leaving the byte for the caller's identifier-error fallback.
func (l *Lexer) scanPunctuator(begin int) (Token, bool) {
	if p, ok := l.matchPunctuator(begin, punctuators4); ok {
		return p, true
	}
	if p, ok := l.matchPunctuator(begin, punctuators3); ok {
		return p, true
	}
	if p, ok := l.matchPunctuator(begin, punctuators2); ok {
		return p, true
	}
	if kind, ok := punctuators1[l.src.byteAt(begin)]; ok {
		return Token{Kind: kind, Begin: begin, End: begin + 1}, true
	}
	return Token{}, false
}

func (l *Lexer) matchPunctuator(begin int, table []struct {
	text string
	kind TokenType
}) (Token, bool) {
	for _, p := range table {
		if l.matchesASCII(begin, p.text) {
			return Token{Kind: p.kind, Begin: begin, End: begin + len(p.text)}, true
		}
	}
	return Token{}, false
}
