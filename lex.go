package arith

// Lex splits src into tokens. It scans bytes strictly left to right with no
// backtracking and cannot fail; characters it does not recognize become part
// of identifier tokens, to be rejected by the parser instead. Empty input
// yields no tokens.
func Lex(src string) []Token {
	if len(src) == 0 {
		return nil
	}
	l := lexer{src: src}
	for l.skipSpace() {
		l.tokens = append(l.tokens, l.scanToken())
	}
	return l.tokens
}

func isDigit(c byte) bool    { return '0' <= c && c <= '9' }
func isSpace(c byte) bool    { return c == ' ' || c == '\t' || c == '\r' || c == '\n' }
func isOperator(c byte) bool { return c == '*' || c == '/' || c == '+' || c == '-' || c == '^' }
func isParen(c byte) bool    { return c == '(' || c == ')' }

type lexer struct {
	src    string
	tokens []Token
	pos    int
}

func (l *lexer) current() byte { return l.src[l.pos] }

// consume advances one byte and reports whether input remains.
func (l *lexer) consume() bool {
	l.pos++
	return l.pos < len(l.src)
}

// skipSpace skips a run of whitespace and reports whether input remains.
func (l *lexer) skipSpace() bool {
	for l.pos < len(l.src) && isSpace(l.current()) {
		l.pos++
	}
	return l.pos < len(l.src)
}

func (l *lexer) scanToken() Token {
	switch c := l.current(); {
	case isDigit(c):
		return l.scanNumber()
	case isOperator(c):
		return l.scanOperator()
	case isParen(c):
		return l.scanParen()
	case c == ',':
		l.pos++
		return Token{Kind: TokenComma, Text: ",", Pos: l.pos}
	default:
		return l.scanIdent()
	}
}

func (l *lexer) scanOperator() Token {
	var kind TokenKind
	switch l.current() {
	case '*':
		kind = TokenMul
	case '/':
		kind = TokenDiv
	case '+':
		kind = TokenAdd
	case '-':
		kind = TokenSub
	case '^':
		kind = TokenExp
	}
	start := l.pos
	l.pos++
	return Token{Kind: kind, Text: l.src[start : start+1], Pos: l.pos}
}

func (l *lexer) scanParen() Token {
	kind := TokenLeftParen
	if l.current() == ')' {
		kind = TokenRightParen
	}
	start := l.pos
	l.pos++
	return Token{Kind: kind, Text: l.src[start : start+1], Pos: l.pos}
}

// scanNumber consumes digits and at most one decimal point. A second decimal
// point ends the literal rather than erroring; the stray dot then starts an
// identifier token for the parser to reject.
func (l *lexer) scanNumber() Token {
	start := l.pos
	decimal := false
	for isDigit(l.current()) || (l.current() == '.' && !decimal) {
		if l.current() == '.' {
			decimal = true
		}
		if !l.consume() {
			break
		}
	}
	return Token{Kind: TokenNumber, Text: l.src[start:l.pos], HasDecimal: decimal, Pos: l.pos}
}

// scanIdent consumes until whitespace, an operator, a paren, or end of input.
// Any leading character not claimed by another scanner starts an identifier.
func (l *lexer) scanIdent() Token {
	start := l.pos
	for l.consume() {
		c := l.current()
		if isSpace(c) || isOperator(c) || isParen(c) {
			break
		}
	}
	return Token{Kind: TokenIdent, Text: l.src[start:l.pos], Pos: l.pos}
}
