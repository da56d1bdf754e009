package arith

import "strconv"

// Token is a single lexical element of an expression. Tokens are produced by
// Lex in input order and are never mutated afterward.
type Token struct {
	// Text is the slice of the source the token was scanned from.
	Text string
	// Kind classifies the token.
	Kind TokenKind
	// HasDecimal records whether a number literal contained a decimal point.
	// It is false for every other kind.
	HasDecimal bool
	// Pos is the index in the source just past the token. Parse errors use it
	// to point at the offending input.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// TokenNone marks the absence of a token, e.g. past the end of the
	// stream. The parser relies on the zero Token having this kind.
	TokenNone TokenKind = iota
	// TokenMul is the * operator.
	TokenMul
	// TokenDiv is the / operator.
	TokenDiv
	// TokenAdd is the + operator.
	TokenAdd
	// TokenSub is the - operator.
	TokenSub
	// TokenExp is the ^ operator.
	TokenExp
	// TokenNumber is an integer or decimal literal.
	TokenNumber
	// TokenIdent is a variable or function name.
	TokenIdent
	// TokenLeftParen is (.
	TokenLeftParen
	// TokenRightParen is ).
	TokenRightParen
	// TokenComma separates function arguments.
	TokenComma
)

// IsOperator reports whether k is one of the five infix operator kinds.
func (k TokenKind) IsOperator() bool {
	switch k {
	case TokenMul, TokenDiv, TokenAdd, TokenSub, TokenExp:
		return true
	}
	return false
}

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "none"
	case TokenMul:
		return "mul"
	case TokenDiv:
		return "div"
	case TokenAdd:
		return "add"
	case TokenSub:
		return "sub"
	case TokenExp:
		return "exp"
	case TokenNumber:
		return "number"
	case TokenIdent:
		return "ident"
	case TokenLeftParen:
		return "lparen"
	case TokenRightParen:
		return "rparen"
	case TokenComma:
		return "comma"
	}
	return "tokenKind(" + strconv.Itoa(int(k)) + ")"
}
