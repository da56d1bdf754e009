package arith

import "strconv"

// grammar, precedence low to high:
//
// <expression> ::= <term> (('+' | '-') <term>)*
// <term>       ::= <factor> (('*' | '/') <factor>)*
// <factor>     ::= <value> ['^' <factor>]
// <value>      ::= ('-' | '+') <value>
//                | <constant> <adjacent>*
//                | <ident> '(' <arguments> ')' <adjacent>*   (known functions)
//                | <ident> <adjacent>*
//                | '(' <expression> ')' <adjacent>*
// <adjacent>   ::= '(' <expression> ')' | <factor starting with a constant or ident>
//
// Adjacency is implicit multiplication: "2x", "2(3)" and "(2)(2)" are
// products. Unary '-' folds to multiplication by -1; unary '+' is a no-op.

// Parse consumes tokens left to right and builds the expression tree, or
// returns a *ParseError tied to the offending token. An empty token slice is
// an error, as are leftover tokens after a complete expression.
func Parse(tokens []Token) (*Node, error) {
	if len(tokens) == 0 {
		return nil, &ParseError{Msg: "expected expression"}
	}
	p := parser{tokens: tokens}
	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.errorHere("expected expression")
	}
	if tok := p.current(); tok.Kind != TokenNone {
		return nil, &ParseError{Token: tok, Msg: "unexpected token " + strconv.Quote(tok.Text)}
	}
	return n, nil
}

type parser struct {
	tokens []Token
	pos    int
}

// current returns the token at the cursor, or a zero Token past the end.
func (p *parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{}
}

func (p *parser) peek() Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return Token{}
}

func (p *parser) consume() { p.pos++ }

// errorHere builds a ParseError at the current token, falling back to the
// last token of the stream when the input ended early.
func (p *parser) errorHere(msg string) *ParseError {
	tok := p.current()
	if tok.Kind == TokenNone && len(p.tokens) > 0 {
		tok = p.tokens[len(p.tokens)-1]
	}
	return &ParseError{Token: tok, Msg: msg}
}

// Each parse method returns a nil node with a nil error when the input has no
// such production at the cursor; callers turn that into an error where a
// production is required.

func (p *parser) parseExpression() (*Node, error) {
	n, err := p.parseTerm()
	if err != nil || n == nil {
		return n, err
	}
	for {
		var kind nodeKind
		switch p.current().Kind {
		case TokenAdd:
			kind = nodeAdd
		case TokenSub:
			kind = nodeSub
		default:
			return n, nil
		}
		p.consume()
		rhs, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, p.errorHere("expected term")
		}
		n = opNode(kind, n, rhs)
	}
}

func (p *parser) parseTerm() (*Node, error) {
	n, err := p.parseFactor()
	if err != nil || n == nil {
		return n, err
	}
	for {
		var kind nodeKind
		switch p.current().Kind {
		case TokenMul:
			kind = nodeMul
		case TokenDiv:
			kind = nodeDiv
		default:
			return n, nil
		}
		p.consume()
		rhs, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, p.errorHere("expected factor")
		}
		n = opNode(kind, n, rhs)
	}
}

// parseFactor parses exponentiation with right associativity, so a^b^c is
// a^(b^c).
func (p *parser) parseFactor() (*Node, error) {
	n, err := p.parseValue()
	if err != nil || n == nil {
		return n, err
	}
	if p.current().Kind != TokenExp {
		return n, nil
	}
	p.consume()
	rhs, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if rhs == nil {
		return nil, p.errorHere("expected factor")
	}
	return opNode(nodePow, n, rhs), nil
}

func (p *parser) parseValue() (*Node, error) {
	switch tok := p.current(); tok.Kind {
	case TokenSub:
		// Unary minus binds at the value level: -2^2 is ((-1)*2)^2.
		p.consume()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, p.errorHere("expected value after unary -")
		}
		return opNode(nodeMul, Constant(Int(-1)), v), nil
	case TokenAdd:
		p.consume()
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, p.errorHere("expected value after unary +")
		}
		return v, nil
	case TokenNumber:
		num, ok := numberFromToken(tok)
		if !ok {
			return nil, &ParseError{Token: tok, Msg: "invalid number " + strconv.Quote(tok.Text)}
		}
		p.consume()
		return p.parseAdjacent(Constant(num))
	case TokenIdent:
		// An identifier naming a known function and immediately followed by (
		// is a call; anything else is a bare symbol.
		if FindFunction(tok.Text) != nil && p.peek().Kind == TokenLeftParen {
			call, err := p.parseCall(tok)
			if err != nil {
				return nil, err
			}
			return p.parseAdjacent(call)
		}
		p.consume()
		return p.parseAdjacent(Symbol(tok.Text))
	case TokenLeftParen:
		group, err := p.parseParen()
		if err != nil {
			return nil, err
		}
		return p.parseAdjacent(group)
	default:
		return nil, nil
	}
}

// parseAdjacent folds implicit multiplication: a value followed, with no
// operator between, by a parenthesized group, an identifier, or a number
// literal multiplies with it. Operators never continue adjacency, so "2+3"
// stays an addition.
func (p *parser) parseAdjacent(n *Node) (*Node, error) {
	for {
		switch p.current().Kind {
		case TokenLeftParen:
			group, err := p.parseParen()
			if err != nil {
				return nil, err
			}
			n = opNode(nodeMul, n, group)
		case TokenNumber, TokenIdent:
			rhs, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			n = opNode(nodeMul, n, rhs)
		default:
			return n, nil
		}
	}
}

// parseParen parses a parenthesized subexpression. The current token is
// known to be (.
func (p *parser) parseParen() (*Node, error) {
	p.consume()
	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, p.errorHere("expected expression")
	}
	switch tok := p.current(); tok.Kind {
	case TokenRightParen:
		p.consume()
		return n, nil
	case TokenNone:
		return nil, p.errorHere("unexpected end of input, expected )")
	default:
		return nil, &ParseError{Token: tok, Msg: "expected ), got " + strconv.Quote(tok.Text)}
	}
}

// parseCall parses name(args...) with zero or more comma-separated
// arguments. The current token is the function name, and the one after it is
// known to be (.
func (p *parser) parseCall(name Token) (*Node, error) {
	p.consume()
	p.consume()
	if p.current().Kind == TokenRightParen {
		p.consume()
		return callNode(name.Text, nil), nil
	}
	var args []*Node
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if arg == nil {
			return nil, p.errorHere("expected expression in argument list")
		}
		args = append(args, arg)
		switch tok := p.current(); tok.Kind {
		case TokenComma:
			p.consume()
		case TokenRightParen:
			p.consume()
			return callNode(name.Text, args), nil
		case TokenNone:
			return nil, p.errorHere("unexpected end of input, expected )")
		default:
			return nil, &ParseError{Token: tok, Msg: "expected , or ), got " + strconv.Quote(tok.Text)}
		}
	}
}
