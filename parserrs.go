package arith

import "strconv"

// ParseError is a syntactic failure. It carries the token at the failure
// point, or the last token of the stream if the input ended early. Parsing
// stops at the first error.
type ParseError struct {
	// Token is the offending token. A zero Token means the input was empty.
	Token Token
	// Msg describes the failure.
	Msg string
}

func (err *ParseError) Error() string {
	if err.Token.Kind == TokenNone {
		return err.Msg
	}
	return strconv.Itoa(err.Token.Pos) + ": " + err.Msg
}

// Pos returns the position of the error as the index in the source just past
// the offending token, or 0 when the input was empty.
func (err *ParseError) Pos() int {
	return err.Token.Pos
}

// EvalError is a semantic failure during simplification, such as an unknown
// function name or a wrong argument count. It is detected after the tree
// exists, so it carries no token.
type EvalError struct {
	// Msg describes the failure.
	Msg string
}

func (err *EvalError) Error() string {
	return err.Msg
}
