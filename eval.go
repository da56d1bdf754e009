package arith

// Result is the outcome of simplification: either a fully reduced Number or
// a residual tree that still contains free symbols or unresolved calls.
type Result struct {
	num  Number
	node *Node
}

func numberResult(n Number) Result { return Result{num: n} }
func nodeResult(n *Node) Result    { return Result{node: n} }

// IsNumber reports whether the expression reduced all the way to a value.
func (r Result) IsNumber() bool { return r.node == nil }

// Number returns the reduced value. It is meaningful only when IsNumber
// reports true.
func (r Result) Number() Number { return r.num }

// Node returns the residual tree, or nil when the expression fully reduced.
// The tree is independently owned; it shares no nodes with the input or the
// symbol table.
func (r Result) Node() *Node { return r.node }

func (r Result) String() string {
	if r.node != nil {
		return r.node.String()
	}
	return r.num.String()
}

// asNode converts a result back into a tree node when a residual parent is
// rebuilt around it.
func (r Result) asNode() *Node {
	if r.node != nil {
		return r.node
	}
	return Constant(r.num)
}

// Simplify evaluates n in a single post-order pass, resolving symbols
// against tab and folding constant subtrees. Subtrees that cannot be reduced
// are rebuilt as a residual tree instead; no algebraic identities are
// applied, so 0*x stays 0*x. The first error encountered aborts the whole
// walk. tab may be nil, which behaves as an empty table.
func Simplify(n *Node, tab *SymbolTable) (Result, error) {
	switch n.kind {
	case nodeConst:
		return numberResult(n.num), nil
	case nodeSymbol:
		bound := tab.Lookup(n.name)
		if bound == nil {
			return nodeResult(n.Clone()), nil
		}
		// The binding may itself contain symbols; chase it.
		return Simplify(bound, tab)
	case nodeCall:
		fn := FindFunction(n.name)
		if fn == nil {
			return Result{}, &EvalError{Msg: "function " + n.name + " not found"}
		}
		results := make([]Result, len(n.args))
		numeric := true
		for i, a := range n.args {
			r, err := Simplify(a, tab)
			if err != nil {
				return Result{}, err
			}
			results[i] = r
			if !r.IsNumber() {
				numeric = false
			}
		}
		if numeric {
			args := make([]Number, len(results))
			for i, r := range results {
				args[i] = r.num
			}
			v, err := fn.Call(args)
			if err != nil {
				return Result{}, err
			}
			return numberResult(v), nil
		}
		// Rebuild the call with reduced arguments folded to constants and
		// the rest left residual, in their original order.
		args := make([]*Node, len(results))
		for i, r := range results {
			args[i] = r.asNode()
		}
		return nodeResult(callNode(n.name, args)), nil
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		left, err := Simplify(n.left, tab)
		if err != nil {
			return Result{}, err
		}
		right, err := Simplify(n.right, tab)
		if err != nil {
			return Result{}, err
		}
		if left.IsNumber() && right.IsNumber() {
			return numberResult(applyOp(n.kind, left.num, right.num)), nil
		}
		return nodeResult(opNode(n.kind, left.asNode(), right.asNode())), nil
	default:
		panic("arith: invalid node kind " + n.kind.String())
	}
}

func applyOp(kind nodeKind, a, b Number) Number {
	switch kind {
	case nodeAdd:
		return a.Add(b)
	case nodeSub:
		return a.Sub(b)
	case nodeMul:
		return a.Mul(b)
	case nodeDiv:
		return a.Div(b)
	case nodePow:
		return a.Pow(b)
	default:
		panic("arith: invalid operation kind " + kind.String())
	}
}

// SimplifyString is a shortcut to lex, parse, and simplify src.
func SimplifyString(src string, tab *SymbolTable) (Result, error) {
	n, err := Parse(Lex(src))
	if err != nil {
		return Result{}, err
	}
	return Simplify(n, tab)
}
