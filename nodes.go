package arith

import "strings"

// Node is a node in the abstract syntax tree of an expression. The tree is
// acyclic and every node exclusively owns its children; Clone produces a
// structurally independent copy when a subtree must outlive its source.
type Node struct {
	kind nodeKind

	// num is the value of a constant node.
	num Number
	// name is the identifier of a symbol node or the function name of a call.
	name string

	// left and right are the operands of an operation node.
	left  *Node
	right *Node
	// args are the ordered arguments of a call node.
	args []*Node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeConst  // a literal Number
	nodeSymbol // a reference to name
	nodeCall   // call name with args

	nodeAdd // left + right
	nodeSub // left - right
	nodeMul // left * right
	nodeDiv // left / right
	nodePow // left ^ right
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "none"
	case nodeConst:
		return "const"
	case nodeSymbol:
		return "symbol"
	case nodeCall:
		return "call"
	case nodeAdd:
		return "add"
	case nodeSub:
		return "sub"
	case nodeMul:
		return "mul"
	case nodeDiv:
		return "div"
	case nodePow:
		return "pow"
	}
	return "nodeKind?"
}

// Constant returns a node holding the literal value num.
func Constant(num Number) *Node {
	return &Node{kind: nodeConst, num: num}
}

// Symbol returns a node referencing the variable name.
func Symbol(name string) *Node {
	return &Node{kind: nodeSymbol, name: name}
}

func opNode(kind nodeKind, left, right *Node) *Node {
	return &Node{kind: kind, left: left, right: right}
}

func callNode(name string, args []*Node) *Node {
	return &Node{kind: nodeCall, name: name, args: args}
}

// Clone returns a deep structural copy of n. Cloning nil yields nil.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	c := &Node{kind: n.kind, num: n.num, name: n.name}
	c.left = n.left.Clone()
	c.right = n.right.Clone()
	if n.args != nil {
		c.args = make([]*Node, len(n.args))
		for i, a := range n.args {
			c.args[i] = a.Clone()
		}
	}
	return c
}

// opText maps an operation node kind to its operator.
func opText(k nodeKind) string {
	switch k {
	case nodeAdd:
		return " + "
	case nodeSub:
		return " - "
	case nodeMul:
		return " * "
	case nodeDiv:
		return " / "
	case nodePow:
		return " ^ "
	}
	return " ? "
}

// String formats the tree as a parsable expression, with every operation
// parenthesized.
func (n *Node) String() string {
	var b strings.Builder
	n.fmt(&b)
	return b.String()
}

func (n *Node) fmt(b *strings.Builder) {
	switch n.kind {
	case nodeConst:
		b.WriteString(n.num.String())
	case nodeSymbol:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		b.WriteByte('(')
		for i, a := range n.args {
			if i > 0 {
				b.WriteString(", ")
			}
			a.fmt(b)
		}
		b.WriteByte(')')
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		b.WriteByte('(')
		n.left.fmt(b)
		b.WriteString(opText(n.kind))
		n.right.fmt(b)
		b.WriteByte(')')
	default:
		// Invalid nodes use an invalid character.
		b.WriteByte('$')
	}
}
