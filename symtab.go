package arith

// SymbolTable maps identifiers to bound expressions. Bindings keep insertion
// order. Values are copied on the way in and on the way out, so a stored
// binding never aliases a tree the caller mutates. A SymbolTable is not safe
// for concurrent use; the zero value is ready to use.
type SymbolTable struct {
	bindings []binding
}

type binding struct {
	name string
	node *Node
}

// Insert binds name to a structural copy of value, replacing an existing
// binding or appending a new one.
func (t *SymbolTable) Insert(name string, value *Node) {
	for i := range t.bindings {
		if t.bindings[i].name == name {
			t.bindings[i].node = value.Clone()
			return
		}
	}
	t.bindings = append(t.bindings, binding{name: name, node: value.Clone()})
}

// Lookup returns a structural copy of the expression bound to name, or nil
// if name is unbound. The copy may be freely embedded in a larger tree.
func (t *SymbolTable) Lookup(name string) *Node {
	if t == nil {
		return nil
	}
	for i := range t.bindings {
		if t.bindings[i].name == name {
			return t.bindings[i].node.Clone()
		}
	}
	return nil
}

// Len returns the number of bindings.
func (t *SymbolTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.bindings)
}
