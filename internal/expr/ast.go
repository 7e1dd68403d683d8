package expr

import "github.com/chriserin/xt/internal/value"

// Node is a parsed expression.
type Node interface {
	// Eval computes the node's value. The scope is never modified.
	Eval(scope *value.Object) (value.Value, error)
	// Pos is the byte offset where the node starts.
	Pos() int
}

// Literal is a constant: a string, a number, true, false or null.
type Literal struct {
	At    int
	Value value.Value
}

// Ident is a bare name resolved against the scope, then the globals.
type Ident struct {
	At   int
	Name string
}

type ArrayLit struct {
	At    int
	Elems []Node
}

// Property is one entry of an object literal. Computed is set for [expr] keys.
type Property struct {
	Key      string
	Computed Node
	Value    Node
}

type ObjectLit struct {
	At    int
	Props []Property
}

// Unary is a prefix operator: -x, +x or !x.
type Unary struct {
	At int
	Op string
	X  Node
}

// Member is a property read: x.name or x[index].
type Member struct {
	At    int
	X     Node
	Name  string
	Index Node
}

func (n *Literal) Pos() int   { return n.At }
func (n *Ident) Pos() int     { return n.At }
func (n *ArrayLit) Pos() int  { return n.At }
func (n *ObjectLit) Pos() int { return n.At }
func (n *Unary) Pos() int     { return n.At }
func (n *Member) Pos() int    { return n.At }
