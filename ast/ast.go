package ast

// Expr is the interface for all expression nodes.
//
// Trees are values: passes that rewrite an expression build replacement
// nodes rather than mutating operands in place, so an Expr may be shared
// freely between the tree it came from and the tree that replaces it.
type Expr interface {
	// StructuralEq reports deep, order-sensitive value equality with
	// other. It performs no commutative or associative normalisation:
	// a*b and b*a are not structurally equal.
	StructuralEq(other Expr) bool

	String() string

	exprNode() // Marker method to distinguish expressions
}

// UnaryOp is the operator tag of a Unary node.
type UnaryOp int

const (
	// Fac is the postfix factorial operator.
	Fac UnaryOp = iota
)

func (op UnaryOp) String() string {
	switch op {
	case Fac:
		return "!"
	default:
		return "?"
	}
}

// BinaryOp is the operator tag of a Binary node.
type BinaryOp int

const (
	Add BinaryOp = iota
	Mul
	Pow
)

func (op BinaryOp) String() string {
	switch op {
	case Add:
		return "+"
	case Mul:
		return "*"
	case Pow:
		return "^"
	default:
		return "?"
	}
}

// Identity returns the value v such that applying op to v and x yields x.
// It is the value an empty Binary node of this operator collapses to.
func (op BinaryOp) Identity() int64 {
	if op == Add {
		return 0
	}
	return 1
}

// Num represents an integer literal.
type Num struct {
	Value int64
}

func (*Num) exprNode() {}

// N returns a literal node for v.
func N(v int64) *Num { return &Num{Value: v} }

// Var represents a symbolic variable. Two variables are the same symbol
// iff their names match exactly.
type Var struct {
	Name string
}

func (*Var) exprNode() {}

// V returns a variable node named name.
func V(name string) *Var { return &Var{Name: name} }

// Unary represents a unary operation. It always has exactly one operand.
type Unary struct {
	Op      UnaryOp
	Operand Expr
}

func (*Unary) exprNode() {}

func NewUnary(op UnaryOp, operand Expr) *Unary {
	return &Unary{Op: op, Operand: operand}
}

// Binary represents an n-ary operation over an ordered operand list.
// The list may be empty or hold a single operand: both shapes occur
// transiently while rewriting and collapse on Build.
//
// Operand order matters: the like-term combination algorithm scans
// left-to-right and uses it for tie-breaking, so it must be preserved
// by every rewrite.
type Binary struct {
	Op       BinaryOp
	Operands []Expr
}

func (*Binary) exprNode() {}

// NewBinary starts a Binary node with no operands yet. Chain With to add
// operands and Build to obtain the finished (normalised) expression.
func NewBinary(op BinaryOp) *Binary {
	return &Binary{Op: op}
}

// With appends operands, returning the receiver for chaining.
func (b *Binary) With(operands ...Expr) *Binary {
	b.Operands = append(b.Operands, operands...)
	return b
}

// Build normalises the node: no operands collapse to the operator's
// identity literal, a single operand collapses to that operand, and
// anything else is returned as-is. Constant folding relies on this to
// turn a fully-folded sum or product into a bare literal.
func (b *Binary) Build() Expr {
	switch len(b.Operands) {
	case 0:
		return N(b.Op.Identity())
	case 1:
		return b.Operands[0]
	default:
		return b
	}
}

// Nary is shorthand for NewBinary(op).With(operands...).Build().
func Nary(op BinaryOp, operands ...Expr) Expr {
	return NewBinary(op).With(operands...).Build()
}
