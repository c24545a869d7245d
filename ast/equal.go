package ast

// StructuralEq on leaves compares by value.

func (n *Num) StructuralEq(other Expr) bool {
	o, ok := other.(*Num)
	return ok && n.Value == o.Value
}

func (v *Var) StructuralEq(other Expr) bool {
	o, ok := other.(*Var)
	return ok && v.Name == o.Name
}

func (u *Unary) StructuralEq(other Expr) bool {
	o, ok := other.(*Unary)
	return ok && u.Op == o.Op && u.Operand.StructuralEq(o.Operand)
}

func (b *Binary) StructuralEq(other Expr) bool {
	o, ok := other.(*Binary)
	if !ok || b.Op != o.Op || len(b.Operands) != len(o.Operands) {
		return false
	}
	for i, operand := range b.Operands {
		if !operand.StructuralEq(o.Operands[i]) {
			return false
		}
	}
	return true
}
