package ast

import (
	"sort"

	"github.com/xtgo/set"
)

// Sub returns expr with every occurrence of the named variable replaced
// by value. The input tree is not modified.
func Sub(expr Expr, name string, value Expr) Expr {
	switch expr := expr.(type) {
	case *Var:
		if expr.Name == name {
			return value
		}
		return expr
	case *Unary:
		return NewUnary(expr.Op, Sub(expr.Operand, name, value))
	case *Binary:
		operands := make([]Expr, len(expr.Operands))
		for i, operand := range expr.Operands {
			operands[i] = Sub(operand, name, value)
		}
		return &Binary{Op: expr.Op, Operands: operands}
	default:
		return expr
	}
}

// Vars returns the distinct variable names appearing in expr, sorted.
func Vars(expr Expr) []string {
	names := collectVars(expr, nil)
	sort.Strings(names)
	return names[:set.Uniq(sort.StringSlice(names))]
}

func collectVars(expr Expr, acc []string) []string {
	switch expr := expr.(type) {
	case *Var:
		acc = append(acc, expr.Name)
	case *Unary:
		acc = collectVars(expr.Operand, acc)
	case *Binary:
		for _, operand := range expr.Operands {
			acc = collectVars(operand, acc)
		}
	}
	return acc
}
