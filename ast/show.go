package ast

import (
	"strconv"
	"strings"
)

// rendering precedences; higher binds tighter
const (
	precAdd = iota + 1
	precMul
	precPow
	precUnary
)

func precedenceOf(op BinaryOp) int {
	switch op {
	case Mul:
		return precMul
	case Pow:
		return precPow
	default:
		return precAdd
	}
}

// ExprString renders expr as infix source text that parses back to a
// structurally equal tree.
func ExprString(expr Expr) string {
	ctx := newShowContext()
	ctx.showExprWalker(expr, 0)
	return ctx.String()
}

func (n *Num) String() string    { return ExprString(n) }
func (v *Var) String() string    { return ExprString(v) }
func (u *Unary) String() string  { return ExprString(u) }
func (b *Binary) String() string { return ExprString(b) }

type showContext struct {
	*strings.Builder
}

func newShowContext() *showContext {
	return &showContext{Builder: &strings.Builder{}}
}

func (ctx *showContext) showExprWalker(expr Expr, outerPrecedence int) {
	if expr == nil {
		ctx.WriteString("nil")
		return
	}
	switch expr := expr.(type) {
	case *Num:
		if expr.Value < 0 && outerPrecedence > 0 {
			ctx.WriteString("(" + strconv.FormatInt(expr.Value, 10) + ")")
			return
		}
		ctx.WriteString(strconv.FormatInt(expr.Value, 10))
	case *Var:
		ctx.WriteString(expr.Name)
	case *Unary:
		ctx.showExprWalker(expr.Operand, precUnary)
		ctx.WriteString(expr.Op.String())
	case *Binary:
		prec := precedenceOf(expr.Op)
		if outerPrecedence > prec {
			ctx.WriteString("(")
			defer ctx.WriteString(")")
		}
		for i, operand := range expr.Operands {
			if i > 0 {
				ctx.WriteString(" " + expr.Op.String() + " ")
			}
			// operands at the same precedence keep their parenthesis so
			// the rendering re-parses to the same tree shape
			ctx.showExprWalker(operand, prec+1)
		}
	}
}
