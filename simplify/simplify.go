// Package simplify rewrites an expression tree into an equivalent, more
// compact one.
//
// A call performs exactly one bottom-up sweep: operands of n-ary nodes
// are simplified first, then four local rewrites run over each node in a
// fixed order (associative flattening, like-term combination, unary
// constant folding, n-ary constant folding). Passes are not iterated to
// a fixpoint.
package simplify

import (
	"github.com/Overpeek/yac/ast"
	"github.com/Overpeek/yac/internal/log"
	"github.com/Overpeek/yac/util"
)

// MaxDepth is the hard ceiling on rewrite recursion. Reaching it aborts
// the whole simplification via panic: a tree this deep is treated as an
// invariant violation in the surrounding program, not a user error.
const MaxDepth = 32

var logger = log.DefaultLogger.With("section", "simplify")

// Simplify returns a simplified copy of expr. The input tree is never
// mutated.
func Simplify(expr ast.Expr) ast.Expr {
	return runOnce(expr, 0)
}

func runOnce(expr ast.Expr, depth int) ast.Expr {
	if depth >= MaxDepth {
		panic("simplify: recursion depth limit")
	}

	expr = recurse(expr, depth)
	expr = deParen(expr)
	expr = combineTerms(expr)
	expr = unaryNumOps(expr)
	expr = binaryNumOps(expr)

	logger.Debug("sweep done", "depth", depth, "result", ast.Slog(expr))
	return expr
}

// recurse simplifies every operand of a Binary node, one level down.
// Unary operands are deliberately not descended into: a factorial of a
// compound expression stays as written unless the whole Unary node sits
// under some Binary ancestor.
func recurse(expr ast.Expr, depth int) ast.Expr {
	binary, ok := expr.(*ast.Binary)
	if !ok {
		return expr
	}
	operands := make([]ast.Expr, len(binary.Operands))
	for i, operand := range binary.Operands {
		operands[i] = runOnce(operand, depth+1)
	}
	return ast.Nary(binary.Op, operands...)
}

// deParen removes unnecessary parenthesis:
// it replaces (a+b)+c with a+b+c and so on.
// Operands were already simplified when this runs, so splicing a single
// level is enough.
func deParen(expr ast.Expr) ast.Expr {
	binary, ok := expr.(*ast.Binary)
	if !ok {
		return expr
	}
	operands := make([]ast.Expr, 0, len(binary.Operands))
	for _, operand := range binary.Operands {
		if inner, ok := operand.(*ast.Binary); ok && inner.Op == binary.Op {
			operands = append(operands, inner.Operands...)
		} else {
			operands = append(operands, operand)
		}
	}
	return ast.Nary(binary.Op, operands...)
}

// combineTerms merges terms of a sum that share a factor, so that
// x + x becomes 2 * x and y*x*2 + x + x*2 + 3 becomes (y*2+3)*x + 3.
//
// A product term whose factors all fail to appear in any other term is
// dropped from the result entirely. That is long-standing behaviour the
// rest of the program relies on tests to pin down; see the dropped
// orphan tests before changing it.
func combineTerms(expr ast.Expr) ast.Expr {
	binary, ok := expr.(*ast.Binary)
	if !ok || binary.Op != ast.Add {
		return expr
	}
	logger.Debug("combining terms", "input", ast.Slog(binary))

	terms := binary.Operands
	var newTerms []ast.Expr

	skipped := util.NewEmptySet[int]()
	for i, term := range terms {
		if skipped.Contains(i) {
			continue
		}

		coeff := ast.NewBinary(ast.Add)
		var factor ast.Expr

		if mul, ok := term.(*ast.Binary); ok && mul.Op == ast.Mul {
			// try each factor of the product in turn
			for _, lookingFor := range mul.Operands {
				// scan this term and everything after it
				for j := i; j < len(terms); j++ {
					newCoeff, ok := termFactorCoeff(terms[j], lookingFor)
					if !ok {
						continue
					}
					factor = lookingFor
					skipped.Add(j)
					coeff.With(newCoeff)
				}

				// discard factors that only combined with themselves
				if len(coeff.Operands) == 1 {
					factor = nil
					coeff.Operands = coeff.Operands[:0]
				}

				if factor != nil {
					break
				}
			}
		} else {
			lookingFor := term
			for j := i; j < len(terms); j++ {
				newCoeff, ok := termFactorCoeff(terms[j], lookingFor)
				if !ok {
					continue
				}
				skipped.Add(j)
				coeff.With(newCoeff)
			}
			// a bare term always matches at least itself
			if len(coeff.Operands) > 0 {
				factor = lookingFor
			}
		}

		folded := binaryNumOps(coeff.Build())
		logger.Debug("combined", "coeff", ast.Slog(folded), "factor", ast.Slog(factor))

		switch {
		case factor == nil:
		case folded.StructuralEq(ast.N(1)):
			newTerms = append(newTerms, factor)
		default:
			newTerms = append(newTerms, ast.NewBinary(ast.Mul).With(folded, factor).Build())
		}
	}

	return ast.Nary(ast.Add, newTerms...)
}

// termFactorCoeff extracts the coefficient of lookingFor inside term:
// whatever operand list is left once the first operand structurally
// equal to lookingFor is removed, under the term's own operator. A term
// that is itself equal to lookingFor has coefficient 1. ok is false when
// term does not contain lookingFor at all.
func termFactorCoeff(term, lookingFor ast.Expr) (coeff ast.Expr, ok bool) {
	switch term := term.(type) {
	case *ast.Binary:
		rest := make([]ast.Expr, 0, len(term.Operands))
		found := false
		for _, operand := range term.Operands {
			if !found && operand.StructuralEq(lookingFor) {
				found = true
				continue
			}
			rest = append(rest, operand)
		}
		if !found {
			return nil, false
		}
		return ast.Nary(term.Op, rest...), true
	default:
		if term.StructuralEq(lookingFor) {
			return ast.N(1), true
		}
		return nil, false
	}
}

// factorialCeiling bounds the literals unaryNumOps will expand, keeping
// folded factorials within int64 range.
const factorialCeiling = 10

// unaryNumOps calculates unary operations over literals:
// it replaces 4! with 24. Factorials of anything that is not a literal
// in [0, factorialCeiling] stay as written.
func unaryNumOps(expr ast.Expr) ast.Expr {
	unary, ok := expr.(*ast.Unary)
	if !ok || unary.Op != ast.Fac {
		return expr
	}
	num, ok := unary.Operand.(*ast.Num)
	if !ok || num.Value < 0 || num.Value > factorialCeiling {
		return expr
	}
	product := int64(1)
	for i := int64(2); i <= num.Value; i++ {
		product *= i
	}
	return ast.N(product)
}

// binaryNumOps folds the literal operands of an n-ary node into a single
// literal: it replaces 1+a+2+3 with a+6. Non-literal operands keep their
// relative order and the folded literal, when it differs from the
// operator's identity, is appended last.
//
// Pow folds right-nested: each literal in operand order becomes the base
// raised to the accumulator so far, so 2^3 folds to 3^(2^1) = 9.
func binaryNumOps(expr ast.Expr) ast.Expr {
	binary, ok := expr.(*ast.Binary)
	if !ok {
		return expr
	}

	init := binary.Op.Identity()
	result := init
	operands := make([]ast.Expr, 0, len(binary.Operands))
	for _, operand := range binary.Operands {
		num, ok := operand.(*ast.Num)
		if !ok {
			operands = append(operands, operand)
			continue
		}
		switch binary.Op {
		case ast.Add:
			result += num.Value
		case ast.Mul:
			result *= num.Value
		case ast.Pow:
			result = ipow(num.Value, result)
		}
	}

	if result != init {
		operands = append(operands, ast.N(result))
	}

	return ast.Nary(binary.Op, operands...)
}

func ipow(base, exp int64) int64 {
	if exp < 0 {
		return 0
	}
	result := int64(1)
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}
