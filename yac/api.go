// Package yac is the library surface of the calculator: it ties the
// parser and the rewrite engine together for the CLI, the wasm build,
// and embedders.
package yac

import (
	"github.com/Overpeek/yac/ast"
	"github.com/Overpeek/yac/parser"
	"github.com/Overpeek/yac/simplify"
	"github.com/pkg/errors"
)

// Parse parses src into an expression tree.
func Parse(src string) (ast.Expr, error) {
	expr, err := parser.Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse expression")
	}
	return expr, nil
}

// Run parses src and simplifies the resulting tree with one sweep of
// the rewrite engine.
func Run(src string) (ast.Expr, error) {
	expr, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return simplify.Simplify(expr), nil
}
