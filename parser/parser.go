// Package parser turns infix source text into an ast.Expr.
//
// The grammar is deliberately small: sums, products, right-associative
// powers, postfix factorial, parenthesis, integer literals and
// identifiers. Subtraction and division are not operators in this model
// and are rejected while lexing.
package parser

import (
	"fmt"
	"strconv"

	"github.com/Overpeek/yac/ast"
	"github.com/Overpeek/yac/internal/log"
)

var logger = log.DefaultLogger.With("section", "parser")

// Parse parses src into an expression tree. Sums and products come out
// n-ary, with operands in source order.
func Parse(src string) (ast.Expr, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.kind != tokenEOF {
		return nil, &SyntaxError{Offset: tok.offset, Msg: fmt.Sprintf("expected end of input, found %s", tok.kind)}
	}

	logger.Debug("parsed", "expr", ast.Slog(expr))
	return expr, nil
}

type parser struct {
	tokens []token
	pos    int
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	tok := p.tokens[p.pos]
	if tok.kind != tokenEOF {
		p.pos++
	}
	return tok
}

// expr := term {"+" term}
func (p *parser) parseExpr() (ast.Expr, error) {
	terms := ast.NewBinary(ast.Add)
	for {
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		terms.With(term)
		if p.peek().kind != tokenPlus {
			return terms.Build(), nil
		}
		p.next()
	}
}

// term := power {"*" power}
func (p *parser) parseTerm() (ast.Expr, error) {
	factors := ast.NewBinary(ast.Mul)
	for {
		factor, err := p.parsePower()
		if err != nil {
			return nil, err
		}
		factors.With(factor)
		if p.peek().kind != tokenStar {
			return factors.Build(), nil
		}
		p.next()
	}
}

// power := postfix ["^" power], right-associative
func (p *parser) parsePower() (ast.Expr, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokenCaret {
		return base, nil
	}
	p.next()
	exponent, err := p.parsePower()
	if err != nil {
		return nil, err
	}
	return ast.Nary(ast.Pow, base, exponent), nil
}

// postfix := primary {"!"}
func (p *parser) parsePostfix() (ast.Expr, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().kind == tokenBang {
		p.next()
		expr = ast.NewUnary(ast.Fac, expr)
	}
	return expr, nil
}

// primary := NUMBER | IDENT | "(" expr ")"
func (p *parser) parsePrimary() (ast.Expr, error) {
	tok := p.next()
	switch tok.kind {
	case tokenNumber:
		value, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return nil, &SyntaxError{Offset: tok.offset, Msg: fmt.Sprintf("number %q does not fit in 64 bits", tok.text)}
		}
		return ast.N(value), nil
	case tokenIdent:
		return ast.V(tok.text), nil
	case tokenLParen:
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := p.next(); closing.kind != tokenRParen {
			return nil, &SyntaxError{Offset: closing.offset, Msg: fmt.Sprintf("expected ')', found %s", closing.kind)}
		}
		return expr, nil
	default:
		return nil, &SyntaxError{Offset: tok.offset, Msg: fmt.Sprintf("expected an expression, found %s", tok.kind)}
	}
}
