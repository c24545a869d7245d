package parser

import (
	"fmt"
	"unicode"
)

type tokenKind int

const (
	tokenEOF tokenKind = iota
	tokenNumber
	tokenIdent
	tokenPlus
	tokenStar
	tokenCaret
	tokenBang
	tokenLParen
	tokenRParen
)

func (k tokenKind) String() string {
	switch k {
	case tokenEOF:
		return "end of input"
	case tokenNumber:
		return "number"
	case tokenIdent:
		return "identifier"
	case tokenPlus:
		return "'+'"
	case tokenStar:
		return "'*'"
	case tokenCaret:
		return "'^'"
	case tokenBang:
		return "'!'"
	case tokenLParen:
		return "'('"
	case tokenRParen:
		return "')'"
	default:
		return "unknown token"
	}
}

type token struct {
	kind   tokenKind
	text   string
	offset int
}

func lex(src string) ([]token, error) {
	runes := []rune(src)
	var tokens []token

	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case unicode.IsDigit(r):
			start := i
			for i < len(runes) && unicode.IsDigit(runes[i]) {
				i++
			}
			tokens = append(tokens, token{kind: tokenNumber, text: string(runes[start:i]), offset: start})
		case unicode.IsLetter(r):
			start := i
			for i < len(runes) && (unicode.IsLetter(runes[i]) || unicode.IsDigit(runes[i])) {
				i++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: string(runes[start:i]), offset: start})
		default:
			kind := tokenEOF
			switch r {
			case '+':
				kind = tokenPlus
			case '*':
				kind = tokenStar
			case '^':
				kind = tokenCaret
			case '!':
				kind = tokenBang
			case '(':
				kind = tokenLParen
			case ')':
				kind = tokenRParen
			case '-', '/':
				return nil, &SyntaxError{
					Offset: i,
					Msg:    fmt.Sprintf("operator %q is not supported", r),
				}
			default:
				return nil, &SyntaxError{
					Offset: i,
					Msg:    fmt.Sprintf("unexpected character %q", r),
				}
			}
			tokens = append(tokens, token{kind: kind, text: string(r), offset: i})
			i++
		}
	}

	tokens = append(tokens, token{kind: tokenEOF, offset: len(runes)})
	return tokens, nil
}
