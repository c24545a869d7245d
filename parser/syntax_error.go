package parser

import "fmt"

// SyntaxError reports a lexing or parsing failure at a position of the
// source text. Offset counts runes from the start of the input.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}
