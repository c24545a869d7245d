//go:build js && wasm

package yac

import (
	"fmt"
	"syscall/js"

	"github.com/Overpeek/yac/ast"
)

// SimplifyAndShow parses and simplifies args[0] and renders the result,
// or an error message if the input does not parse. Shaped for js.FuncOf.
func SimplifyAndShow(_ js.Value, args []js.Value) (ret any) {
	defer func() {
		if r := recover(); r != nil {
			ret = "simplifier panicked: " + fmt.Sprint(r)
		}
	}()

	expr, err := Run(args[0].String())
	if err != nil {
		return fmt.Sprintf("the expression has errors:\n%s", err)
	}
	return ast.ExprString(expr)
}
