//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/Overpeek/yac/yac"
)

func main() {
	js.Global().Set("SimplifyAndShow", js.FuncOf(yac.SimplifyAndShow))

	// wait indefinitely so that Go does not terminate execution
	// and the function remains available
	<-make(chan struct{})
}
