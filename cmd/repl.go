package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"unicode"

	"github.com/Overpeek/yac/ast"
	"github.com/Overpeek/yac/simplify"
	"github.com/Overpeek/yac/yac"
	"github.com/benbjohnson/immutable"
	"github.com/spf13/cobra"
)

var ReplCmd = &cobra.Command{
	Use:          "repl",
	Short:        "Interactive calculator shell",
	RunE:         runRepl,
	SilenceUsage: true,
}

func runRepl(cmd *cobra.Command, _ []string) error {
	bindings := immutable.NewMap[string, ast.Expr](nil)

	fmt.Fprintln(cmd.OutOrStdout(), `yac shell; "name = expression" binds a variable, "exit" quits`)
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
		case "exit", "quit":
			return nil
		default:
			bindings = evalLine(cmd, bindings, line)
		}
	}
	return scanner.Err()
}

func evalLine(cmd *cobra.Command, bindings *immutable.Map[string, ast.Expr], line string) (after *immutable.Map[string, ast.Expr]) {
	// keep the current bindings when the simplifier bails out
	after = bindings
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "simplifier panicked: %v\n", r)
		}
	}()

	name := ""
	src := line
	if eq := strings.Index(line, "="); eq != -1 {
		name = strings.TrimSpace(line[:eq])
		src = line[eq+1:]
		if name == "" || strings.ContainsFunc(name, isNotIdentRune) {
			fmt.Fprintf(cmd.ErrOrStderr(), "cannot bind to %q\n", name)
			return after
		}
	}

	expr, err := yac.Parse(src)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return after
	}

	// substitute known bindings before simplifying
	for _, unknown := range ast.Vars(expr) {
		if value, ok := bindings.Get(unknown); ok {
			expr = ast.Sub(expr, unknown, value)
		}
	}

	result := simplify.Simplify(expr)

	if name != "" {
		after = bindings.Set(name, result)
		fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", name, ast.ExprString(result))
		return after
	}

	fmt.Fprintln(cmd.OutOrStdout(), ast.ExprString(result))
	if unknowns := ast.Vars(result); len(unknowns) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "  with unknowns: %s\n", strings.Join(unknowns, ", "))
	}
	return after
}

func isNotIdentRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
