package compiler

import "icc/ast"

// findLocals is the static pre-scan (§4.6) a Function's pass uses to
// reserve stack slots before lowering its body. It collects, in
// first-encounter order, every Definition identifier and every
// Identifier-typed FunctionCall argument found within, recursing through
// Block but never descending into a nested Function. Duplicates are
// suppressed.
//
// The call-argument harvesting is preserved even though, under the
// present design, every use of a local requires a prior Definition,
// making it appear redundant -- see DESIGN.md's note on this open
// question (§9).
func findLocals(body []ast.Statement) []string {
	var order []string
	seen := make(map[string]bool)
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			order = append(order, name)
		}
	}

	var walk func(stmts []ast.Statement)
	walk = func(stmts []ast.Statement) {
		for _, stmt := range stmts {
			switch stmt.Kind {
			case ast.StmtDefinition:
				add(stmt.Name)
			case ast.StmtFunctionCall:
				for _, arg := range stmt.Arguments {
					if arg.Kind == ast.ExprIdentifier {
						add(arg.Name)
					}
				}
			case ast.StmtBlock:
				walk(stmt.Statements)
			case ast.StmtFunction:
				// Do not descend into nested function bodies.
			}
		}
	}

	walk(body)
	return order
}
