// Package compiler is the lowering driver (§4): the two-pass traversal
// that turns an ast.Program into a single rendered target-ISA text
// listing, consulting and updating the code buffer and scope/stack model
// as it goes.
package compiler

import "icc/ast"

// Pass distinguishes the sizing pass (which only has to get instruction
// *counts* right so label line numbers come out correct) from the
// emission pass (which resolves every forward reference against the
// labels pass 1 recorded).
type Pass int

const (
	PassFirst Pass = iota
	PassSecond
)

// Generator drives the two-pass lowering described in §4.2-§4.6. It owns
// the code buffer and scope model for the duration of one compile; both
// are created fresh per Generate call, matching §5's "no shared state
// between compile invocations."
type Generator struct {
	buf   *Buffer
	scope *Scope
	pass  Pass
}

// Generate lowers program to a single newline-delimited target-ISA
// listing (§6). It returns a user-facing error (UndefinedVariableError,
// UndefinedFunctionError, UndefinedMainError, UnimplementedOperatorError,
// or an isa ParseError) for
// anything wrong with the AST itself; anything else is an internal
// invariant violation and panics, per §7.
func Generate(program ast.Program) (string, error) {
	g := &Generator{buf: NewBuffer(), scope: NewScope(), pass: PassFirst}

	for _, stmt := range program.Statements {
		if err := g.statement(stmt); err != nil {
			return "", err
		}
	}

	firstPassLen := g.buf.Len()
	g.buf.ResetForPassTwo()
	g.scope.Reset()
	g.pass = PassSecond

	for _, stmt := range program.Statements {
		if err := g.statement(stmt); err != nil {
			return "", err
		}
	}

	if g.buf.Len() != firstPassLen {
		internalf("pass parity violated: pass 1 emitted %d instructions, pass 2 emitted %d", firstPassLen, g.buf.Len())
	}

	if !g.buf.HasLabel("main") {
		return "", &UndefinedMainError{}
	}

	return g.buf.Render(), nil
}

func toConstantValue(v ast.Value) constantValue {
	switch v.Kind {
	case ast.ValueFloat:
		return constantValue{isFloat: true, f: v.Float}
	case ast.ValueBoolean:
		return constantValue{isBool: true, b: v.Boolean}
	default:
		return constantValue{i: v.Int}
	}
}

func fromConstantValue(cv constantValue) ast.Value {
	switch {
	case cv.isFloat:
		return ast.Float(cv.f)
	case cv.isBool:
		return ast.Bool(cv.b)
	default:
		return ast.Int(cv.i)
	}
}
