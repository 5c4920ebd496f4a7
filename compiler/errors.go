package compiler

import "fmt"

// User errors: clean abort, no partial output, per §7.

// UndefinedVariableError reports a reference to a local that was never
// introduced by a Definition.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %s", e.Name)
}

// UndefinedFunctionError reports a call to a function with no matching
// label.
type UndefinedFunctionError struct {
	Name string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("undefined function: %s", e.Name)
}

// UndefinedMainError reports a program with no function named "main".
type UndefinedMainError struct{}

func (e *UndefinedMainError) Error() string {
	return "program does not define a function named main"
}

// UnimplementedOperatorError marks a binary operator the lowering driver
// does not implement: &&, ||, !=, <=, >=. Unary operators are not reported
// through it: reaching a UnaryOp node panics as an internal error.
type UnimplementedOperatorError struct {
	Operator string
}

func (e *UnimplementedOperatorError) Error() string {
	return fmt.Sprintf("unimplemented operator: %s", e.Operator)
}

// Internal invariant violations: fatal, unrecoverable compiler bugs, never
// user-facing. The host idiom for "this should be impossible" is panic,
// mirroring the original source's own unreachable!() use.

func internalf(format string, args ...any) {
	panic(fmt.Sprintf("internal compiler error: "+format, args...))
}
