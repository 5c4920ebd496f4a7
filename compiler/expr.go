package compiler

import (
	"icc/ast"
	"icc/isa"
)

// expr lowers e so that exactly one value ends up pushed on the stack
// (§4.3): every expression form has this single contract, which is what
// lets BinaryOp recurse into its operands uniformly.
func (g *Generator) expr(e ast.Expr) error {
	switch e.Kind {
	case ast.ExprConstant:
		g.pushValue(e.Value)
		return nil
	case ast.ExprIdentifier:
		return g.identifierExpr(e.Name)
	case ast.ExprBinaryOp:
		return g.binaryExpr(*e.Left, e.Op, *e.Right)
	case ast.ExprUnaryOp:
		internalf("unary operators are not implemented: reached UnaryOp node")
	}
	internalf("unreachable expr kind %q", e.Kind)
	return nil
}

// pushValue pushes a compile-time literal directly: integers and booleans
// (0/1, the ISA has no dedicated boolean type) as immediates, floats as
// float operands.
func (g *Generator) pushValue(v ast.Value) {
	switch v.Kind {
	case ast.ValueFloat:
		g.buf.Emit(isa.NewPush(isa.FloatOperand(float32(v.Float))))
	case ast.ValueBoolean:
		i := int32(0)
		if v.Boolean {
			i = 1
		}
		g.buf.Emit(isa.NewPush(isa.ImmOperand(i)))
	default:
		g.buf.Emit(isa.NewPush(isa.ImmOperand(int32(v.Int))))
	}
}

// identifierExpr resolves name against locals first, then named constants
// (§9 "Named constants vs locals": a constant is inlined at use site), and
// fails with UndefinedVariableError if neither holds it.
func (g *Generator) identifierExpr(name string) error {
	if loc, ok := g.scope.Lookup(name); ok {
		g.pushLocal(loc)
		return nil
	}
	if cv, ok := g.buf.LookupConstant(name); ok {
		g.pushValue(fromConstantValue(cv))
		return nil
	}
	return &UndefinedVariableError{Name: name}
}

// pushLocal reads a local's current value and pushes it. A register local
// is pushed directly (§4.3 "Register(r): emit push r"); a stack local
// needs the SP-adjust/peek/SP-restore dance, with the o==1 case folded
// into a bare peek (§9 "Stack addressing").
func (g *Generator) pushLocal(loc Location) {
	if loc.IsRegister() {
		g.buf.Emit(isa.NewPush(isa.RegOperand(loc.Register())))
		return
	}

	o := g.scope.StackDistance(loc)
	if o == 1 {
		g.buf.Emit(isa.NewPeek(isa.R0))
	} else {
		g.buf.Emit(isa.NewSub(isa.Sp, isa.RegOperand(isa.Sp), isa.ImmOperand(o)))
		g.buf.Emit(isa.NewPeek(isa.R0))
		g.buf.Emit(isa.NewAdd(isa.Sp, isa.RegOperand(isa.Sp), isa.ImmOperand(o)))
	}
	g.buf.Emit(isa.NewPush(isa.RegOperand(isa.R0)))
}

// binaryExpr lowers left and right (each pushes one value), pops them into
// r1 (right, pushed last) and r0 (left), computes, and pushes the result
// (§4.3).
func (g *Generator) binaryExpr(left ast.Expr, op ast.BinaryOperator, right ast.Expr) error {
	if err := g.expr(left); err != nil {
		return err
	}
	if err := g.expr(right); err != nil {
		return err
	}
	g.buf.Emit(isa.NewPop(isa.R1))
	g.buf.Emit(isa.NewPop(isa.R0))

	switch op {
	case ast.OpAdd:
		g.buf.Emit(isa.NewAdd(isa.R0, isa.RegOperand(isa.R0), isa.RegOperand(isa.R1)))
	case ast.OpSub:
		g.buf.Emit(isa.NewSub(isa.R0, isa.RegOperand(isa.R0), isa.RegOperand(isa.R1)))
	case ast.OpMul:
		g.buf.Emit(isa.NewMul(isa.R0, isa.RegOperand(isa.R0), isa.RegOperand(isa.R1)))
	case ast.OpDiv:
		g.buf.Emit(isa.NewDiv(isa.R0, isa.RegOperand(isa.R0), isa.RegOperand(isa.R1)))
	case ast.OpEqual:
		g.comparisonTriple(isa.BranchEqual)
	case ast.OpLess:
		g.comparisonTriple(isa.BranchLessThan)
	case ast.OpGreater:
		g.comparisonTriple(isa.BranchGreaterThan)
	case ast.OpNotEqual, ast.OpLessEqual, ast.OpGreaterEqual, ast.OpAnd, ast.OpOr:
		return &UnimplementedOperatorError{Operator: string(op)}
	default:
		internalf("unreachable binary operator %q", op)
	}

	g.buf.Emit(isa.NewPush(isa.RegOperand(isa.R0)))
	return nil
}

// comparisonTriple emits the three-instruction compare-to-boolean
// sequence (§4.3, §9): a conditional branch that lands two instructions
// ahead when the condition holds, an unconditional "set r0 0", and a
// "set r0 1" the branch lands on. Pass 1 emits the identical shape with a
// placeholder 0 target so the instruction count matches pass 2 exactly
// (§4.5 rule 2). Mirrors the reference lowering verbatim, including its
// fall-through shape for the not-taken case.
func (g *Generator) comparisonTriple(branchOp isa.Opcode) {
	target := 0
	if g.pass == PassSecond {
		target = g.buf.CurrentLine() + 2
	}
	g.buf.Emit(branchTripleHead(branchOp, target))
	g.buf.Emit(isa.NewAdd(isa.R0, isa.ImmOperand(0), isa.ImmOperand(0)))
	g.buf.Emit(isa.NewAdd(isa.R0, isa.ImmOperand(0), isa.ImmOperand(1)))
}

func branchTripleHead(op isa.Opcode, target int) isa.Instruction {
	switch op {
	case isa.BranchEqual:
		return isa.NewBranchEqual(isa.RegOperand(isa.R0), isa.RegOperand(isa.R1), target)
	case isa.BranchLessThan:
		return isa.NewBranchLessThan(isa.RegOperand(isa.R0), isa.RegOperand(isa.R1), target)
	case isa.BranchGreaterThan:
		return isa.NewBranchGreaterThan(isa.RegOperand(isa.R0), isa.RegOperand(isa.R1), target)
	}
	internalf("unreachable comparison opcode %v", op)
	return isa.Instruction{}
}
