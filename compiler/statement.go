package compiler

import (
	"fmt"

	"icc/ast"
	"icc/isa"
)

// statement lowers one statement (§4.4). Most variants are emitted
// identically in both passes; the ones whose shape depends on a
// forward-resolved label or a discovered-only-in-pass-2 value (Function
// prologues, FunctionCall, If/IfElse/Loop branch targets, device I/O) use
// g.pass to choose between a placeholder and the resolved form, always
// keeping the instruction count identical between passes (§4.5 rule 2).
func (g *Generator) statement(stmt ast.Statement) error {
	switch stmt.Kind {
	case ast.StmtDefinition:
		return g.definitionStatement(stmt)
	case ast.StmtAssignment:
		return g.assignmentStatement(stmt)
	case ast.StmtAlias:
		return g.aliasStatement(stmt)
	case ast.StmtConstant:
		g.buf.DefineConstant(stmt.Name, toConstantValue(*stmt.ConstValue))
		return nil
	case ast.StmtFunction:
		return g.functionStatement(stmt)
	case ast.StmtFunctionCall:
		return g.functionCallStatement(stmt)
	case ast.StmtBlock:
		return g.blockStatement(stmt.Statements)
	case ast.StmtLoop:
		return g.loopStatement(stmt)
	case ast.StmtIf:
		return g.ifStatement(stmt)
	case ast.StmtIfElse:
		return g.ifElseStatement(stmt)
	case ast.StmtDeviceRead:
		return g.deviceReadStatement(stmt)
	case ast.StmtDeviceWrite:
		return g.deviceWriteStatement(stmt)
	case ast.StmtYield:
		g.buf.Emit(isa.NewYield())
		return nil
	}
	internalf("unreachable statement kind %q", stmt.Kind)
	return nil
}

// definitionStatement lowers expr (which pushes its result) and records
// the pushed value's location; the push itself is the allocation, so
// there is no corresponding pop.
func (g *Generator) definitionStatement(stmt ast.Statement) error {
	if err := g.expr(*stmt.Expr); err != nil {
		return err
	}
	g.scope.AllocateLocal(stmt.Name)
	return nil
}

func (g *Generator) assignmentStatement(stmt ast.Statement) error {
	loc, ok := g.scope.Lookup(stmt.Name)
	if !ok {
		return &UndefinedVariableError{Name: stmt.Name}
	}
	if err := g.expr(*stmt.Expr); err != nil {
		return err
	}
	g.buf.Emit(isa.NewPop(isa.R0))
	g.storeToLocation(loc)
	return nil
}

// storeToLocation writes r0 into loc: a register move, or the
// SP-adjust/push/SP-restore dance for a stack slot (§4.4 Assignment,
// shared with DeviceRead's store-back).
func (g *Generator) storeToLocation(loc Location) {
	if loc.IsRegister() {
		g.buf.Emit(isa.NewMove(loc.Register(), isa.RegOperand(isa.R0)))
		return
	}
	o := g.scope.StackDistance(loc)
	g.buf.Emit(isa.NewSub(isa.Sp, isa.RegOperand(isa.Sp), isa.ImmOperand(o)))
	g.buf.Emit(isa.NewPush(isa.RegOperand(isa.R0)))
	g.buf.Emit(isa.NewAdd(isa.Sp, isa.RegOperand(isa.Sp), isa.ImmOperand(o)))
}

func (g *Generator) aliasStatement(stmt ast.Statement) error {
	dev, err := isa.ParseDevice(stmt.DeviceLiteral)
	if err != nil {
		return err
	}
	g.buf.DefineAlias(stmt.AliasName, dev)
	g.buf.Emit(isa.NewAlias(stmt.AliasName, dev))
	return nil
}

// functionStatement lowers a Function (§4.4). Both passes define the
// label and bind parameters into the scope model identically (so that
// later reads inside the body make the same o==1-or-not decision in both
// passes) and both passes emit one push per register parameter and per
// local -- pass 1 a placeholder, pass 2 the resolved register or zero --
// keeping the two passes' instruction counts equal (§4.5 rule 2).
// Stack-passed parameters emit nothing in either pass.
func (g *Generator) functionStatement(stmt ast.Statement) error {
	g.buf.DefineLabel(stmt.Name)
	g.buf.AnnotateLast(fmt.Sprintf("function %s/%d", stmt.Name, len(stmt.Parameters)))

	paramCount := len(stmt.Parameters)
	for i, p := range stmt.Parameters {
		if i < 4 {
			reg := isa.ArgRegister(i)
			g.scope.AllocateLocalAt(p.Name, registerLocation(reg))
			if g.pass == PassSecond {
				g.buf.Emit(isa.NewPush(isa.RegOperand(reg)))
			} else {
				g.buf.Emit(isa.NewPush(isa.ImmOperand(0)))
			}
		} else {
			g.scope.AllocateLocalAt(p.Name, BindStackParameter(i, paramCount))
		}
	}

	localNames := findLocals(stmt.Body)
	for _, name := range localNames {
		g.buf.Emit(isa.NewPush(isa.ImmOperand(0)))
		g.scope.AllocateLocal(name)
	}

	if err := g.blockStatement(stmt.Body); err != nil {
		return err
	}

	for i := len(localNames) - 1; i >= 0; i-- {
		g.scope.DeallocateLocal(localNames[i])
	}
	for i := paramCount - 1; i >= 0; i-- {
		g.scope.Unbind(stmt.Parameters[i].Name)
	}

	g.buf.Emit(isa.NewFunctionReturn())
	return nil
}

// functionCallStatement lowers a call (§4.4): arguments, caller-save,
// jal, caller-restore, stack-argument cleanup.
func (g *Generator) functionCallStatement(stmt ast.Statement) error {
	for i, arg := range stmt.Arguments {
		if err := g.expr(arg); err != nil {
			return err
		}
		if i < 4 {
			g.buf.Emit(isa.NewPop(isa.ArgRegister(i)))
		}
	}

	for _, reg := range isa.CallerSaved {
		g.scope.SaveRegister(g.buf, reg)
	}

	if g.pass == PassFirst {
		g.buf.Emit(isa.NewJumpAndLink(0))
	} else {
		if !g.buf.HasLabel(stmt.Name) {
			return &UndefinedFunctionError{Name: stmt.Name}
		}
		g.buf.Emit(isa.NewJumpAndLink(g.buf.LookupLabel(stmt.Name)))
	}

	for i := len(isa.CallerSaved) - 1; i >= 0; i-- {
		g.scope.RestoreRegister(g.buf, isa.CallerSaved[i])
	}

	for i := 4; i < len(stmt.Arguments); i++ {
		g.buf.Emit(isa.NewPop(isa.R0))
	}
	return nil
}

func (g *Generator) blockStatement(statements []ast.Statement) error {
	for _, s := range statements {
		if err := g.statement(s); err != nil {
			return err
		}
	}
	return nil
}

func (g *Generator) loopStatement(stmt ast.Statement) error {
	label := g.scope.NewLoop()
	g.buf.DefineLabel(label)

	if err := g.blockStatement(stmt.Body); err != nil {
		return err
	}

	if g.pass == PassFirst {
		g.buf.Emit(isa.NewJump(0))
	} else {
		g.buf.Emit(isa.NewJump(g.buf.LookupLabel(label)))
	}
	g.scope.EndLoop()
	return nil
}

func (g *Generator) ifStatement(stmt ast.Statement) error {
	if err := g.expr(*stmt.Cond); err != nil {
		return err
	}
	g.buf.Emit(isa.NewPop(isa.R0))

	name := g.scope.NewIf()
	endLabel := name + "_end"

	if g.pass == PassFirst {
		g.buf.Emit(isa.NewBranchEqualZero(isa.RegOperand(isa.R0), 0))
	} else {
		g.buf.Emit(isa.NewBranchEqualZero(isa.RegOperand(isa.R0), g.buf.LookupLabel(endLabel)))
	}

	if err := g.blockStatement(stmt.Then); err != nil {
		return err
	}
	g.buf.DefineLabel(endLabel)
	return nil
}

func (g *Generator) ifElseStatement(stmt ast.Statement) error {
	if err := g.expr(*stmt.Cond); err != nil {
		return err
	}
	g.buf.Emit(isa.NewPop(isa.R0))

	name := g.scope.NewIf()
	elseLabel := name + "_else"
	endLabel := name + "_end"

	if g.pass == PassFirst {
		g.buf.Emit(isa.NewBranchEqualZero(isa.RegOperand(isa.R0), 0))
	} else {
		g.buf.Emit(isa.NewBranchEqualZero(isa.RegOperand(isa.R0), g.buf.LookupLabel(elseLabel)))
	}

	if err := g.blockStatement(stmt.Then); err != nil {
		return err
	}

	if g.pass == PassFirst {
		g.buf.Emit(isa.NewJump(0))
	} else {
		g.buf.Emit(isa.NewJump(g.buf.LookupLabel(endLabel)))
	}

	g.buf.DefineLabel(elseLabel)
	if err := g.blockStatement(stmt.Else); err != nil {
		return err
	}
	g.buf.DefineLabel(endLabel)
	return nil
}

// deviceReadStatement lowers a device read (§4.4). Pass 1 emits a
// placeholder load (d0/Setting) of identical shape so the instruction
// count matches pass 2, which resolves the real alias and variable name.
func (g *Generator) deviceReadStatement(stmt ast.Statement) error {
	loc, ok := g.scope.Lookup(stmt.ReadLocal)
	if !ok {
		return &UndefinedVariableError{Name: stmt.ReadLocal}
	}

	if g.pass == PassFirst {
		g.buf.Emit(isa.NewLoadDeviceVariable(isa.R0, isa.D0, isa.VarSetting))
	} else {
		dev, ok := g.buf.LookupAlias(stmt.ReadDevice)
		if !ok {
			return &UndefinedVariableError{Name: stmt.ReadDevice}
		}
		variable, err := isa.ParseDeviceVariable(stmt.ReadVariable)
		if err != nil {
			return err
		}
		g.buf.Emit(isa.NewLoadDeviceVariable(isa.R0, dev, variable))
	}

	g.storeToLocation(loc)
	return nil
}

func (g *Generator) deviceWriteStatement(stmt ast.Statement) error {
	if err := g.expr(*stmt.WriteValue); err != nil {
		return err
	}
	g.buf.Emit(isa.NewPop(isa.R0))

	if g.pass == PassFirst {
		g.buf.Emit(isa.NewStoreDeviceVariable(isa.D0, isa.VarSetting, isa.R0))
		return nil
	}

	dev, ok := g.buf.LookupAlias(stmt.WriteDevice)
	if !ok {
		return &UndefinedVariableError{Name: stmt.WriteDevice}
	}
	variable, err := isa.ParseDeviceVariable(stmt.WriteVariable)
	if err != nil {
		return err
	}
	g.buf.Emit(isa.NewStoreDeviceVariable(dev, variable, isa.R0))
	return nil
}
