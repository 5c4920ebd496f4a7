package isa

import "fmt"

// Opcode is the tag of the target-ISA sum type: every mnemonic the
// lowering driver (or a human reading its output) can produce. Unlike the
// teacher VM's Bytecode, most of these operands aren't homogeneous, so
// Instruction below carries typed fields per opcode family rather than a
// single packed (register, arg) pair.
type Opcode uint8

const (
	// Arithmetic: dst, a, b -> dst = a <op> b
	Add Opcode = iota
	Sub
	Mul
	Div

	// Further math (unary ops, plus the two-operand max/min/mod and
	// rand), modeled for completeness of the ISA but never emitted by the
	// lowering driver (source language exposes no math builtins; see
	// SPEC_FULL.md's SUPPLEMENTED FEATURES note on instruction coverage).
	Abs
	Sqrt
	Floor
	Ceil
	Round
	Trunc
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	Log
	Exp
	Max
	Min
	Mod
	Rand

	// Logic, modeled for completeness; && and || are unimplemented
	// source operators so the generator never emits these either.
	And
	Or
	Xor
	Nor

	// Flow control
	BranchEqual      // beq a b line
	BranchEqualZero  // beqz a line
	BranchGreaterThan // bgt a b line
	BranchLessThan    // blt a b line
	Jump              // j line
	JumpAndLink       // jal line

	// Stack
	Push
	Pop
	Peek

	// Device I/O
	LoadDeviceVariable  // l reg, device, variable
	StoreDeviceVariable // s device, variable, reg

	// Meta
	Label
	Comment
	AliasDecl
	Yield
)

var opcodeNames = map[Opcode]string{
	Add: "add", Sub: "sub", Mul: "mul", Div: "div",
	Abs: "abs", Sqrt: "sqrt", Floor: "floor", Ceil: "ceil", Round: "round", Trunc: "trunc",
	Sin: "sin", Cos: "cos", Tan: "tan", Asin: "asin", Acos: "acos", Atan: "atan",
	Log: "log", Exp: "exp", Max: "max", Min: "min", Mod: "mod", Rand: "rand",
	And: "and", Or: "or", Xor: "xor", Nor: "nor",
	BranchEqual: "beq", BranchEqualZero: "beqz", BranchGreaterThan: "bgt", BranchLessThan: "blt",
	Jump: "j", JumpAndLink: "jal",
	Push: "push", Pop: "pop", Peek: "peek",
	LoadDeviceVariable: "l", StoreDeviceVariable: "s",
	Label: "label", Comment: "comment", AliasDecl: "alias", Yield: "yield",
}

func (op Opcode) String() string {
	if s, ok := opcodeNames[op]; ok {
		return s
	}
	return "?opcode?"
}

// Instruction is one emittable target-ISA line. The code buffer stores
// these in order; an instruction's index in that order is the line number
// used by every branch/jump target (the target ISA has no symbolic
// labels).
type Instruction struct {
	Op Opcode

	// Arithmetic / logic: Dst = A <op> B
	Dst Register
	A   Operand
	B   Operand

	// Flow control: branch operands + target. Target is almost always an
	// immediate line number (an ImmOperand; 0 is a valid placeholder
	// during pass 1, overwritten wholesale in pass 2, never patched) but
	// the function-return idiom targets the link register instead, so
	// Target is register-or-immediate like every other operand.
	Target Operand

	// Stack: the operand pushed, or the register popped/peeked into.
	Reg Register
	Val Operand

	// Device I/O
	Device   Device
	Variable DeviceVariable

	// Meta: label/alias name, or literal comment/annotation text.
	Name string
	Text string
}

// String renders the instruction in the target assembly's textual form.
// This is the single place that understands how each opcode's operands
// print; it mirrors the teacher VM's Instruction.String in spirit (one
// function synthesizing a line from a tagged instruction) but branches on
// opcode family instead of a generic op-arg count.
func (i Instruction) String() string {
	switch i.Op {
	case Add, Sub, Mul, Div, And, Or, Xor, Nor:
		return fmt.Sprintf("%s %s %s %s", i.Op, i.Dst, i.A, i.B)
	case Abs, Sqrt, Floor, Ceil, Round, Trunc, Sin, Cos, Tan, Asin, Acos, Atan, Log, Exp, Rand:
		return fmt.Sprintf("%s %s %s", i.Op, i.Dst, i.A)
	case Max, Min, Mod:
		return fmt.Sprintf("%s %s %s %s", i.Op, i.Dst, i.A, i.B)
	case BranchEqual, BranchGreaterThan, BranchLessThan:
		return fmt.Sprintf("%s %s %s %s", i.Op, i.A, i.B, i.Target)
	case BranchEqualZero:
		return fmt.Sprintf("%s %s %s", i.Op, i.A, i.Target)
	case Jump, JumpAndLink:
		return fmt.Sprintf("%s %s", i.Op, i.Target)
	case Push:
		return fmt.Sprintf("push %s", i.Val)
	case Pop:
		return fmt.Sprintf("pop %s", i.Reg)
	case Peek:
		return fmt.Sprintf("peek %s", i.Reg)
	case LoadDeviceVariable:
		return fmt.Sprintf("l %s %s %s", i.Reg, i.Device, i.Variable)
	case StoreDeviceVariable:
		return fmt.Sprintf("s %s %s %s", i.Device, i.Variable, i.Reg)
	case Label:
		return i.Name + ":"
	case AliasDecl:
		return fmt.Sprintf("alias %s %s", i.Name, i.Device)
	case Comment:
		return "# " + i.Text
	case Yield:
		return "yield"
	default:
		return "?instruction?"
	}
}

// Constructors. Each mirrors one emission site in compiler's lowering
// driver; keeping them here instead of inline keeps Instruction's field
// layout private to callers who just want "the add instruction" rather
// than having to know which fields that opcode reads.

func NewAdd(dst Register, a, b Operand) Instruction  { return Instruction{Op: Add, Dst: dst, A: a, B: b} }
func NewSub(dst Register, a, b Operand) Instruction  { return Instruction{Op: Sub, Dst: dst, A: a, B: b} }
func NewMul(dst Register, a, b Operand) Instruction  { return Instruction{Op: Mul, Dst: dst, A: a, B: b} }
func NewDiv(dst Register, a, b Operand) Instruction  { return Instruction{Op: Div, Dst: dst, A: a, B: b} }

// NewMove is the ISA's register-to-register/immediate move idiom: add
// reg, value, 0.
func NewMove(dst Register, value Operand) Instruction {
	return Instruction{Op: Add, Dst: dst, A: value, B: ImmOperand(0)}
}

func NewBranchEqual(a, b Operand, line int) Instruction {
	return Instruction{Op: BranchEqual, A: a, B: b, Target: ImmOperand(int32(line))}
}
func NewBranchEqualZero(a Operand, line int) Instruction {
	return Instruction{Op: BranchEqualZero, A: a, Target: ImmOperand(int32(line))}
}
func NewBranchGreaterThan(a, b Operand, line int) Instruction {
	return Instruction{Op: BranchGreaterThan, A: a, B: b, Target: ImmOperand(int32(line))}
}
func NewBranchLessThan(a, b Operand, line int) Instruction {
	return Instruction{Op: BranchLessThan, A: a, B: b, Target: ImmOperand(int32(line))}
}
func NewJump(line int) Instruction {
	return Instruction{Op: Jump, Target: ImmOperand(int32(line))}
}
func NewJumpAndLink(line int) Instruction {
	return Instruction{Op: JumpAndLink, Target: ImmOperand(int32(line))}
}

// NewFunctionReturn is the function-return idiom: beqz 0, ra -- a branch
// on the constant 0 that is therefore always taken, targeting the link
// register rather than a literal line. The target ISA has no dedicated
// "return" mnemonic.
func NewFunctionReturn() Instruction {
	return Instruction{Op: BranchEqualZero, A: ImmOperand(0), Target: RegOperand(Ra)}
}

func NewPush(v Operand) Instruction    { return Instruction{Op: Push, Val: v} }
func NewPop(r Register) Instruction    { return Instruction{Op: Pop, Reg: r} }
func NewPeek(r Register) Instruction   { return Instruction{Op: Peek, Reg: r} }

func NewLoadDeviceVariable(dst Register, d Device, v DeviceVariable) Instruction {
	return Instruction{Op: LoadDeviceVariable, Reg: dst, Device: d, Variable: v}
}
func NewStoreDeviceVariable(d Device, v DeviceVariable, src Register) Instruction {
	return Instruction{Op: StoreDeviceVariable, Device: d, Variable: v, Reg: src}
}

func NewLabel(name string) Instruction   { return Instruction{Op: Label, Name: name} }
func NewAlias(name string, d Device) Instruction {
	return Instruction{Op: AliasDecl, Name: name, Device: d}
}
func NewComment(text string) Instruction { return Instruction{Op: Comment, Text: text} }
func NewYield() Instruction              { return Instruction{Op: Yield} }
