package isa

import "strconv"

// Operand is a register-or-number value, the shape nearly every
// arithmetic and comparison instruction's non-destination operands take
// (mirroring the target's RegisterOrNumber operand position). A number
// operand is either integer or floating point, matching the source
// language's two numeric literal kinds.
type Operand struct {
	isRegister bool
	isFloat    bool
	reg        Register
	imm        int32
	flt        float32
}

// RegOperand wraps a register as an operand.
func RegOperand(r Register) Operand { return Operand{isRegister: true, reg: r} }

// ImmOperand wraps a signed integer immediate as an operand.
func ImmOperand(v int32) Operand { return Operand{imm: v} }

// FloatOperand wraps a floating point immediate as an operand.
func FloatOperand(v float32) Operand { return Operand{isFloat: true, flt: v} }

func (o Operand) String() string {
	switch {
	case o.isRegister:
		return o.reg.String()
	case o.isFloat:
		return strconv.FormatFloat(float64(o.flt), 'g', -1, 32)
	default:
		return strconv.FormatInt(int64(o.imm), 10)
	}
}
