package isa

import "fmt"

// Register names a general-purpose or special register on the target
// processor. Only r0-r7, ra and sp are ever produced by the lowering
// driver, but the full r0-r15 bank is modeled for completeness the way
// the teacher VM models its full 32-register file even though most of it
// goes unused by any one program.
type Register uint8

const (
	R0 Register = iota
	R1
	R2
	R3
	R4
	R5
	R6
	R7
	R8
	R9
	R10
	R11
	R12
	R13
	R14
	R15
	Ra
	Sp
)

var registerNames = map[Register]string{
	R0: "r0", R1: "r1", R2: "r2", R3: "r3",
	R4: "r4", R5: "r5", R6: "r6", R7: "r7",
	R8: "r8", R9: "r9", R10: "r10", R11: "r11",
	R12: "r12", R13: "r13", R14: "r14", R15: "r15",
	Ra: "ra", Sp: "sp",
}

var nameToRegister map[string]Register

func (r Register) String() string {
	if s, ok := registerNames[r]; ok {
		return s
	}
	return "?reg?"
}

// ArgRegister returns the register holding the i'th call argument under
// the calling convention (first four arguments only; i must be < 4).
func ArgRegister(i int) Register {
	return []Register{R0, R1, R2, R3}[i]
}

// CallerSaved is the fixed, ordered set of registers a FunctionCall saves
// around a jal and restores afterward: ra, r4, r5, r6, r7.
var CallerSaved = []Register{Ra, R4, R5, R6, R7}

func init() {
	nameToRegister = make(map[string]Register, len(registerNames))
	for reg, name := range registerNames {
		nameToRegister[name] = reg
	}
}

// ParseRegister parses a register mnemonic such as "r3" or "ra".
func ParseRegister(s string) (Register, error) {
	if reg, ok := nameToRegister[s]; ok {
		return reg, nil
	}
	return 0, fmt.Errorf("%w: not a register: %q", ErrParse, s)
}
