package compiler

import (
	"fmt"

	"icc/isa"
)

// Location is where a local currently lives: either a stack slot bound at
// a particular sp_offset value, or a specific register.
//
// A stack Location's bind is the sp_offset value such that, at any later
// point, the slot's distance from the *current* stack top is
// (sp_offset - bind). Binding a freshly-pushed local at
// (sp_offset-before-the-push) makes that distance come out to 1 (top of
// stack) immediately; as further locals get pushed on top of it,
// sp_offset grows and the distance grows to match, which is what lets a
// local defined early in a function still be retrieved correctly after
// later locals have been pushed above it. A stack-passed parameter uses
// the same field to encode its fixed distance from the caller's frame
// boundary, by binding at (index - len(parameters)) -- see
// Scope.BindStackParameter.
type Location struct {
	isRegister bool
	register   isa.Register
	bind       int32
}

func stackLocation(bind int32) Location        { return Location{bind: bind} }
func registerLocation(r isa.Register) Location { return Location{isRegister: true, register: r} }

// IsRegister reports whether loc names a register rather than a stack
// slot.
func (loc Location) IsRegister() bool { return loc.isRegister }

// Register returns the bound register. Only meaningful if IsRegister.
func (loc Location) Register() isa.Register { return loc.register }

// Scope is the scope/stack model (§3, §4.2): the signed SP bookkeeping,
// the locals table, the save-register stack, the loop-label stack, and
// the per-pass label counters. None of this drives the real target
// stack pointer -- it is compiler-side bookkeeping that must stay in sync
// with the instructions actually emitted.
type Scope struct {
	spOffset int32
	locals   map[string]Location

	savedRegisters []isa.Register
	loops          []string

	loopCounter int
	ifCounter   int
}

// NewScope creates a fresh scope/stack model. One is created per program
// and reset between the two passes (its counters and locals do not carry
// information across passes the way the buffer's labels/devices/constants
// do).
func NewScope() *Scope {
	return &Scope{locals: make(map[string]Location)}
}

// Reset clears everything: used between pass 1 and pass 2 so that
// loop/if counters restart at 0 and mint identical names in both passes
// (§4.2, §4.5 rule 1).
func (s *Scope) Reset() {
	s.spOffset = 0
	s.locals = make(map[string]Location)
	s.savedRegisters = nil
	s.loops = nil
	s.loopCounter = 0
	s.ifCounter = 0
}

// SPOffset returns the current signed SP offset from the frame anchor.
func (s *Scope) SPOffset() int32 { return s.spOffset }

// AllocateLocal advances sp_offset and records the local's new stack
// location, bound so its distance-from-top reads as 1 immediately. It
// does not emit anything -- the push that puts the value there is the
// caller's job (Definition lowers its expr, whose push already moved the
// real stack; this just makes the model agree).
func (s *Scope) AllocateLocal(name string) {
	bind := s.spOffset
	s.spOffset++
	s.locals[name] = stackLocation(bind)
}

// AllocateLocalAt records a mapping without advancing sp_offset, used to
// bind parameters to locations the caller already pushed: a register for
// the first four arguments, or a stack Location built with
// BindStackParameter for the rest.
func (s *Scope) AllocateLocalAt(name string, loc Location) {
	s.locals[name] = loc
}

// BindStackParameter builds the Location for the i'th parameter of a
// function taking paramCount parameters, for i >= 4 (the calling
// convention only spills the remainder to the stack). The caller placed
// it above the return address and the preceding register arguments, at a
// fixed distance of (paramCount - i) from the callee's entry SP -- see
// §4.4. Binding at (i - paramCount) makes Scope.StackDistance reproduce
// exactly that constant when evaluated at function entry (sp_offset 0),
// and keeps growing correctly as the callee pushes its own locals on top.
func BindStackParameter(i, paramCount int) Location {
	return stackLocation(int32(i - paramCount))
}

// DeallocateLocal retracts sp_offset and removes the local.
func (s *Scope) DeallocateLocal(name string) {
	s.spOffset--
	delete(s.locals, name)
}

// Unbind removes a local mapping without touching sp_offset, for locals
// whose lifetime was never backed by a logical push -- register-bound and
// stack-passed parameters (§4.4 Function epilogue "unbind parameters").
func (s *Scope) Unbind(name string) {
	delete(s.locals, name)
}

// Lookup resolves a local's location. ok is false if name was never
// defined -- callers turn that into UndefinedVariableError.
func (s *Scope) Lookup(name string) (Location, bool) {
	loc, ok := s.locals[name]
	return loc, ok
}

// StackDistance returns how many slots below the current stack top loc
// sits, given the scope's current sp_offset. Only meaningful for stack
// locations.
func (s *Scope) StackDistance(loc Location) int32 {
	return s.spOffset - loc.bind
}

// SaveRegister emits a push of reg into buf, advances sp_offset, and
// pushes reg onto the save stack.
func (s *Scope) SaveRegister(buf *Buffer, reg isa.Register) {
	buf.Emit(isa.NewPush(isa.RegOperand(reg)))
	s.spOffset++
	s.savedRegisters = append(s.savedRegisters, reg)
}

// RestoreRegister emits a pop into reg, retracts sp_offset, and pops the
// save stack. Panics if nothing is saved -- popping an empty model is an
// internal invariant violation (§7).
func (s *Scope) RestoreRegister(buf *Buffer, reg isa.Register) {
	if len(s.savedRegisters) == 0 {
		internalf("restore_register: save stack is empty")
	}
	s.savedRegisters = s.savedRegisters[:len(s.savedRegisters)-1]
	buf.Emit(isa.NewPop(reg))
	s.spOffset--
}

// NewLoop mints "loop_N" from the loop counter, pushes it onto the loop
// stack, and returns it.
func (s *Scope) NewLoop() string {
	name := fmt.Sprintf("loop_%d", s.loopCounter)
	s.loopCounter++
	s.loops = append(s.loops, name)
	return name
}

// EndLoop pops the current loop off the loop stack.
func (s *Scope) EndLoop() {
	if len(s.loops) == 0 {
		internalf("end_loop: loop stack is empty")
	}
	s.loops = s.loops[:len(s.loops)-1]
}

// NewIf mints "if_N" from the if counter and returns it.
func (s *Scope) NewIf() string {
	name := fmt.Sprintf("if_%d", s.ifCounter)
	s.ifCounter++
	return name
}
