package compiler

import (
	"strings"

	"icc/isa"
)

// Buffer is the code buffer (§3, §4.1): an ordered instruction log whose
// index doubles as the line number every branch target addresses, plus
// the side-tables (comments, labels, device aliases, named constants) the
// two-pass driver consults and updates as it lowers the AST.
type Buffer struct {
	instructions []isa.Instruction
	comments     map[int]string

	labels    map[string]int
	devices   map[string]isa.Device
	constants map[string]constantValue
}

// constantValue mirrors ast.Value but lives in the compiler package so the
// buffer doesn't need to import ast just to remember a literal.
type constantValue struct {
	isFloat bool
	isBool  bool
	i       int64
	f       float64
	b       bool
}

// NewBuffer creates a fresh code buffer. One is created per program
// compile and lives for the duration of both passes.
func NewBuffer() *Buffer {
	return &Buffer{
		comments:  make(map[int]string),
		labels:    make(map[string]int),
		devices:   make(map[string]isa.Device),
		constants: make(map[string]constantValue),
	}
}

// Emit appends an instruction and returns its line number.
func (b *Buffer) Emit(instr isa.Instruction) int {
	line := len(b.instructions)
	b.instructions = append(b.instructions, instr)
	return line
}

// EmitCommentLine appends a comment-only instruction: a line that renders
// as a standalone "# text" comment.
func (b *Buffer) EmitCommentLine(text string) int {
	return b.Emit(isa.NewComment(text))
}

// AnnotateLast attaches a comment to the most recently emitted
// instruction.
func (b *Buffer) AnnotateLast(text string) {
	b.Annotate(len(b.instructions)-1, text)
}

// Annotate attaches a comment to the instruction at line.
func (b *Buffer) Annotate(line int, text string) {
	if line < 0 || line >= len(b.instructions) {
		internalf("annotate: line %d out of range [0, %d)", line, len(b.instructions))
	}
	b.comments[line] = text
}

// CurrentLine returns the line number the next Emit call will land on.
func (b *Buffer) CurrentLine() int {
	return len(b.instructions)
}

// DefineLabel emits a label-marker instruction and records
// labels[name] = the line right after the marker, i.e. the label's body
// entry point -- what every jal/j/branch target actually means (§4.1,
// §8 scenario 3). Re-definition overwrites, which is exactly what makes
// pass 2's full label rebuild idempotent (§4.5 rule 3).
func (b *Buffer) DefineLabel(name string) int {
	b.Emit(isa.NewLabel(name))
	line := b.CurrentLine()
	b.labels[name] = line
	return line
}

// HasLabel reports whether name has been defined yet in this pass.
func (b *Buffer) HasLabel(name string) bool {
	_, ok := b.labels[name]
	return ok
}

// LookupLabel returns the line a label resolves to. Absence here during
// pass 2 is a compiler bug by construction of pass 1 (every label pass 2
// will ever look up was registered during pass 1's sizing walk), so it is
// fatal rather than a returned error.
func (b *Buffer) LookupLabel(name string) int {
	line, ok := b.labels[name]
	if !ok {
		internalf("label lookup missed in pass 2: %q", name)
	}
	return line
}

// DefineAlias records alias -> device in the devices table.
func (b *Buffer) DefineAlias(name string, device isa.Device) {
	b.devices[name] = device
}

// LookupAlias resolves a device alias. The caller (DeviceRead/DeviceWrite
// lowering) is responsible for treating a miss as whatever the
// surrounding statement's error contract says; the buffer itself just
// reports presence.
func (b *Buffer) LookupAlias(name string) (isa.Device, bool) {
	d, ok := b.devices[name]
	return d, ok
}

// DefineConstant records name -> value in the named-constant table.
func (b *Buffer) DefineConstant(name string, v constantValue) {
	b.constants[name] = v
}

// LookupConstant resolves a named constant.
func (b *Buffer) LookupConstant(name string) (constantValue, bool) {
	v, ok := b.constants[name]
	return v, ok
}

// ResetForPassTwo clears instructions and comments but retains labels,
// devices and constants -- the information pass 1 computed for pass 2 to
// consume (§3 Lifecycles, §4.1).
func (b *Buffer) ResetForPassTwo() {
	b.instructions = nil
	b.comments = make(map[int]string)
	// labels is intentionally NOT cleared: pass 2 overwrites every entry
	// it re-defines, and by §4.5 rule 1 it defines exactly the same set
	// at exactly the same points, so the map stays internally consistent
	// even before pass 2 starts touching it.
}

// Len returns the number of instructions emitted so far in the current
// pass.
func (b *Buffer) Len() int {
	return len(b.instructions)
}

// Instructions exposes the emitted instruction sequence (pass 2's final
// state, typically).
func (b *Buffer) Instructions() []isa.Instruction {
	return b.instructions
}

// Render joins the instruction log into the final newline-delimited
// assembly text, appending " # <comment>" to any line carrying one (§4.1,
// §6).
func (b *Buffer) Render() string {
	var sb strings.Builder
	for i, instr := range b.instructions {
		sb.WriteString(instr.String())
		if comment, ok := b.comments[i]; ok {
			sb.WriteString(" # ")
			sb.WriteString(comment)
		}
		if i != len(b.instructions)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
