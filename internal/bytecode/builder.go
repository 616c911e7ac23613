package bytecode

import "noja/internal/diag"

// ExeBuilder is the append-only instruction buffer the compiler emits
// into. Appending never fails in this implementation (Go's allocator is
// the backing store, not a fixed arena), so Append reports no error and
// returns only the new instruction's index.
type ExeBuilder struct {
	instrs []Instruction
	source []byte
}

// NewExeBuilder returns a builder that will tag its finalized Executable
// with the given source (for diagnostic back-reference).
func NewExeBuilder(source []byte) *ExeBuilder {
	return &ExeBuilder{source: source}
}

// Append records a new instruction and returns its index. If any operand
// is a promise, the instruction slot depends on that promise being
// resolved by the time Finalize runs.
func (b *ExeBuilder) Append(op Op, offset, length int, operands ...Operand) int {
	in := Instruction{Op: op, Offset: offset, Length: length}
	for i, o := range operands {
		if i >= len(in.Operands) {
			panic("bytecode: opcode given more than 2 operands")
		}
		in.Operands[i] = o
	}
	idx := len(b.instrs)
	b.instrs = append(b.instrs, in)
	return idx
}

// InstrCount returns the number of instructions appended so far. The
// compiler snapshots this to capture a jump target.
func (b *ExeBuilder) InstrCount() int { return len(b.instrs) }

// Finalize replaces every promise operand with its resolved integer value
// and returns the immutable Executable. An unresolved promise is an
// internal error (a bug in the compiler, since every promise the compiler
// hands out must be resolved before the compilation ends).
func (b *ExeBuilder) Finalize(sink *diag.Sink) (*Executable, bool) {
	for i := range b.instrs {
		in := &b.instrs[i]
		for j := 0; j < in.Op.NumOperands(); j++ {
			op := &in.Operands[j]
			if op.Kind != OperandPromise {
				continue
			}
			if !op.Promise.IsResolved() {
				sink.ReportInternal(in.Offset, in.Length, errUnresolvedPromise)
				return nil, false
			}
			*op = IntOperand(op.Promise.Value())
		}
	}
	return &Executable{Instrs: b.instrs, Source: b.source}, true
}

var errUnresolvedPromise = unresolvedPromiseError{}

type unresolvedPromiseError struct{}

func (unresolvedPromiseError) Error() string {
	return "finalize: instruction references an unresolved promise"
}
