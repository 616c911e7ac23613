package bytecode

import "strings"

// Instruction is an opcode with 0-2 operands and the source range it was
// lowered from (used for diagnostics at execution time).
type Instruction struct {
	Op       Op
	Operands [2]Operand
	Offset   int
	Length   int
}

func (in Instruction) String() string {
	var b strings.Builder
	b.WriteString(in.Op.String())
	for i := 0; i < in.Op.NumOperands(); i++ {
		b.WriteByte(' ')
		b.WriteString(in.Operands[i].String())
	}
	return b.String()
}
