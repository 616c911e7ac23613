package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"noja/internal/bytecode"
)

var (
	opStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	operandStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	indexStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	jumpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Italic(true)
)

var jumpOps = map[bytecode.Op]bool{
	bytecode.JUMP: true, bytecode.JUMPIFNOTANDPOP: true, bytecode.JUMPIFANDPOP: true,
}

// disassemble prints exe's instructions, one per line, with the opcode,
// operands, and (for jump instructions) the resolved target styled
// distinctly so a skim of the listing shows control flow at a glance.
func disassemble(w io.Writer, exe *bytecode.Executable) {
	for i, in := range exe.Instrs {
		line := fmt.Sprintf("%s  %s", indexStyle.Render(fmt.Sprintf("%4d", i)), opStyle.Render(in.Op.String()))
		for j := 0; j < in.Op.NumOperands(); j++ {
			operand := in.Operands[j]
			if jumpOps[in.Op] && j == 0 {
				line += " " + jumpStyle.Render("->"+operand.String())
				continue
			}
			line += " " + operandStyle.Render(operand.String())
		}
		fmt.Fprintln(w, line)
	}
}
