// Package compiler lowers an AST produced by the (external) parser into a
// bytecode.Executable: recursive descent over the tree, emitting
// instructions into a bytecode.ExeBuilder as it goes, with an
// exception-like abort path for the first error encountered.
package compiler

import (
	"fmt"

	"noja/internal/arena"
	"noja/internal/ast"
	"noja/internal/bytecode"
	"noja/internal/diag"
)

// maxTupleElements bounds how many leaves a PAIR tuple tree may flatten
// into, for both multi-target assignment and return statements.
const maxTupleElements = 32

// compiler holds the state threaded through one compilation: the
// instruction builder and the error sink every recursive step reports
// into. It never recovers from an error itself; fail and failInternal
// unwind all the way out to Compile.
type compiler struct {
	b     *bytecode.ExeBuilder
	sink  *diag.Sink
	arena *arena.Arena
}

// abortSignal is the payload of the panic that implements "abort
// compilation and unwind to compile". It is never allowed past Compile's
// own recover.
type abortSignal struct{}

func (c *compiler) fail(offset, length int, format string, args ...interface{}) {
	c.sink.Report(offset, length, format, args...)
	panic(abortSignal{})
}

func (c *compiler) failInternal(offset, length int, err error) {
	c.sink.ReportInternal(offset, length, err)
	panic(abortSignal{})
}

// Compile lowers tree into a finalized Executable. tree's root must be a
// COMP node. If alloc is nil, a scratch arena is created and owned for
// the duration of the call (Go's garbage collector reclaims it when
// Compile returns; there is no explicit free path to run). On failure,
// sink carries the first error encountered and the returned Executable is
// nil.
func Compile(tree *ast.Node, alloc *arena.Arena, sink *diag.Sink) (exe *bytecode.Executable, ok bool) {
	if sink == nil {
		panic("compiler: Compile requires a non-nil error sink")
	}
	if tree == nil || tree.Kind != ast.KindComp {
		sink.ReportInternal(0, 0, fmt.Errorf("compiler: AST root must be a COMP node"))
		return nil, false
	}
	if alloc == nil {
		alloc = arena.New()
	}

	c := &compiler{b: bytecode.NewExeBuilder(nil), sink: sink, arena: alloc}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, isAbort := r.(abortSignal); isAbort {
			exe, ok = nil, false
			return
		}
		panic(r)
	}()

	c.emitComp(tree, nil)

	srcEnd := tree.Offset + tree.Length
	c.b.Append(bytecode.RETURN, srcEnd, 0, bytecode.IntOperand(0))

	return c.b.Finalize(sink)
}
