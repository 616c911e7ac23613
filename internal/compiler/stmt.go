package compiler

import (
	"noja/internal/ast"
	"noja/internal/bytecode"
)

// emitStmt emits n in statement position: if n turns out to be an
// expression, its result is left on the stack by emitNode, so a
// rebalancing POP 1 follows. Every other kind balances its own stack
// effect to zero.
func (c *compiler) emitStmt(n *ast.Node, breakDest *bytecode.Promise) {
	c.emitNode(n, breakDest)
	if n.Kind == ast.KindExpr {
		c.b.Append(bytecode.POP, n.Offset, n.Length, bytecode.IntOperand(1))
	}
}

// emitNode dispatches on the statement-level Kind. breakDest is the
// promise a BREAK inside the current innermost loop should jump to, or nil
// outside any loop (and inside a function body, since break never crosses
// a function boundary).
func (c *compiler) emitNode(n *ast.Node, breakDest *bytecode.Promise) {
	switch n.Kind {
	case ast.KindExpr:
		c.emitExpr(n)
	case ast.KindBreak:
		c.emitBreak(n, breakDest)
	case ast.KindIfElse:
		c.emitIfElse(n, breakDest)
	case ast.KindWhile:
		c.emitWhile(n, breakDest)
	case ast.KindDoWhile:
		c.emitDoWhile(n, breakDest)
	case ast.KindComp:
		c.emitComp(n, breakDest)
	case ast.KindReturn:
		c.emitReturn(n)
	case ast.KindFunc:
		c.emitFunc(n)
	default:
		c.failInternal(n.Offset, n.Length, unreachableKindError{n.Kind})
	}
}

type unreachableKindError struct{ kind ast.Kind }

func (e unreachableKindError) Error() string {
	return "compiler: no lowering rule for node kind " + e.kind.String()
}

func (c *compiler) emitBreak(n *ast.Node, breakDest *bytecode.Promise) {
	if breakDest == nil {
		c.fail(n.Offset, n.Length, "Break not inside a loop")
	}
	c.b.Append(bytecode.JUMP, n.Offset, n.Length, bytecode.PromiseOperand(breakDest))
}

func (c *compiler) emitIfElse(n *ast.Node, breakDest *bytecode.Promise) {
	c.emitExpr(n.Cond)

	e := bytecode.NewPromise()
	c.b.Append(bytecode.JUMPIFNOTANDPOP, n.Cond.Offset, n.Cond.Length, bytecode.PromiseOperand(e))

	c.emitStmt(n.Then, breakDest)

	if n.Else == nil {
		e.Resolve(c.b.InstrCount())
		return
	}

	d := bytecode.NewPromise()
	c.b.Append(bytecode.JUMP, n.Then.Offset, n.Then.Length, bytecode.PromiseOperand(d))
	e.Resolve(c.b.InstrCount())

	c.emitStmt(n.Else, breakDest)
	d.Resolve(c.b.InstrCount())
}

func (c *compiler) emitWhile(n *ast.Node, _ *bytecode.Promise) {
	start := c.b.InstrCount()

	c.emitExpr(n.Cond)

	e := bytecode.NewPromise()
	c.b.Append(bytecode.JUMPIFNOTANDPOP, n.Cond.Offset, n.Cond.Length, bytecode.PromiseOperand(e))

	c.emitStmt(n.Then, e)

	c.b.Append(bytecode.JUMP, n.Offset, n.Length, bytecode.IntOperand(start))
	e.Resolve(c.b.InstrCount())
}

func (c *compiler) emitDoWhile(n *ast.Node, _ *bytecode.Promise) {
	start := c.b.InstrCount()

	e := bytecode.NewPromise()
	c.emitStmt(n.Then, e)

	c.emitExpr(n.Cond)
	c.b.Append(bytecode.JUMPIFANDPOP, n.Cond.Offset, n.Cond.Length, bytecode.IntOperand(start))

	e.Resolve(c.b.InstrCount())
}

func (c *compiler) emitComp(n *ast.Node, breakDest *bytecode.Promise) {
	for child := n.Left; child != nil; child = child.Next {
		c.emitStmt(child, breakDest)
	}
}

func (c *compiler) emitReturn(n *ast.Node) {
	var values []*ast.Node
	if n.Left != nil {
		values = c.flattenTuple(n.Left)
	}
	for _, v := range values {
		c.emitExpr(v)
	}
	c.b.Append(bytecode.RETURN, n.Offset, n.Length, bytecode.IntOperand(len(values)))
}

// emitFunc lowers a FUNC node inline: the definition site pushes a
// function object and skip-jumps over the body, which is emitted right
// there in the instruction stream.
func (c *compiler) emitFunc(n *ast.Node) {
	f := bytecode.NewPromise()
	c.b.Append(bytecode.PUSHFUN, n.Offset, n.Length, bytecode.PromiseOperand(f), bytecode.IntOperand(n.Count))
	c.b.Append(bytecode.ASS, n.Offset, n.Length, bytecode.StringOperand(n.Name))
	c.b.Append(bytecode.POP, n.Offset, n.Length, bytecode.IntOperand(1))

	j := bytecode.NewPromise()
	c.b.Append(bytecode.JUMP, n.Offset, n.Length, bytecode.PromiseOperand(j))

	f.Resolve(c.b.InstrCount())

	for p := n.Left; p != nil; p = p.Next {
		c.b.Append(bytecode.ASS, p.Offset, p.Length, bytecode.StringOperand(p.Name))
		c.b.Append(bytecode.POP, p.Offset, p.Length, bytecode.IntOperand(1))
	}

	// Break does not cross a function boundary.
	c.emitNode(n.Then, nil)
	if n.Then.Kind == ast.KindExpr {
		bodyEnd := n.Then.Offset + n.Then.Length
		c.b.Append(bytecode.POP, bodyEnd, 0, bytecode.IntOperand(1))
	}

	c.b.Append(bytecode.RETURN, n.Offset, n.Length, bytecode.IntOperand(0))
	j.Resolve(c.b.InstrCount())
}

// flattenTuple flattens a PAIR tuple tree into an ordered list of leaves,
// in source order, rejecting trees with more than maxTupleElements
// leaves.
func (c *compiler) flattenTuple(n *ast.Node) []*ast.Node {
	var out []*ast.Node
	var walk func(*ast.Node)
	walk = func(x *ast.Node) {
		if x.Kind == ast.KindExpr && x.ExprKind == ast.Pair {
			walk(x.Left)
			walk(x.Right)
			return
		}
		out = append(out, x)
		if len(out) > maxTupleElements {
			c.fail(n.Offset, n.Length, "tuple exceeds the maximum of %d elements", maxTupleElements)
		}
	}
	walk(n)
	return out
}
