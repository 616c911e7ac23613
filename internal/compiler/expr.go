package compiler

import (
	"noja/internal/ast"
	"noja/internal/bytecode"
)

var unaryOps = map[ast.ExprKind]bytecode.Op{
	ast.Not: bytecode.NOT,
	ast.Pos: bytecode.POS,
	ast.Neg: bytecode.NEG,
}

var binaryOps = map[ast.ExprKind]bytecode.Op{
	ast.Add: bytecode.ADD, ast.Sub: bytecode.SUB, ast.Mul: bytecode.MUL, ast.Div: bytecode.DIV,
	ast.Eql: bytecode.EQL, ast.Nql: bytecode.NQL, ast.Lss: bytecode.LSS, ast.Leq: bytecode.LEQ,
	ast.Grt: bytecode.GRT, ast.Geq: bytecode.GEQ, ast.And: bytecode.AND, ast.Or: bytecode.OR,
}

// emitExpr lowers an EXPR node; the result is always exactly one value
// pushed on the stack.
func (c *compiler) emitExpr(n *ast.Node) {
	switch n.ExprKind {
	case ast.Int:
		c.b.Append(bytecode.PUSHINT, n.Offset, n.Length, bytecode.IntOperand(int(n.IntVal)))
	case ast.Float:
		c.b.Append(bytecode.PUSHFLT, n.Offset, n.Length, bytecode.FloatOperand(n.FloatVal))
	case ast.String:
		c.b.Append(bytecode.PUSHSTR, n.Offset, n.Length, bytecode.StringOperand(n.StringVal))
	case ast.None:
		c.b.Append(bytecode.PUSHNNE, n.Offset, n.Length)
	case ast.True:
		c.b.Append(bytecode.PUSHTRU, n.Offset, n.Length)
	case ast.False:
		c.b.Append(bytecode.PUSHFLS, n.Offset, n.Length)
	case ast.Ident:
		c.b.Append(bytecode.PUSHVAR, n.Offset, n.Length, bytecode.StringOperand(n.Name))

	case ast.Not, ast.Pos, ast.Neg:
		c.emitExpr(n.Left)
		c.b.Append(unaryOps[n.ExprKind], n.Offset, n.Length)

	case ast.Add, ast.Sub, ast.Mul, ast.Div, ast.Eql, ast.Nql, ast.Lss, ast.Leq,
		ast.Grt, ast.Geq, ast.And, ast.Or:
		c.emitExpr(n.Left)
		c.emitExpr(n.Right)
		c.b.Append(binaryOps[n.ExprKind], n.Offset, n.Length)

	case ast.List:
		c.emitList(n)
	case ast.Map:
		c.emitMap(n)
	case ast.Select:
		c.emitExpr(n.Left)
		c.emitExpr(n.Right)
		c.b.Append(bytecode.SELECT, n.Offset, n.Length)
	case ast.Call:
		c.emitCall(n, 1)
	case ast.Ass:
		c.emitAssignment(n)
	case ast.Pair:
		c.fail(n.Offset, n.Length, "Tuple outside of assignment or return statement")
	default:
		c.failInternal(n.Offset, n.Length, unreachableExprKindError{n.ExprKind})
	}
}

type unreachableExprKindError struct{ kind ast.ExprKind }

func (e unreachableExprKindError) Error() string {
	return "compiler: no lowering rule for expr kind " + e.kind.String()
}

func (c *compiler) emitList(n *ast.Node) {
	c.b.Append(bytecode.PUSHLST, n.Offset, n.Length, bytecode.IntOperand(n.Count))
	i := 0
	for item := n.Left; item != nil; item = item.Next {
		c.b.Append(bytecode.PUSHINT, item.Offset, item.Length, bytecode.IntOperand(i))
		c.emitExpr(item)
		c.b.Append(bytecode.INSERT, item.Offset, item.Length)
		i++
	}
}

func (c *compiler) emitMap(n *ast.Node) {
	c.b.Append(bytecode.PUSHMAP, n.Offset, n.Length, bytecode.IntOperand(n.Count))
	key, val := n.Left, n.Right
	for key != nil && val != nil {
		c.emitExpr(key)
		c.emitExpr(val)
		c.b.Append(bytecode.INSERT, n.Offset, n.Length)
		key, val = key.Next, val.Next
	}
}

// emitCall emits a call expression requesting the given number of return
// values (1 for an ordinary call expression, N for a multi-target
// assignment's RHS).
func (c *compiler) emitCall(n *ast.Node, returns int) {
	argc := 0
	for arg := n.Left; arg != nil; arg = arg.Next {
		c.emitExpr(arg)
		argc++
	}
	c.emitExpr(n.Right)
	c.b.Append(bytecode.CALL, n.Offset, n.Length, bytecode.IntOperand(argc), bytecode.IntOperand(returns))
}

// emitAssignment lowers ASS(lhs, rhs). lhs may flatten into more than one
// target, in which case rhs must be a CALL requesting that many return
// values.
func (c *compiler) emitAssignment(n *ast.Node) {
	targets := c.flattenTuple(n.Left)

	if len(targets) == 1 {
		c.emitExpr(n.Right)
	} else {
		if !(n.Right.Kind == ast.KindExpr && n.Right.ExprKind == ast.Call) {
			c.fail(n.Offset, n.Length, "Assigning to %d variables only 1 value", len(targets))
		}
		c.emitCall(n.Right, len(targets))
	}

	for i := len(targets) - 1; i >= 0; i-- {
		t := targets[i]
		switch {
		case t.Kind == ast.KindExpr && t.ExprKind == ast.Ident:
			c.b.Append(bytecode.ASS, t.Offset, t.Length, bytecode.StringOperand(t.Name))
		case t.Kind == ast.KindExpr && t.ExprKind == ast.Select:
			c.emitExpr(t.Left)
			c.emitExpr(t.Right)
			c.b.Append(bytecode.INSERT2, t.Offset, t.Length)
		default:
			c.fail(t.Offset, t.Length, "Assigning to something that it can't be assigned to")
		}
		if i != 0 {
			c.b.Append(bytecode.POP, t.Offset, t.Length, bytecode.IntOperand(1))
		}
	}
}
