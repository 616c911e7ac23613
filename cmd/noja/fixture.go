package main

import (
	"encoding/json"
	"fmt"
	"io"

	"noja/internal/ast"
)

// fixtureNode is the JSON shape a fixture file uses to stand in for the
// external parser's output. It mirrors ast.Node's fields directly rather
// than inventing a separate surface syntax, since this tool's only job is
// to exercise the compiler, not to read Noja source.
type fixtureNode struct {
	Kind     string `json:"kind"`
	ExprKind string `json:"expr_kind,omitempty"`
	Offset   int    `json:"offset"`
	Length   int    `json:"length"`

	Name      string  `json:"name,omitempty"`
	IntVal    int64   `json:"int_val,omitempty"`
	FloatVal  float64 `json:"float_val,omitempty"`
	StringVal string  `json:"string_val,omitempty"`

	Left  *fixtureNode `json:"left,omitempty"`
	Right *fixtureNode `json:"right,omitempty"`
	Cond  *fixtureNode `json:"cond,omitempty"`
	Then  *fixtureNode `json:"then,omitempty"`
	Else  *fixtureNode `json:"else,omitempty"`
	Next  *fixtureNode `json:"next,omitempty"`
}

var kindByName = map[string]ast.Kind{
	"EXPR": ast.KindExpr, "BREAK": ast.KindBreak, "IFELSE": ast.KindIfElse,
	"WHILE": ast.KindWhile, "DOWHILE": ast.KindDoWhile, "COMP": ast.KindComp,
	"RETURN": ast.KindReturn, "FUNC": ast.KindFunc, "ARGUMENT": ast.KindArgument,
}

var exprKindByName = map[string]ast.ExprKind{
	"PAIR": ast.Pair, "NOT": ast.Not, "POS": ast.Pos, "NEG": ast.Neg, "ADD": ast.Add,
	"SUB": ast.Sub, "MUL": ast.Mul, "DIV": ast.Div, "EQL": ast.Eql, "NQL": ast.Nql,
	"LSS": ast.Lss, "LEQ": ast.Leq, "GRT": ast.Grt, "GEQ": ast.Geq, "AND": ast.And,
	"OR": ast.Or, "ASS": ast.Ass, "INT": ast.Int, "FLOAT": ast.Float, "STRING": ast.String,
	"IDENT": ast.Ident, "LIST": ast.List, "MAP": ast.Map, "CALL": ast.Call,
	"SELECT": ast.Select, "NONE": ast.None, "TRUE": ast.True, "FALSE": ast.False,
}

// decodeFixture reads a JSON-encoded AST fixture from r and builds the
// corresponding *ast.Node tree.
func decodeFixture(r io.Reader) (*ast.Node, error) {
	var f fixtureNode
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	return f.build()
}

func (f *fixtureNode) build() (*ast.Node, error) {
	if f == nil {
		return nil, nil
	}

	left, err := f.Left.build()
	if err != nil {
		return nil, err
	}
	right, err := f.Right.build()
	if err != nil {
		return nil, err
	}
	cond, err := f.Cond.build()
	if err != nil {
		return nil, err
	}
	then, err := f.Then.build()
	if err != nil {
		return nil, err
	}
	els, err := f.Else.build()
	if err != nil {
		return nil, err
	}
	next, err := f.Next.build()
	if err != nil {
		return nil, err
	}

	kind, ok := kindByName[f.Kind]
	if !ok {
		return nil, fmt.Errorf("fixture: unknown node kind %q", f.Kind)
	}

	n := &ast.Node{Kind: kind, Offset: f.Offset, Length: f.Length, Next: next}

	switch kind {
	case ast.KindExpr:
		ek, ok := exprKindByName[f.ExprKind]
		if !ok {
			return nil, fmt.Errorf("fixture: unknown expr kind %q", f.ExprKind)
		}
		n.ExprKind = ek
		n.Left, n.Right = left, right
		n.Name = f.Name
		n.IntVal, n.FloatVal, n.StringVal = f.IntVal, f.FloatVal, f.StringVal
		n.Count = ast.Count(left)
	case ast.KindBreak:
		// no payload
	case ast.KindIfElse:
		n.Cond, n.Then, n.Else = cond, then, els
	case ast.KindWhile, ast.KindDoWhile:
		n.Cond, n.Then = cond, then
	case ast.KindComp:
		n.Left = left
	case ast.KindReturn:
		n.Left = left
	case ast.KindFunc:
		n.Name = f.Name
		n.Left = left
		n.Count = ast.Count(left)
		n.Then = then
	case ast.KindArgument:
		n.Name = f.Name
	}

	return n, nil
}
