// Package ast defines the tree produced by the (external) parser and
// consumed by the compiler. A Node is a tagged record: every node carries a
// Kind, a source byte range, and a link to its next sibling. Kind-specific
// data lives in the fields below; which fields are meaningful depends on
// Kind (and, for Kind == KindExpr, on ExprKind).
package ast

// Kind discriminates the node's statement-level shape.
type Kind int

const (
	KindExpr Kind = iota
	KindBreak
	KindIfElse
	KindWhile
	KindDoWhile
	KindComp
	KindReturn
	KindFunc
	KindArgument
)

func (k Kind) String() string {
	switch k {
	case KindExpr:
		return "EXPR"
	case KindBreak:
		return "BREAK"
	case KindIfElse:
		return "IFELSE"
	case KindWhile:
		return "WHILE"
	case KindDoWhile:
		return "DOWHILE"
	case KindComp:
		return "COMP"
	case KindReturn:
		return "RETURN"
	case KindFunc:
		return "FUNC"
	case KindArgument:
		return "ARGUMENT"
	default:
		return "UNKNOWN"
	}
}

// ExprKind discriminates nodes of Kind == KindExpr.
type ExprKind int

const (
	Pair ExprKind = iota
	Not
	Pos
	Neg
	Add
	Sub
	Mul
	Div
	Eql
	Nql
	Lss
	Leq
	Grt
	Geq
	And
	Or
	Ass
	Int
	Float
	String
	Ident
	List
	Map
	Call
	Select
	None
	True
	False
)

var exprNames = [...]string{
	Pair: "PAIR", Not: "NOT", Pos: "POS", Neg: "NEG", Add: "ADD", Sub: "SUB",
	Mul: "MUL", Div: "DIV", Eql: "EQL", Nql: "NQL", Lss: "LSS", Leq: "LEQ",
	Grt: "GRT", Geq: "GEQ", And: "AND", Or: "OR", Ass: "ASS", Int: "INT",
	Float: "FLOAT", String: "STRING", Ident: "IDENT", List: "LIST", Map: "MAP",
	Call: "CALL", Select: "SELECT", None: "NONE", True: "TRUE", False: "FALSE",
}

func (k ExprKind) String() string {
	if int(k) < 0 || int(k) >= len(exprNames) {
		return "UNKNOWN"
	}
	return exprNames[k]
}

// binaryOperators carries exactly two operands via Left/Right and is
// reachable directly from the per-node lowering rules that walk operators
// left-to-right.
var binaryOperators = map[ExprKind]bool{
	Pair: true, Add: true, Sub: true, Mul: true, Div: true, Eql: true,
	Nql: true, Lss: true, Leq: true, Grt: true, Geq: true, And: true, Or: true,
	Ass: true,
}

// unaryOperators carries exactly one operand via Left.
var unaryOperators = map[ExprKind]bool{Not: true, Pos: true, Neg: true}

// Node is the single concrete tree-node type. Field meaning by Kind:
//
//	KindExpr/{Int,Float,String,Ident}: IntVal / FloatVal / StringVal / Name
//	KindExpr/{unary ops}:               Left = operand
//	KindExpr/{binary ops, Pair, Ass}:    Left, Right = operands
//	KindExpr/List:                      Left = head of item chain, Count = n
//	KindExpr/Map:                       Left = head of key chain, Right =
//	                                     head of value chain (parallel), Count = n
//	KindExpr/Call:                      Right = callee, Left = head of arg
//	                                     chain, Count = argc
//	KindExpr/Select:                    Left = container, Right = index
//	KindExpr/{None,True,False}:         no payload
//	KindBreak:                          no payload
//	KindIfElse:                         Cond, Then, Else (Else optional)
//	KindWhile/KindDoWhile:               Cond, Then = body
//	KindComp:                           Left = head of statement chain
//	KindReturn:                         Left = returned expression (Pair
//	                                     tree or a None node for bare return)
//	KindFunc:                           Name, Left = head of Argument chain,
//	                                     Count = argc, Then = body
//	KindArgument:                       Name
type Node struct {
	Kind   Kind
	Offset int
	Length int
	Next   *Node

	ExprKind ExprKind

	Left  *Node
	Right *Node
	Count int

	IntVal    int64
	FloatVal  float64
	StringVal string
	Name      string

	Cond *Node
	Then *Node
	Else *Node
}

// Children returns the nodes linked from head via Next, in order.
func Children(head *Node) []*Node {
	var out []*Node
	for n := head; n != nil; n = n.Next {
		out = append(out, n)
	}
	return out
}

// Count counts the nodes linked from head via Next.
func Count(head *Node) int {
	n := 0
	for c := head; c != nil; c = c.Next {
		n++
	}
	return n
}

// Chain links nodes into a sibling chain in the given order and returns the
// head (nil if nodes is empty). Each node's Next is overwritten.
func Chain(nodes ...*Node) *Node {
	for i := 0; i+1 < len(nodes); i++ {
		nodes[i].Next = nodes[i+1]
	}
	if len(nodes) > 0 {
		nodes[len(nodes)-1].Next = nil
		return nodes[0]
	}
	return nil
}

func base(kind Kind, offset, length int) Node {
	return Node{Kind: kind, Offset: offset, Length: length}
}

func NewInt(offset, length int, val int64) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = Int
	n.IntVal = val
	return &n
}

func NewFloat(offset, length int, val float64) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = Float
	n.FloatVal = val
	return &n
}

func NewString(offset, length int, val string) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = String
	n.StringVal = val
	return &n
}

func NewIdent(offset, length int, name string) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = Ident
	n.Name = name
	return &n
}

func NewNone(offset, length int) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = None
	return &n
}

func NewTrue(offset, length int) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = True
	return &n
}

func NewFalse(offset, length int) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = False
	return &n
}

// NewUnary builds a NOT/POS/NEG node.
func NewUnary(kind ExprKind, offset, length int, operand *Node) *Node {
	if !unaryOperators[kind] {
		panic("ast: NewUnary called with non-unary ExprKind")
	}
	n := base(KindExpr, offset, length)
	n.ExprKind = kind
	n.Left = operand
	return &n
}

// NewBinary builds an ADD/SUB/.../Pair/Ass node from two operands.
func NewBinary(kind ExprKind, offset, length int, left, right *Node) *Node {
	if !binaryOperators[kind] {
		panic("ast: NewBinary called with non-binary ExprKind")
	}
	n := base(KindExpr, offset, length)
	n.ExprKind = kind
	n.Left = left
	n.Right = right
	return &n
}

// NewList builds a LIST literal node; items is the head of the item chain.
func NewList(offset, length int, items *Node) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = List
	n.Left = items
	n.Count = Count(items)
	return &n
}

// NewMap builds a MAP literal node from parallel key/value chains.
func NewMap(offset, length int, keys, vals *Node) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = Map
	n.Left = keys
	n.Right = vals
	n.Count = Count(keys)
	return &n
}

// NewCall builds a CALL node; args is the head of the argument chain.
func NewCall(offset, length int, callee, args *Node) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = Call
	n.Right = callee
	n.Left = args
	n.Count = Count(args)
	return &n
}

// NewSelect builds a SELECT (index read) node.
func NewSelect(offset, length int, container, index *Node) *Node {
	n := base(KindExpr, offset, length)
	n.ExprKind = Select
	n.Left = container
	n.Right = index
	return &n
}

func NewBreak(offset, length int) *Node {
	n := base(KindBreak, offset, length)
	return &n
}

func NewIfElse(offset, length int, cond, then, els *Node) *Node {
	n := base(KindIfElse, offset, length)
	n.Cond, n.Then, n.Else = cond, then, els
	return &n
}

func NewWhile(offset, length int, cond, body *Node) *Node {
	n := base(KindWhile, offset, length)
	n.Cond, n.Then = cond, body
	return &n
}

func NewDoWhile(offset, length int, cond, body *Node) *Node {
	n := base(KindDoWhile, offset, length)
	n.Cond, n.Then = cond, body
	return &n
}

// NewComp builds a compound-block node; stmts is the head of the statement
// chain.
func NewComp(offset, length int, stmts *Node) *Node {
	n := base(KindComp, offset, length)
	n.Left = stmts
	return &n
}

// NewReturn builds a RETURN node. expr may be a PAIR tuple tree or a NONE
// node for a bare return.
func NewReturn(offset, length int, expr *Node) *Node {
	n := base(KindReturn, offset, length)
	n.Left = expr
	return &n
}

// NewArgument builds a function-parameter node.
func NewArgument(offset, length int, name string) *Node {
	n := base(KindArgument, offset, length)
	n.Name = name
	return &n
}

// NewFunc builds a FUNC node; params is the head of the Argument chain.
func NewFunc(offset, length int, name string, params *Node, body *Node) *Node {
	n := base(KindFunc, offset, length)
	n.Name = name
	n.Left = params
	n.Count = Count(params)
	n.Then = body
	return &n
}
