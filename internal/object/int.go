package object

import (
	"fmt"
	"io"
)

// IntType follows the same shape as FloatType, the source's idiom for a
// numeric scalar object (assert-then-cast payload access, a dense set of
// comparison/arithmetic slots).
var IntType = &Type{
	Name: "int",
	Print: func(o *Object, w io.Writer) error {
		_, err := fmt.Fprintf(w, "%d", o.Data.(int64))
		return err
	},
	ToBool:   func(o *Object) (bool, bool) { return o.Data.(int64) != 0, true },
	ToInt:    func(o *Object) (int64, bool) { return o.Data.(int64), true },
	ToFloat:  func(o *Object) (float64, bool) { return float64(o.Data.(int64)), true },
	ToString: func(o *Object) (string, bool) { return fmt.Sprintf("%d", o.Data.(int64)), true },
	OpEql: func(a, b *Object) (bool, bool) {
		if b.Type != IntType {
			return false, true
		}
		return a.Data.(int64) == b.Data.(int64), true
	},
	OpNql: func(a, b *Object) (bool, bool) {
		if b.Type != IntType {
			return true, true
		}
		return a.Data.(int64) != b.Data.(int64), true
	},
	OpLss: intCompare(func(a, b int64) bool { return a < b }),
	OpLeq: intCompare(func(a, b int64) bool { return a <= b }),
	OpGrt: intCompare(func(a, b int64) bool { return a > b }),
	OpGeq: intCompare(func(a, b int64) bool { return a >= b }),
	OpAdd: intArith(func(a, b int64) int64 { return a + b }),
	OpSub: intArith(func(a, b int64) int64 { return a - b }),
	OpMul: intArith(func(a, b int64) int64 { return a * b }),
	OpDiv: func(a, b *Object) (*Object, error) {
		if b.Type != IntType {
			return nil, notSupported(IntType, "op_div with a non-int operand")
		}
		if b.Data.(int64) == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return NewInt(a.Data.(int64) / b.Data.(int64)), nil
	},
	OpNeg: func(a *Object) (*Object, bool) { return NewInt(-a.Data.(int64)), true },
	OpPos: func(a *Object) (*Object, bool) { return a, true },
	Hash:  func(o *Object) (int64, bool) { return o.Data.(int64), true },
	Copy:  func(o *Object) *Object { return NewInt(o.Data.(int64)) },
}

func intCompare(cmp func(a, b int64) bool) func(a, b *Object) (bool, bool) {
	return func(a, b *Object) (bool, bool) {
		if b.Type != IntType {
			return false, false
		}
		return cmp(a.Data.(int64), b.Data.(int64)), true
	}
}

func intArith(op func(a, b int64) int64) func(a, b *Object) (*Object, bool) {
	return func(a, b *Object) (*Object, bool) {
		if b.Type != IntType {
			return nil, false
		}
		return NewInt(op(a.Data.(int64), b.Data.(int64))), true
	}
}

// NewInt allocates a new int object.
func NewInt(v int64) *Object {
	return New(IntType, v)
}
