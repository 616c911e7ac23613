package object

import (
	"fmt"
	"io"
)

// FloatType mirrors the source's float object: to_float, print ("%2.2f"),
// and op_eql, which reports a non-float right operand as unequal and
// otherwise compares the payloads. The comparison and arithmetic slots beyond op_eql are this
// package's own addition, needed to back the opcode set's ADD/SUB/.../GEQ
// family; the source only populates to_float/print/op_eql for floats.
var FloatType = &Type{
	Name: "float",
	Print: func(o *Object, w io.Writer) error {
		_, err := fmt.Fprintf(w, "%2.2f", o.Data.(float64))
		return err
	},
	ToBool:   func(o *Object) (bool, bool) { return o.Data.(float64) != 0, true },
	ToInt:    func(o *Object) (int64, bool) { return int64(o.Data.(float64)), true },
	ToFloat:  func(o *Object) (float64, bool) { return o.Data.(float64), true },
	ToString: func(o *Object) (string, bool) { return fmt.Sprintf("%2.2f", o.Data.(float64)), true },
	OpEql: func(a, b *Object) (bool, bool) {
		if b.Type != FloatType {
			return false, true
		}
		return a.Data.(float64) == b.Data.(float64), true
	},
	OpNql: func(a, b *Object) (bool, bool) {
		if b.Type != FloatType {
			return true, true
		}
		return a.Data.(float64) != b.Data.(float64), true
	},
	OpLss: floatCompare(func(a, b float64) bool { return a < b }),
	OpLeq: floatCompare(func(a, b float64) bool { return a <= b }),
	OpGrt: floatCompare(func(a, b float64) bool { return a > b }),
	OpGeq: floatCompare(func(a, b float64) bool { return a >= b }),
	OpAdd: floatArith(func(a, b float64) float64 { return a + b }),
	OpSub: floatArith(func(a, b float64) float64 { return a - b }),
	OpMul: floatArith(func(a, b float64) float64 { return a * b }),
	OpDiv: func(a, b *Object) (*Object, error) {
		if b.Type != FloatType {
			return nil, notSupported(FloatType, "op_div with a non-float operand")
		}
		if b.Data.(float64) == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return NewFloat(a.Data.(float64) / b.Data.(float64)), nil
	},
	OpNeg: func(a *Object) (*Object, bool) { return NewFloat(-a.Data.(float64)), true },
	OpPos: func(a *Object) (*Object, bool) { return a, true },
	Hash: func(o *Object) (int64, bool) {
		return int64(o.Data.(float64) * 1000003), true
	},
	Copy: func(o *Object) *Object { return NewFloat(o.Data.(float64)) },
}

func floatCompare(cmp func(a, b float64) bool) func(a, b *Object) (bool, bool) {
	return func(a, b *Object) (bool, bool) {
		if b.Type != FloatType {
			return false, false
		}
		return cmp(a.Data.(float64), b.Data.(float64)), true
	}
}

func floatArith(op func(a, b float64) float64) func(a, b *Object) (*Object, bool) {
	return func(a, b *Object) (*Object, bool) {
		if b.Type != FloatType {
			return nil, false
		}
		return NewFloat(op(a.Data.(float64), b.Data.(float64))), true
	}
}

// NewFloat allocates a new float object.
func NewFloat(v float64) *Object {
	return New(FloatType, v)
}
