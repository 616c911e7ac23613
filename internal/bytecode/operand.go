package bytecode

import "fmt"

// Promise is a single-assignment placeholder for an integer instruction
// offset that becomes known later in the same compilation (typically a
// jump target). Promises are owned by the compilation that creates them;
// ExeBuilder.Finalize substitutes every promise operand with its resolved
// value.
type Promise struct {
	resolved bool
	value    int
}

// NewPromise returns an unresolved promise.
func NewPromise() *Promise {
	return &Promise{}
}

// Resolve sets the promise's value. Resolving an already-resolved promise
// with a different value is a programmer error and panics; resolving twice
// with the same value is a no-op, matching the idempotent-resolve contract.
func (p *Promise) Resolve(value int) {
	if p.resolved {
		if p.value != value {
			panic(fmt.Sprintf("bytecode: promise re-resolved with a different value (%d, then %d)", p.value, value))
		}
		return
	}
	p.resolved = true
	p.value = value
}

func (p *Promise) IsResolved() bool { return p.resolved }

// Value returns the resolved value. It panics if the promise is still
// unresolved; callers that must read before resolution is guaranteed
// should check IsResolved first.
func (p *Promise) Value() int {
	if !p.resolved {
		panic("bytecode: read of unresolved promise")
	}
	return p.value
}

// OperandKind discriminates the tagged union held by an Operand.
type OperandKind int

const (
	OperandNone OperandKind = iota
	OperandInt
	OperandFloat
	OperandString
	OperandPromise
)

// Operand is a tagged union: signed integer, float, interned string, or a
// promise for an integer not yet known. A string operand shares the
// string of the AST node it was lowered from.
type Operand struct {
	Kind    OperandKind
	Int     int
	Float   float64
	Str     string
	Promise *Promise
}

func IntOperand(v int) Operand              { return Operand{Kind: OperandInt, Int: v} }
func FloatOperand(v float64) Operand        { return Operand{Kind: OperandFloat, Float: v} }
func StringOperand(v string) Operand        { return Operand{Kind: OperandString, Str: v} }
func PromiseOperand(p *Promise) Operand     { return Operand{Kind: OperandPromise, Promise: p} }

// IntValue returns the operand's integer value, reading a promise operand's
// resolved value without changing the operand. It panics if the operand is
// not int-shaped or the promise is unresolved.
func (o Operand) IntValue() int {
	switch o.Kind {
	case OperandInt:
		return o.Int
	case OperandPromise:
		return o.Promise.Value()
	default:
		panic("bytecode: IntValue on non-integer operand")
	}
}

func (o Operand) String() string {
	switch o.Kind {
	case OperandInt:
		return fmt.Sprintf("%d", o.Int)
	case OperandFloat:
		return fmt.Sprintf("%g", o.Float)
	case OperandString:
		return fmt.Sprintf("%q", o.Str)
	case OperandPromise:
		if o.Promise.IsResolved() {
			return fmt.Sprintf("%d", o.Promise.Value())
		}
		return "<unresolved>"
	default:
		return "<none>"
	}
}
