package bytecode

import (
	"testing"

	"noja/internal/diag"
)

func TestFinalizeSubstitutesResolvedPromises(t *testing.T) {
	b := NewExeBuilder(nil)
	p := NewPromise()
	b.Append(JUMP, 0, 1, PromiseOperand(p))
	p.Resolve(7)

	exe, ok := b.Finalize(diag.NewSink())
	if !ok {
		t.Fatalf("Finalize failed")
	}
	if exe.Instrs[0].Operands[0].Kind != OperandInt || exe.Instrs[0].Operands[0].Int != 7 {
		t.Fatalf("operand = %+v, want resolved int 7", exe.Instrs[0].Operands[0])
	}
}

func TestFinalizeFailsOnUnresolvedPromise(t *testing.T) {
	b := NewExeBuilder(nil)
	p := NewPromise()
	b.Append(JUMP, 0, 1, PromiseOperand(p))

	sink := diag.NewSink()
	_, ok := b.Finalize(sink)
	if ok {
		t.Fatalf("expected Finalize to fail")
	}
	if !sink.Occurred || !sink.Internal {
		t.Fatalf("expected an internal error to be reported")
	}
}

func TestPromiseReResolveSameValueIsNoop(t *testing.T) {
	p := NewPromise()
	p.Resolve(3)
	p.Resolve(3)
	if p.Value() != 3 {
		t.Fatalf("Value() = %d, want 3", p.Value())
	}
}

func TestPromiseReResolveDifferentValuePanics(t *testing.T) {
	p := NewPromise()
	p.Resolve(3)
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	p.Resolve(4)
}

func TestInstrCountTracksAppends(t *testing.T) {
	b := NewExeBuilder(nil)
	if b.InstrCount() != 0 {
		t.Fatalf("InstrCount() = %d, want 0", b.InstrCount())
	}
	b.Append(PUSHINT, 0, 1, IntOperand(1))
	b.Append(POP, 1, 1, IntOperand(1))
	if b.InstrCount() != 2 {
		t.Fatalf("InstrCount() = %d, want 2", b.InstrCount())
	}
}
