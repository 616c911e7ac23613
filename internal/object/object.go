// Package object implements the runtime value model: heap objects with a
// type descriptor, flags, and a type-specific payload, dispatched through
// direct method slots rather than a hashed vtable.
package object

import "io"

// Flags carries per-object bits: at minimum static-vs-heap, with room for
// a GC mark bit.
type Flags uint8

const (
	FlagStatic Flags = 1 << iota
	FlagMarked
)

// Object is every runtime value: a type descriptor reference, flags, and a
// type-specific payload. Data is Go's stand-in for the payload a systems
// implementation would store inline in the struct.
type Object struct {
	Type  *Type
	Flags Flags
	Data  interface{}
}

func (o *Object) IsStatic() bool { return o.Flags&FlagStatic != 0 }
func (o *Object) IsMarked() bool { return o.Flags&FlagMarked != 0 }

func (o *Object) Mark()   { o.Flags |= FlagMarked }
func (o *Object) Unmark() { o.Flags &^= FlagMarked }

// New allocates a plain (non-static) object of the given type and payload.
// Most callers go through a type's own constructor (NewInt, NewString,
// ...); New exists for the arena and for test fixtures.
func New(t *Type, data interface{}) *Object {
	return &Object{Type: t, Data: data}
}

func newStatic(t *Type, data interface{}) *Object {
	return &Object{Type: t, Flags: FlagStatic, Data: data}
}

// Type is the dispatch table every Object carries a reference to. A type
// populates only the methods it supports; a nil slot means the operation
// fails for that type. Type descriptors are themselves static, shared
// singletons (one *Type per built-in type), matching the source's
// self-describing type-of-type design without modeling it as an Object in
// its own right (see DESIGN.md).
type Type struct {
	Name string

	Print    func(o *Object, w io.Writer) error
	ToBool   func(o *Object) (bool, bool)
	ToInt    func(o *Object) (int64, bool)
	ToFloat  func(o *Object) (float64, bool)
	ToString func(o *Object) (string, bool)

	OpEql func(a, b *Object) (bool, bool)
	OpNql func(a, b *Object) (bool, bool)
	OpLss func(a, b *Object) (bool, bool)
	OpLeq func(a, b *Object) (bool, bool)
	OpGrt func(a, b *Object) (bool, bool)
	OpGeq func(a, b *Object) (bool, bool)

	OpAdd func(a, b *Object) (*Object, bool)
	OpSub func(a, b *Object) (*Object, bool)
	OpMul func(a, b *Object) (*Object, bool)
	OpDiv func(a, b *Object) (*Object, error)

	OpNeg func(a *Object) (*Object, bool)
	OpPos func(a *Object) (*Object, bool)
	OpNot func(a *Object) (*Object, bool)

	Select func(o, key *Object) (*Object, error)
	Insert func(o, key, val *Object) error
	Count  func(o *Object) int
	Call   func(o *Object, args []*Object) ([]*Object, error)
	Hash   func(o *Object) (int64, bool)
	Walk   func(o *Object, visit func(*Object))
	Copy   func(o *Object) *Object
}

// DoesNotSupport is the typed "this type doesn't implement that operation"
// failure every nil method slot ultimately produces.
type DoesNotSupport struct {
	TypeName string
	Op       string
}

func (e *DoesNotSupport) Error() string {
	return "type " + e.TypeName + " does not support " + e.Op
}

func notSupported(t *Type, op string) error {
	return &DoesNotSupport{TypeName: t.Name, Op: op}
}
