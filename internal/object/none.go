package object

import "io"

// NoneType is the type of the single "no value" singleton (PUSHNNE).
var NoneType = &Type{
	Name: "none",
	Print: func(o *Object, w io.Writer) error {
		_, err := io.WriteString(w, "none")
		return err
	},
	ToBool: func(o *Object) (bool, bool) { return false, true },
	OpEql:  func(a, b *Object) (bool, bool) { return b.Type == NoneType, true },
	OpNql:  func(a, b *Object) (bool, bool) { return b.Type != NoneType, true },
}

var noneObject = newStatic(NoneType, nil)

// None returns the static "no value" singleton.
func None() *Object { return noneObject }
