package object

import "io"

// BoolType is the dispatch table for the two boolean singletons. Only
// to_bool, print, and equality are populated, mirroring the source this is
// grounded on (which implements nothing but to_bool for booleans).
var BoolType = &Type{
	Name: "bool",
	Print: func(o *Object, w io.Writer) error {
		if o.Data.(bool) {
			_, err := io.WriteString(w, "true")
			return err
		}
		_, err := io.WriteString(w, "false")
		return err
	},
	ToBool: func(o *Object) (bool, bool) { return o.Data.(bool), true },
	OpEql: func(a, b *Object) (bool, bool) {
		if b.Type != BoolType {
			return false, true
		}
		return a.Data.(bool) == b.Data.(bool), true
	},
}

var trueObject = newStatic(BoolType, true)
var falseObject = newStatic(BoolType, false)

// FromBool returns one of the two static boolean singletons; booleans are
// never heap-allocated per call.
func FromBool(v bool) *Object {
	if v {
		return trueObject
	}
	return falseObject
}
