package object

// closureData is a single frame in the parent-linked chain: a bindings map
// (an Object of MapType) and an optional parent frame.
type closureData struct {
	parent *Object
	vars   *Object
}

// NewClosure allocates a new frame. parent must be nil (root frame) or a
// ClosureType object.
func NewClosure(parent *Object) *Object {
	if parent != nil && parent.Type != ClosureType {
		panic("object: NewClosure given a non-closure parent")
	}
	return New(ClosureType, &closureData{parent: parent, vars: NewMap(0)})
}

// Vars returns the frame's own bindings map, for ASS/PUSHVAR lowering that
// needs to bind into "the innermost frame" directly.
func Vars(closure *Object) *Object {
	return closure.Data.(*closureData).vars
}

// closureSelect walks from the given frame toward the root, as specified:
// select on each frame's bindings map, stopping at the first hit, and
// aborting the walk entirely if an underlying select errors.
func closureSelect(o *Object, key *Object) (*Object, error) {
	for frame := o; frame != nil; frame = frame.Data.(*closureData).parent {
		vars := frame.Data.(*closureData).vars
		val, err := MapType.Select(vars, key)
		if err != nil {
			return nil, err
		}
		if val != nil {
			return val, nil
		}
	}
	return nil, nil
}

// ClosureType backs closure-chain lookup (PUSHVAR) and, via insert, a bind
// into the innermost frame (ASS). walk enumerates parent then vars, as the
// source does.
var ClosureType = &Type{
	Name:   "closure",
	Select: closureSelect,
	Insert: func(o, key, val *Object) error {
		return MapType.Insert(o.Data.(*closureData).vars, key, val)
	},
	Walk: func(o *Object, visit func(*Object)) {
		d := o.Data.(*closureData)
		if d.parent != nil {
			visit(d.parent)
		}
		visit(d.vars)
	},
}
