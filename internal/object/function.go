package object

// functionData records what PUSHFUN captures: the bytecode entry offset
// (an instruction index, not a byte offset), the declared argument count,
// and the closure chain in effect at the point of definition. Arity is not
// checked here; spec'd as a runtime-only error at the call site, which is
// the interpreter's job, not the object model's.
type functionData struct {
	entry   int
	argc    int
	closure *Object
}

// NewFunction allocates a function object. closure may be nil for a
// function defined at the root scope.
func NewFunction(entry, argc int, closure *Object) *Object {
	return New(FunctionType, &functionData{entry: entry, argc: argc, closure: closure})
}

func (o *Object) functionData() *functionData { return o.Data.(*functionData) }

// Entry returns the bytecode instruction index the function body starts
// at.
func Entry(fn *Object) int { return fn.Data.(*functionData).entry }

// Argc returns the function's declared argument count.
func Argc(fn *Object) int { return fn.Data.(*functionData).argc }

// Closure returns the closure chain captured at definition time.
func Closure(fn *Object) *Object { return fn.Data.(*functionData).closure }

// FunctionType has no Call slot: invoking a function means running its
// body through the bytecode interpreter, which lives outside this object
// model. Count is populated since "does this function take how many args"
// is a meaningful, typed question independent of actually calling it.
var FunctionType = &Type{
	Name:  "function",
	Count: func(o *Object) int { return o.Data.(*functionData).argc },
	Walk: func(o *Object, visit func(*Object)) {
		if c := o.Data.(*functionData).closure; c != nil {
			visit(c)
		}
	},
}
