package object

import (
	"fmt"
	"io"
)

// ListType backs the PUSHLST/INSERT lowering: select/insert are both
// index-addressed, with insert growing the backing slice on demand
// (PUSHLST's count operand is only a capacity hint, not a hard bound).
var ListType = &Type{
	Name: "list",
	Print: func(o *Object, w io.Writer) error {
		items := o.Data.(*listData).items
		if _, err := io.WriteString(w, "["); err != nil {
			return err
		}
		for i, it := range items {
			if i > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			if it.Type.Print == nil {
				return notSupported(it.Type, "print")
			}
			if err := it.Type.Print(it, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "]")
		return err
	},
	Select: func(o, key *Object) (*Object, error) {
		idx, ok := asIndex(key)
		if !ok {
			return nil, notSupported(key.Type, "use as a list index")
		}
		items := o.Data.(*listData).items
		if idx < 0 || idx >= len(items) {
			return nil, nil
		}
		return items[idx], nil
	},
	Insert: func(o, key, val *Object) error {
		idx, ok := asIndex(key)
		if !ok {
			return notSupported(key.Type, "use as a list index")
		}
		d := o.Data.(*listData)
		if idx < 0 {
			return fmt.Errorf("list: negative index %d", idx)
		}
		for idx >= len(d.items) {
			d.items = append(d.items, nil)
		}
		d.items[idx] = val
		return nil
	},
	Count: func(o *Object) int { return len(o.Data.(*listData).items) },
	Walk: func(o *Object, visit func(*Object)) {
		for _, it := range o.Data.(*listData).items {
			visit(it)
		}
	},
	Copy: func(o *Object) *Object {
		src := o.Data.(*listData).items
		dst := make([]*Object, len(src))
		copy(dst, src)
		return New(ListType, &listData{items: dst})
	},
}

type listData struct {
	items []*Object
}

func asIndex(key *Object) (int, bool) {
	if key.Type != IntType {
		return 0, false
	}
	return int(key.Data.(int64)), true
}

// NewList allocates a new list with a capacity hint (the n operand of
// PUSHLST); the backing slice still grows past the hint if needed.
func NewList(capacityHint int) *Object {
	if capacityHint < 0 {
		capacityHint = 0
	}
	return New(ListType, &listData{items: make([]*Object, 0, capacityHint)})
}
