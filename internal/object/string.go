package object

import "io"

// StringType's hash is FNV-1a over the string bytes, the same algorithm
// the wider example pack reaches for when it needs a string hash.
var StringType = &Type{
	Name: "string",
	Print: func(o *Object, w io.Writer) error {
		_, err := io.WriteString(w, o.Data.(string))
		return err
	},
	ToBool:   func(o *Object) (bool, bool) { return len(o.Data.(string)) != 0, true },
	ToString: func(o *Object) (string, bool) { return o.Data.(string), true },
	OpEql: func(a, b *Object) (bool, bool) {
		if b.Type != StringType {
			return false, true
		}
		return a.Data.(string) == b.Data.(string), true
	},
	OpNql: func(a, b *Object) (bool, bool) {
		if b.Type != StringType {
			return true, true
		}
		return a.Data.(string) != b.Data.(string), true
	},
	OpAdd: func(a, b *Object) (*Object, bool) {
		if b.Type != StringType {
			return nil, false
		}
		return NewString(a.Data.(string) + b.Data.(string)), true
	},
	Hash: func(o *Object) (int64, bool) { return int64(fnv1a(o.Data.(string))), true },
	Copy: func(o *Object) *Object { return NewString(o.Data.(string)) },
}

// NewString allocates a new string object.
func NewString(v string) *Object {
	return New(StringType, v)
}

func fnv1a(s string) uint64 {
	const offset64 = 14695981039346656037
	const prime64 = 1099511628211
	h := uint64(offset64)
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime64
	}
	return h
}
