package object

import (
	"fmt"
	"io"
)

// mapData is the open-addressed associative structure: a mapper table of
// slot indices (-1 = empty) into parallel, densely-packed keys/vals
// arrays. calcCapacity(mapperSize) bounds how many entries may live in the
// dense arrays before a grow is due.
//
// One correction relative to the C implementation this is grounded on:
// that implementation indexes keys[i]/vals[i] (the mapper-table slot)
// directly in select's and insert's hit paths, instead of going through
// the dense-array index the slot stores (keys[mapper[i]]/vals[mapper[i]]).
// That only happens to work while every probe sequence never needs more
// than one slot per lookup; this implementation uses the indirect form
// throughout, since that's what the mapper table is for.
type mapData struct {
	mapperSize int
	count      int
	mapper     []int
	keys       []*Object
	vals       []*Object
}

func calcCapacity(mapperSize int) int {
	return mapperSize * 2 / 3
}

// NewMap allocates a new map sized to hold at least num entries without
// growing.
func NewMap(num int) *Object {
	if num < 0 {
		num = 0
	}
	mapperSize := 8
	for calcCapacity(mapperSize) < num {
		mapperSize <<= 1
	}
	capacity := calcCapacity(mapperSize)

	mapper := make([]int, mapperSize)
	for i := range mapper {
		mapper[i] = -1
	}

	return New(MapType, &mapData{
		mapperSize: mapperSize,
		mapper:     mapper,
		keys:       make([]*Object, 0, capacity),
		vals:       make([]*Object, 0, capacity),
	})
}

func mapHash(key *Object) (int64, error) {
	if key.Type.Hash == nil {
		return 0, notSupported(key.Type, "hash")
	}
	h, ok := key.Type.Hash(key)
	if !ok {
		return 0, notSupported(key.Type, "hash")
	}
	return h, nil
}

func mapEql(key, other *Object) (bool, error) {
	if key.Type.OpEql == nil {
		return false, notSupported(key.Type, "op_eql")
	}
	eq, ok := key.Type.OpEql(key, other)
	if !ok {
		return false, notSupported(key.Type, "op_eql")
	}
	return eq, nil
}

// mapSelect implements the probe sequence of spec.md's map algorithm:
// perturbed double hashing with compare against keys[mapper[i]].
func mapSelect(m *mapData, key *Object) (*Object, error) {
	hash, err := mapHash(key)
	if err != nil {
		return nil, err
	}

	mask := m.mapperSize - 1
	pert := hash
	i := int(hash) & mask

	for {
		k := m.mapper[i]
		if k == -1 {
			return nil, nil
		}

		eq, err := mapEql(key, m.keys[k])
		if err != nil {
			return nil, err
		}
		if eq {
			return m.vals[k], nil
		}

		pert >>= 5
		i = (i*5 + int(pert) + 1) & mask
	}
}

func mapGrow(m *mapData) error {
	newMapperSize := m.mapperSize << 1
	newCapacity := calcCapacity(newMapperSize)

	mapper := make([]int, newMapperSize)
	for i := range mapper {
		mapper[i] = -1
	}
	keys := make([]*Object, m.count, newCapacity)
	vals := make([]*Object, m.count, newCapacity)
	copy(keys, m.keys[:m.count])
	copy(vals, m.vals[:m.count])

	mask := newMapperSize - 1
	for idx := 0; idx < m.count; idx++ {
		hash, err := mapHash(keys[idx])
		if err != nil {
			// The key already hashed successfully once; re-hashing it
			// during a grow cannot fail.
			return fmt.Errorf("map: key became unhashable during grow: %w", err)
		}
		pert := hash
		j := int(hash) & mask
		for mapper[j] != -1 {
			pert >>= 5
			j = (j*5 + int(pert) + 1) & mask
		}
		mapper[j] = idx
	}

	m.mapper = mapper
	m.mapperSize = newMapperSize
	m.keys = keys
	m.vals = vals
	return nil
}

func mapInsert(m *mapData, key, val *Object) error {
	if m.count == calcCapacity(m.mapperSize) {
		if err := mapGrow(m); err != nil {
			return err
		}
	}

	hash, err := mapHash(key)
	if err != nil {
		return err
	}

	mask := m.mapperSize - 1
	pert := hash
	i := int(hash) & mask

	for {
		k := m.mapper[i]
		if k == -1 {
			keyCopy := key
			if key.Type.Copy != nil {
				keyCopy = key.Type.Copy(key)
			}
			m.mapper[i] = m.count
			m.keys = append(m.keys, keyCopy)
			m.vals = append(m.vals, val)
			m.count++
			return nil
		}

		eq, err := mapEql(key, m.keys[k])
		if err != nil {
			return err
		}
		if eq {
			m.vals[k] = val
			return nil
		}

		pert >>= 5
		i = (i*5 + int(pert) + 1) & mask
	}
}

// MapType is the dispatch table for maps. count() downcasts without
// asserting the type tag in the source this is grounded on; this
// implementation asserts via the normal Go type assertion instead (it
// panics identically to a C assert would on a miscast).
var MapType = &Type{
	Name: "map",
	Print: func(o *Object, w io.Writer) error {
		m := o.Data.(*mapData)
		if _, err := io.WriteString(w, "{"); err != nil {
			return err
		}
		for idx := 0; idx < m.count; idx++ {
			if idx > 0 {
				if _, err := io.WriteString(w, ", "); err != nil {
					return err
				}
			}
			k, v := m.keys[idx], m.vals[idx]
			if k.Type.Print != nil {
				if err := k.Type.Print(k, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, ": "); err != nil {
				return err
			}
			if v.Type.Print != nil {
				if err := v.Type.Print(v, w); err != nil {
					return err
				}
			}
		}
		_, err := io.WriteString(w, "}")
		return err
	},
	Select: func(o, key *Object) (*Object, error) { return mapSelect(o.Data.(*mapData), key) },
	Insert: func(o, key, val *Object) error { return mapInsert(o.Data.(*mapData), key, val) },
	Count:  func(o *Object) int { return o.Data.(*mapData).count },
	Walk: func(o *Object, visit func(*Object)) {
		m := o.Data.(*mapData)
		for idx := 0; idx < m.count; idx++ {
			visit(m.keys[idx])
			visit(m.vals[idx])
		}
	},
	Copy: func(o *Object) *Object {
		m := o.Data.(*mapData)
		cp := NewMap(m.count)
		for idx := 0; idx < m.count; idx++ {
			_ = mapInsert(cp.Data.(*mapData), m.keys[idx], m.vals[idx])
		}
		return cp
	},
}
