// Package arena implements the bump/pool allocator and tracing-heap
// collaborator the compiler and runtime treat as external: raw byte
// allocation, typed-object allocation, and a reference walk for GC
// tracing. A single implementation backs both roles (a compilation's
// scratch arena, an interpreter's heap); spec.md only requires that each
// owner get an independent instance.
package arena

import (
	"sync"

	"github.com/dustin/go-humanize"

	"noja/internal/object"
)

// Arena is a bump allocator: it only ever grows, and it reports how much
// it has handed out so callers can surface a human-readable size in
// diagnostics.
type Arena struct {
	mu        sync.Mutex
	allocated uint64
	objects   int
}

// New returns an empty arena.
func New() *Arena {
	return &Arena{}
}

// Alloc returns size fresh, zeroed bytes and records the allocation.
func (a *Arena) Alloc(size int) []byte {
	if size < 0 {
		panic("arena: negative allocation size")
	}
	a.mu.Lock()
	a.allocated += uint64(size)
	a.mu.Unlock()
	return make([]byte, size)
}

// AllocObject allocates a new runtime object of the given type carrying
// the given payload, and counts it against the arena's tally.
func (a *Arena) AllocObject(t *object.Type, data interface{}) *object.Object {
	a.mu.Lock()
	a.allocated += objectOverheadBytes
	a.objects++
	a.mu.Unlock()
	return object.New(t, data)
}

// objectOverheadBytes is a nominal per-object accounting unit (type
// pointer + flags word), enough to make --verbose's allocation report
// move as objects are created without claiming to model Go's real heap
// layout.
const objectOverheadBytes = 16

// Allocated returns the total bytes this arena has handed out.
func (a *Arena) Allocated() uint64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.allocated
}

// Objects returns the number of AllocObject calls this arena has served.
func (a *Arena) Objects() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.objects
}

// Stats renders the arena's usage for --verbose-style diagnostics.
func (a *Arena) Stats() string {
	return humanize.Bytes(a.Allocated())
}

// Walk performs a breadth-first traversal of the object graph reachable
// from root, calling visit once per distinct object. This is the GC
// tracing contract spec.md leaves to the collector: each composite object
// exposes Type.Walk to enumerate its outgoing references, and Walk here
// just drives that enumeration.
func Walk(root *object.Object, visit func(*object.Object)) {
	if root == nil {
		return
	}
	seen := map[*object.Object]bool{root: true}
	queue := []*object.Object{root}
	for len(queue) > 0 {
		o := queue[0]
		queue = queue[1:]
		visit(o)
		if o.Type.Walk == nil {
			continue
		}
		o.Type.Walk(o, func(child *object.Object) {
			if child == nil || seen[child] {
				return
			}
			seen[child] = true
			queue = append(queue, child)
		})
	}
}
