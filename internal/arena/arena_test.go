package arena

import (
	"testing"

	"noja/internal/object"
)

func TestWalkVisitsClosureChainOnce(t *testing.T) {
	root := object.NewClosure(nil)
	child := object.NewClosure(root)

	key := object.NewString("x")
	if err := object.ClosureType.Insert(child, key, object.NewInt(1)); err != nil {
		t.Fatalf("insert: %v", err)
	}

	visited := map[*object.Object]int{}
	Walk(child, func(o *object.Object) { visited[o]++ })

	for o, n := range visited {
		if n != 1 {
			t.Fatalf("object %v visited %d times, want 1", o, n)
		}
	}
	if len(visited) == 0 {
		t.Fatalf("expected at least one visited object")
	}
}

func TestArenaAllocatedTracksSize(t *testing.T) {
	a := New()
	a.Alloc(10)
	a.Alloc(20)
	if got := a.Allocated(); got != 30 {
		t.Fatalf("Allocated() = %d, want 30", got)
	}
	if got := a.Stats(); got == "" {
		t.Fatalf("Stats() returned empty string")
	}
}
