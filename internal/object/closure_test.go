package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClosureShadowing(t *testing.T) {
	root := NewClosure(nil)
	require.NoError(t, ClosureType.Insert(root, NewString("x"), NewInt(1)))

	child := NewClosure(root)
	require.NoError(t, ClosureType.Insert(child, NewString("x"), NewInt(2)))

	got, err := ClosureType.Select(child, NewString("x"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.Data.(int64))

	got, err = ClosureType.Select(root, NewString("x"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.Data.(int64))
}

func TestClosureFallsThroughToParent(t *testing.T) {
	root := NewClosure(nil)
	require.NoError(t, ClosureType.Insert(root, NewString("y"), NewString("from root")))

	child := NewClosure(root)
	require.NoError(t, ClosureType.Insert(child, NewString("x"), NewInt(2)))

	got, err := ClosureType.Select(child, NewString("y"))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "from root", got.Data.(string))
}

func TestClosureSelectMissReturnsNilNil(t *testing.T) {
	root := NewClosure(nil)
	child := NewClosure(root)

	got, err := ClosureType.Select(child, NewString("absent"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestVarsReturnsOwnFrameOnly(t *testing.T) {
	root := NewClosure(nil)
	require.NoError(t, ClosureType.Insert(root, NewString("x"), NewInt(1)))
	child := NewClosure(root)

	got, err := MapType.Select(Vars(child), NewString("x"))
	require.NoError(t, err)
	assert.Nil(t, got, "a child frame's own bindings must not contain a parent's name")
}
