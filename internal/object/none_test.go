package object

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoneIsSingleton(t *testing.T) {
	assert.Same(t, noneObject, None())
	assert.Same(t, None(), None())
}

func TestNoneToBoolIsFalse(t *testing.T) {
	v, ok := NoneType.ToBool(None())
	require.True(t, ok)
	assert.False(t, v)
}

func TestNoneEquality(t *testing.T) {
	eq, ok := NoneType.OpEql(None(), None())
	require.True(t, ok)
	assert.True(t, eq)

	eq, ok = NoneType.OpEql(None(), NewInt(0))
	require.True(t, ok)
	assert.False(t, eq)

	nq, ok := NoneType.OpNql(None(), NewInt(0))
	require.True(t, ok)
	assert.True(t, nq)
}

func TestNonePrint(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, NoneType.Print(None(), &sb))
	assert.Equal(t, "none", sb.String())
}
