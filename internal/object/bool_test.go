package object

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBoolReturnsSingletons(t *testing.T) {
	assert.Same(t, trueObject, FromBool(true))
	assert.Same(t, falseObject, FromBool(false))
	assert.NotSame(t, FromBool(true), FromBool(false))
}

func TestBoolToBool(t *testing.T) {
	v, ok := BoolType.ToBool(FromBool(true))
	require.True(t, ok)
	assert.True(t, v)

	v, ok = BoolType.ToBool(FromBool(false))
	require.True(t, ok)
	assert.False(t, v)
}

func TestBoolOpEql(t *testing.T) {
	eq, ok := BoolType.OpEql(FromBool(true), FromBool(true))
	require.True(t, ok)
	assert.True(t, eq)

	eq, ok = BoolType.OpEql(FromBool(true), FromBool(false))
	require.True(t, ok)
	assert.False(t, eq)

	eq, ok = BoolType.OpEql(FromBool(true), NewInt(1))
	require.True(t, ok)
	assert.False(t, eq, "a bool is never equal to a non-bool")
}

func TestBoolPrint(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, BoolType.Print(FromBool(true), &sb))
	assert.Equal(t, "true", sb.String())

	sb.Reset()
	require.NoError(t, BoolType.Print(FromBool(false), &sb))
	assert.Equal(t, "false", sb.String())
}
