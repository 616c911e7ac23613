package object

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewListSelectInsertRoundTrip(t *testing.T) {
	l := NewList(2)

	require.NoError(t, ListType.Insert(l, NewInt(0), NewString("a")))
	require.NoError(t, ListType.Insert(l, NewInt(1), NewString("b")))

	assert.Equal(t, 2, ListType.Count(l))

	got, err := ListType.Select(l, NewInt(0))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "a", got.Data.(string))

	got, err = ListType.Select(l, NewInt(1))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "b", got.Data.(string))
}

func TestNewListGrowsPastCapacityHint(t *testing.T) {
	l := NewList(1)

	require.NoError(t, ListType.Insert(l, NewInt(5), NewInt(99)))
	assert.Equal(t, 6, ListType.Count(l), "inserting past the hint must grow the backing slice")

	got, err := ListType.Select(l, NewInt(5))
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(99), got.Data.(int64))
}

func TestListSelectOutOfRangeIsMiss(t *testing.T) {
	l := NewList(0)
	got, err := ListType.Select(l, NewInt(3))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListPrint(t *testing.T) {
	l := NewList(0)
	require.NoError(t, ListType.Insert(l, NewInt(0), NewInt(1)))
	require.NoError(t, ListType.Insert(l, NewInt(1), NewInt(2)))

	var sb strings.Builder
	require.NoError(t, ListType.Print(l, &sb))
	assert.Equal(t, "[1, 2]", sb.String())
}
