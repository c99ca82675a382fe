package bitmatrix_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/p4edit/bitmatrix"
)

func TestNew_InvalidSize(t *testing.T) {
	_, err := bitmatrix.New(-1)
	require.ErrorIs(t, err, bitmatrix.ErrInvalidSize)
}

func TestSetClearToggle_Symmetric(t *testing.T) {
	m, err := bitmatrix.New(5)
	require.NoError(t, err)

	require.NoError(t, m.SetEdge(1, 3))
	require.True(t, m.HasEdge(1, 3))
	require.True(t, m.HasEdge(3, 1), "edge must be symmetric")

	require.NoError(t, m.ClearEdge(1, 3))
	require.False(t, m.HasEdge(1, 3))
	require.False(t, m.HasEdge(3, 1))
}

func TestToggleEdge_RoundTrip(t *testing.T) {
	m, err := bitmatrix.New(8)
	require.NoError(t, err)

	require.NoError(t, m.ToggleEdge(2, 6))
	require.True(t, m.HasEdge(2, 6))

	require.NoError(t, m.ToggleEdge(2, 6))
	require.False(t, m.HasEdge(2, 6), "double toggle must restore original state")
}

func TestLoopRejected(t *testing.T) {
	m, err := bitmatrix.New(4)
	require.NoError(t, err)

	err = m.SetEdge(2, 2)
	require.True(t, errors.Is(err, bitmatrix.ErrLoopNotAllowed))
}

func TestCountEdgesAndDegree(t *testing.T) {
	m, err := bitmatrix.New(4)
	require.NoError(t, err)
	require.NoError(t, m.SetEdge(0, 1))
	require.NoError(t, m.SetEdge(0, 2))
	require.NoError(t, m.SetEdge(2, 3))

	require.Equal(t, 3, m.CountEdges())

	deg, err := m.Degree(0)
	require.NoError(t, err)
	require.Equal(t, 2, deg)
}

func TestNeighborsAscending(t *testing.T) {
	m, err := bitmatrix.New(130) // spans multiple 64-bit words
	require.NoError(t, err)
	for _, v := range []int{1, 64, 65, 129} {
		require.NoError(t, m.SetEdge(0, v))
	}

	got, err := m.Neighbors(0, nil)
	require.NoError(t, err)
	require.Equal(t, []int{1, 64, 65, 129}, got)
}

func TestClone_Independent(t *testing.T) {
	m, err := bitmatrix.New(3)
	require.NoError(t, err)
	require.NoError(t, m.SetEdge(0, 1))

	c := m.Clone()
	require.NoError(t, c.SetEdge(1, 2))

	require.False(t, m.HasEdge(1, 2), "mutating the clone must not affect the original")
	require.True(t, c.HasEdge(0, 1))
}

func TestOutOfRange(t *testing.T) {
	m, err := bitmatrix.New(3)
	require.NoError(t, err)

	require.False(t, m.HasEdge(5, 0))
	err = m.SetEdge(5, 0)
	require.ErrorIs(t, err, bitmatrix.ErrOutOfRange)
}
