package idastar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/core"
)

func wheelGraph(t *testing.T) *core.Graph {
	t.Helper()
	// Hub 0 joined to the rim cycle 1..6.
	g := core.NewGraph(7)
	for i := 1; i <= 6; i++ {
		require.NoError(t, g.AddEdge(0, i))
		require.NoError(t, g.AddEdge(i, 1+i%6))
	}

	return g
}

// assertInvariants recomputes deg and h from scratch and compares.
func assertInvariants(t *testing.T, st *searchState) {
	t.Helper()
	want := make([]int32, st.g.Order())
	st.tokens.ForEach(func(v int) {
		st.g.ForEachNeighbor(v, func(u int) { want[u]++ })
	})
	assert.Equal(t, want, st.deg)
	assert.Equal(t, st.tokens.DifferenceCount(st.target), st.h)
}

func TestSearchState_ApplyUndoRestores(t *testing.T) {
	g := wheelGraph(t)
	st := newSearchState(g, bitset.Of(7, 1, 3), bitset.Of(7, 2, 5))
	assertInvariants(t, st)
	assert.Equal(t, 2, st.h)

	before := st.tokens.Clone()
	degBefore := append([]int32(nil), st.deg...)

	st.apply(1, 5)
	assertInvariants(t, st)
	assert.Equal(t, 1, st.h)

	st.apply(3, 2)
	assertInvariants(t, st)
	assert.True(t, st.atGoal())

	st.undo(3, 2)
	st.undo(1, 5)
	assert.True(t, st.tokens.Equal(before))
	assert.Equal(t, degBefore, st.deg)
	assert.Equal(t, 2, st.h)
}

func TestSearchState_OneTokenNeighbor(t *testing.T) {
	g := wheelGraph(t)
	st := newSearchState(g, bitset.Of(7, 2), bitset.Of(7, 2))

	assert.Equal(t, 2, st.oneTokenNeighbor(1))
	assert.Equal(t, 2, st.oneTokenNeighbor(0))
	assert.Equal(t, -1, st.oneTokenNeighbor(5))
}

func TestMoveReverse(t *testing.T) {
	m := Move{From: 3, To: 8}
	assert.Equal(t, Move{From: 8, To: 3}, m.Reverse())
	assert.NotEqual(t, noMove, m.Reverse())
}
