package idastar_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/builder"
	"github.com/katalvlaran/reconf/core"
	"github.com/katalvlaran/reconf/idastar"
)

// mustGraph builds a graph of order n from 0-based edges.
func mustGraph(t testing.TB, n int, edges ...[2]int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// members renders every path step as its 0-based member list.
func members(path []*bitset.Set) [][]int {
	out := make([][]int, len(path))
	for i, s := range path {
		out[i] = s.Members()
	}

	return out
}

func TestSolve_PathGraphSingleJump(t *testing.T) {
	// 0-1-2 with one token: the token jumps straight over vertex 1.
	g := mustGraph(t, 3, [2]int{0, 1}, [2]int{1, 2})

	res, err := idastar.Solve(g, []int{0}, []int{2})
	require.NoError(t, err)
	require.True(t, res.Solvable)
	assert.Equal(t, 1, res.Length())
	assert.Equal(t, [][]int{{0}, {2}}, members(res.Path))
	assert.Equal(t, []idastar.Move{{From: 0, To: 2}}, res.Moves())
}

func TestSolve_TwoIsolatedVertices(t *testing.T) {
	g := mustGraph(t, 2)

	res, err := idastar.Solve(g, []int{0}, []int{1})
	require.NoError(t, err)
	require.True(t, res.Solvable)
	assert.Equal(t, 1, res.Length())
	assert.Equal(t, [][]int{{0}, {1}}, members(res.Path))
}

func TestSolve_FourCycleFrozen(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Cycle(4))
	require.NoError(t, err)

	res, err := idastar.Solve(g, []int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	assert.False(t, res.Solvable)
	assert.Nil(t, res.Path)
	assert.Equal(t, -1, res.Length())
	assert.Nil(t, res.Moves())
	// No move exists, so the first pass prunes nothing.
	assert.Equal(t, 1, res.Stats.Iterations)
}

func TestSolve_StartEqualsTarget(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(5))
	require.NoError(t, err)

	res, err := idastar.Solve(g, []int{0, 4}, []int{4, 0})
	require.NoError(t, err)
	require.True(t, res.Solvable)
	assert.Equal(t, 0, res.Length())
	require.Len(t, res.Path, 1)
	assert.Equal(t, []int{0, 4}, res.Path[0].Members())
}

func TestSolve_EmptyConfiguration(t *testing.T) {
	g := mustGraph(t, 3, [2]int{0, 1})

	res, err := idastar.Solve(g, nil, []int{})
	require.NoError(t, err)
	assert.True(t, res.Solvable)
	assert.Equal(t, 0, res.Length())
}

func TestSolve_DisconnectedFrozenComponent(t *testing.T) {
	// A frozen 4-cycle next to two isolated vertices: one token parks
	// outside the cycle, which unfreezes the other.
	g, err := builder.BuildGraph(nil, builder.Cycle(4), builder.Isolated(2))
	require.NoError(t, err)

	res, err := idastar.Solve(g, []int{0, 2}, []int{1, 3})
	require.NoError(t, err)
	require.True(t, res.Solvable)
	assert.Equal(t, 3, res.Length())
	require.NoError(t, idastar.CheckPath(g, res.Start, res.Target, res.Path))
}

func TestSolve_CompleteGraphNeedsOneJump(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Complete(5))
	require.NoError(t, err)

	res, err := idastar.Solve(g, []int{1}, []int{3})
	require.NoError(t, err)
	require.True(t, res.Solvable)
	assert.Equal(t, 1, res.Length())
}

func TestSolve_StarLeavesSwap(t *testing.T) {
	// Star with center 0: leaves {1,2} → {3,4} takes two jumps.
	g, err := builder.BuildGraph(nil, builder.Star(5))
	require.NoError(t, err)

	res, err := idastar.Solve(g, []int{1, 2}, []int{3, 4})
	require.NoError(t, err)
	require.True(t, res.Solvable)
	assert.Equal(t, 2, res.Length())
	require.NoError(t, idastar.CheckPath(g, res.Start, res.Target, res.Path))
}

func TestSolve_InputUntouched(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(6))
	require.NoError(t, err)
	s := bitset.Of(6, 0, 2)
	tg := bitset.Of(6, 3, 5)

	res, err := idastar.SolveSets(g, s, tg)
	require.NoError(t, err)
	require.True(t, res.Solvable)
	assert.Equal(t, []int{0, 2}, s.Members())
	assert.Equal(t, []int{3, 5}, tg.Members())
	assert.True(t, res.Start.Equal(s))
	assert.True(t, res.Target.Equal(tg))
}

func TestSolve_Errors(t *testing.T) {
	g := mustGraph(t, 4, [2]int{0, 1}, [2]int{2, 3})

	cases := []struct {
		name   string
		g      *core.Graph
		start  []int
		target []int
		want   error
	}{
		{"nil graph", nil, []int{0}, []int{1}, idastar.ErrGraphNil},
		{"start out of range", g, []int{4}, []int{1}, idastar.ErrVertexOutOfRange},
		{"target negative", g, []int{0}, []int{-1}, idastar.ErrVertexOutOfRange},
		{"duplicate", g, []int{0, 0}, []int{0, 2}, idastar.ErrDuplicateVertex},
		{"size mismatch", g, []int{0}, []int{0, 2}, idastar.ErrSizeMismatch},
		{"start dependent", g, []int{0, 1}, []int{0, 2}, idastar.ErrNotIndependent},
		{"target dependent", g, []int{0, 2}, []int{2, 3}, idastar.ErrNotIndependent},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := idastar.Solve(tc.g, tc.start, tc.target)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, res)
		})
	}
}

func TestSolveSets_UniverseMismatch(t *testing.T) {
	g := mustGraph(t, 3)

	_, err := idastar.SolveSets(g, bitset.Of(4, 0), bitset.Of(3, 1))
	assert.ErrorIs(t, err, idastar.ErrUniverseMismatch)

	_, err = idastar.SolveSets(g, nil, bitset.Of(3, 1))
	assert.ErrorIs(t, err, idastar.ErrUniverseMismatch)
}

func TestSolve_OnIterationSeesIncreasingBounds(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Grid(3, 3))
	require.NoError(t, err)

	var bounds []int
	res, err := idastar.Solve(g, []int{0, 2, 6}, []int{1, 3, 8},
		idastar.WithOnIteration(func(bound int, _ uint64) { bounds = append(bounds, bound) }),
	)
	require.NoError(t, err)
	require.NotEmpty(t, bounds)
	assert.Equal(t, res.Stats.Iterations, len(bounds))
	assert.Equal(t, bounds[len(bounds)-1], res.Stats.Bound)
	for i := 1; i < len(bounds); i++ {
		assert.Greater(t, bounds[i], bounds[i-1])
	}
}

func TestSolve_Cancelled(t *testing.T) {
	// Nine tokens on a 6x6 grid keep the search busy past the first poll.
	g, err := builder.BuildGraph(nil, builder.Grid(6, 6))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := []int{0, 2, 4, 13, 15, 17, 24, 26, 28}
	target := []int{7, 9, 11, 18, 20, 22, 31, 33, 35}
	res, err := idastar.Solve(g, start, target, idastar.WithContext(ctx))
	if err == nil {
		// Solved inside the first poll window; nothing to cancel.
		assert.True(t, res.Solvable)
		return
	}
	assert.ErrorIs(t, err, context.Canceled)
	require.NotNil(t, res)
	assert.False(t, res.Solvable)
	assert.GreaterOrEqual(t, res.Stats.Nodes, uint64(1024))
}

func TestWithContext_NilIgnored(t *testing.T) {
	g := mustGraph(t, 2)

	//nolint:staticcheck // nil context is part of the contract under test
	res, err := idastar.Solve(g, []int{0}, []int{1}, idastar.WithContext(nil))
	require.NoError(t, err)
	assert.True(t, res.Solvable)
}
