package idastar

import (
	"math/bits"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/core"
)

// searchState is the mutable token configuration of one solve.
//
// Invariants, after init and after every apply/undo pair:
//   - deg[u] == |N(u) ∩ tokens| for every vertex u.
//   - h == |tokens \ target|.
type searchState struct {
	g      *core.Graph
	tokens *bitset.Set
	target *bitset.Set
	deg    []int32
	h      int
}

// newSearchState copies start into a fresh state and establishes the
// degree and heuristic invariants from scratch.
func newSearchState(g *core.Graph, start, target *bitset.Set) *searchState {
	st := &searchState{
		g:      g,
		tokens: start.Clone(),
		target: target,
		deg:    make([]int32, g.Order()),
	}
	st.computeDegree()
	st.h = st.computeHeuristic()

	return st
}

// computeDegree rebuilds deg from the current tokens. O(n + |tokens|·W).
func (st *searchState) computeDegree() {
	clear(st.deg)
	st.tokens.ForEach(func(t int) { st.adjust(t, 1) })
}

// computeHeuristic counts tokens not on a target vertex. O(W).
func (st *searchState) computeHeuristic() int {
	return st.tokens.DifferenceCount(st.target)
}

// deltaH is the change of h caused by the move x→y.
func (st *searchState) deltaH(x, y int) int {
	d := 0
	if !st.target.Test(y) {
		d++
	}
	if !st.target.Test(x) {
		d--
	}

	return d
}

// adjust adds delta to deg[u] for every neighbor u of v.
func (st *searchState) adjust(v int, delta int32) {
	for w, word := range st.g.Neighbors(v).Words() {
		for word != 0 {
			st.deg[w<<6+bits.TrailingZeros64(word)] += delta
			word &= word - 1
		}
	}
}

// apply moves the token on x to y.
func (st *searchState) apply(x, y int) {
	st.h += st.deltaH(x, y)
	st.adjust(x, -1)
	st.adjust(y, +1)
	st.tokens.Clear(x)
	st.tokens.Set(y)
}

// undo reverts apply(x, y).
func (st *searchState) undo(x, y int) {
	st.tokens.Clear(y)
	st.tokens.Set(x)
	st.adjust(y, -1)
	st.adjust(x, +1)
	st.h -= st.deltaH(x, y)
}

// oneTokenNeighbor returns the lowest token adjacent to y, or -1.
// For deg[y] == 1 this is the unique source able to jump onto y.
func (st *searchState) oneTokenNeighbor(y int) int {
	row := st.g.Neighbors(y).Words()
	tw := st.tokens.Words()
	for b := range row {
		if m := row[b] & tw[b]; m != 0 {
			return b<<6 + bits.TrailingZeros64(m)
		}
	}

	return -1
}

// atGoal reports whether the tokens coincide with the target.
func (st *searchState) atGoal() bool { return st.tokens.Equal(st.target) }
