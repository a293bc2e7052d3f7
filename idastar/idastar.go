package idastar

import (
	"context"
	"math"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/core"
)

const (
	// pollEvery is the frame interval between context checks.
	pollEvery = 1 << 10

	// unbounded marks "no pruned frame recorded" for nextBound.
	unbounded = math.MaxInt
)

// noMove is the parent move of the root; -1 never matches a vertex.
var noMove = Move{From: -1, To: -1}

// frame holds the per-depth candidate buffers, reused across passes so the
// search does not allocate per expansion once warm.
type frame struct {
	tokOff []int // tokens not on a target vertex
	tokOn  []int // tokens on a target vertex
	tDeg1  []int // empty target vertices with one adjacent token
	tDeg0  []int // empty target vertices with no adjacent token
	nDeg1  []int // empty non-target vertices with one adjacent token
	nDeg0  []int // empty non-target vertices with no adjacent token
}

func (f *frame) reset() {
	f.tokOff, f.tokOn = f.tokOff[:0], f.tokOn[:0]
	f.tDeg1, f.tDeg0 = f.tDeg1[:0], f.tDeg0[:0]
	f.nDeg1, f.nDeg0 = f.nDeg1[:0], f.nDeg0[:0]
}

// walker encapsulates mutable IDA* state.
type walker struct {
	st        *searchState
	opts      Options
	ctx       context.Context
	n         int
	frames    []*frame      // scratch per depth
	path      []*bitset.Set // snapshot arena indexed by depth
	depth     int           // depth of the goal frame once found
	last      Move          // move that produced the current frame
	nextBound int
	stats     Stats
	err       error
}

func newWalker(g *core.Graph, start, target *bitset.Set, o Options) *walker {
	st := newSearchState(g, start, target)

	return &walker{
		st:   st,
		opts: o,
		ctx:  o.Ctx,
		n:    g.Order(),
		path: []*bitset.Set{st.tokens.Clone()},
		last: noMove,
	}
}

// run is the iterative-deepening loop. It returns true once a pass reaches
// the target, false when a pass prunes nothing, or the context error.
func (w *walker) run() (bool, error) {
	bound := w.st.h
	for {
		w.nextBound = unbounded
		w.last = noMove
		w.stats.Iterations++
		w.stats.Bound = bound
		w.opts.OnIteration(bound, w.stats.Nodes)

		if w.search(0, bound) {
			return true, nil
		}
		if w.err != nil {
			return false, w.err
		}
		if w.nextBound == unbounded {
			return false, nil
		}
		bound = w.nextBound
	}
}

// search is one bounded depth-first frame at depth g.
func (w *walker) search(g, bound int) bool {
	w.stats.Nodes++
	if w.stats.Nodes%pollEvery == 0 {
		if err := w.ctx.Err(); err != nil {
			w.err = err
			return false
		}
	}

	f := g + w.st.h
	if f > bound {
		if f < w.nextBound {
			w.nextBound = f
		}
		return false
	}
	if w.st.atGoal() {
		w.depth = g
		return true
	}

	fr := w.classify(g)

	return w.expandForced(g, bound, fr.tDeg1) ||
		w.expandFree(g, bound, fr.tDeg0, fr) ||
		w.expandForced(g, bound, fr.nDeg1) ||
		w.expandFree(g, bound, fr.nDeg0, fr)
}

// classify fills the depth-g frame with the current tokens and the four
// destination classes, all in ascending vertex order.
func (w *walker) classify(g int) *frame {
	for len(w.frames) <= g {
		w.frames = append(w.frames, &frame{})
	}
	fr := w.frames[g]
	fr.reset()

	tokens, target := w.st.tokens, w.st.target
	tokens.ForEach(func(v int) {
		if target.Test(v) {
			fr.tokOn = append(fr.tokOn, v)
		} else {
			fr.tokOff = append(fr.tokOff, v)
		}
	})

	for y := 0; y < w.n; y++ {
		if tokens.Test(y) {
			continue
		}
		switch w.st.deg[y] {
		case 0:
			if target.Test(y) {
				fr.tDeg0 = append(fr.tDeg0, y)
			} else {
				fr.nDeg0 = append(fr.nDeg0, y)
			}
		case 1:
			if target.Test(y) {
				fr.tDeg1 = append(fr.tDeg1, y)
			} else {
				fr.nDeg1 = append(fr.nDeg1, y)
			}
		}
	}

	return fr
}

// expandForced tries destinations with exactly one adjacent token; that
// token is the only legal source.
func (w *walker) expandForced(g, bound int, ys []int) bool {
	for _, y := range ys {
		x := w.st.oneTokenNeighbor(y)
		if x < 0 {
			continue
		}
		if w.try(g, bound, Move{From: x, To: y}) {
			return true
		}
		if w.err != nil {
			return false
		}
	}

	return false
}

// expandFree tries destinations with no adjacent token from every source,
// off-target tokens first.
func (w *walker) expandFree(g, bound int, ys []int, fr *frame) bool {
	for _, y := range ys {
		for _, x := range fr.tokOff {
			if w.try(g, bound, Move{From: x, To: y}) {
				return true
			}
			if w.err != nil {
				return false
			}
		}
		for _, x := range fr.tokOn {
			if w.try(g, bound, Move{From: x, To: y}) {
				return true
			}
			if w.err != nil {
				return false
			}
		}
	}

	return false
}

// try applies m, records the snapshot and recurses; on failure the move is
// undone and the parent move restored.
func (w *walker) try(g, bound int, m Move) bool {
	if m == w.last.Reverse() {
		return false
	}

	prev := w.last
	w.last = m
	w.st.apply(m.From, m.To)
	w.record(g + 1)

	if w.search(g+1, bound) {
		return true
	}

	w.st.undo(m.From, m.To)
	w.last = prev

	return false
}

// record snapshots the live tokens at depth d, reusing arena storage.
func (w *walker) record(d int) {
	if d < len(w.path) {
		w.path[d].CopyFrom(w.st.tokens)
		return
	}
	w.path = append(w.path, w.st.tokens.Clone())
}
