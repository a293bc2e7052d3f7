package idastar

import (
	"fmt"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/core"
)

// Solve finds a shortest token-jumping sequence on g from the vertex list
// start to the vertex list target (0-based ids).
//
// Input is validated before any search work: ErrGraphNil,
// ErrVertexOutOfRange, ErrDuplicateVertex, ErrSizeMismatch and
// ErrNotIndependent are returned wrapped with context. A nil error with
// Result.Solvable == false means the instance was proven unsolvable.
func Solve(g *core.Graph, start, target []int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	s, err := toSet(g, "S", start)
	if err != nil {
		return nil, err
	}
	t, err := toSet(g, "T", target)
	if err != nil {
		return nil, err
	}

	return SolveSets(g, s, t, opts...)
}

// SolveSets is Solve for sets already encoded over g's vertex universe.
// s and t are not modified.
//
// On cancellation through WithContext the partial Result (Stats only) is
// returned together with the context error.
func SolveSets(g *core.Graph, s, t *bitset.Set, opts ...Option) (*Result, error) {
	if err := Validate(g, s, t); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := newWalker(g, s, t, o)
	found, err := w.run()

	res := &Result{
		Solvable: found,
		Start:    s.Clone(),
		Target:   t.Clone(),
		Stats:    w.stats,
	}
	if err != nil {
		return res, fmt.Errorf("idastar: search aborted after %d nodes: %w", w.stats.Nodes, err)
	}
	if found {
		res.Path = w.path[:w.depth+1]
	}

	return res, nil
}

// Validate checks the preconditions of a solve: a non-nil graph, sets over
// the graph's universe, |S| == |T| and both sets independent.
func Validate(g *core.Graph, s, t *bitset.Set) error {
	if g == nil {
		return ErrGraphNil
	}
	if s == nil || t == nil {
		return fmt.Errorf("%w: nil set", ErrUniverseMismatch)
	}
	if s.Len() != g.Order() || t.Len() != g.Order() {
		return fmt.Errorf("%w: |V|=%d, S over %d, T over %d", ErrUniverseMismatch, g.Order(), s.Len(), t.Len())
	}
	if s.Count() != t.Count() {
		return fmt.Errorf("%w: |S|=%d, |T|=%d", ErrSizeMismatch, s.Count(), t.Count())
	}
	if u, v, ok := g.Conflict(s); !ok {
		return fmt.Errorf("%w: S contains edge {%d, %d}", ErrNotIndependent, u, v)
	}
	if u, v, ok := g.Conflict(t); !ok {
		return fmt.Errorf("%w: T contains edge {%d, %d}", ErrNotIndependent, u, v)
	}

	return nil
}

// toSet encodes a vertex list, rejecting out-of-range and repeated ids.
func toSet(g *core.Graph, name string, vs []int) (*bitset.Set, error) {
	s := g.NewSet()
	for _, v := range vs {
		if !g.Has(v) {
			return nil, fmt.Errorf("%w: %s has vertex %d, order %d", ErrVertexOutOfRange, name, v, g.Order())
		}
		if s.Test(v) {
			return nil, fmt.Errorf("%w: %s lists vertex %d twice", ErrDuplicateVertex, name, v)
		}
		s.Set(v)
	}

	return s, nil
}
