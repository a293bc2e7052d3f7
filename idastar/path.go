package idastar

import (
	"fmt"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/core"
)

// MoveBetween returns the single jump turning a into b. ok is false when a
// and b are equal, differ in size, or differ by more than one token.
func MoveBetween(a, b *bitset.Set) (m Move, ok bool) {
	if a.Len() != b.Len() || a.Count() != b.Count() {
		return Move{}, false
	}
	if a.DifferenceCount(b) != 1 {
		return Move{}, false
	}
	m = Move{From: -1, To: -1}
	a.ForEach(func(v int) {
		if !b.Test(v) {
			m.From = v
		}
	})
	b.ForEach(func(v int) {
		if !a.Test(v) {
			m.To = v
		}
	})

	return m, true
}

// CheckPath verifies that path is a legal token-jumping sequence on g from
// start to target: endpoints match, every step is independent, and
// consecutive steps differ by exactly one jump. Violations are reported as
// ErrInvalidPath wrapped with the offending step index.
func CheckPath(g *core.Graph, start, target *bitset.Set, path []*bitset.Set) error {
	if g == nil {
		return ErrGraphNil
	}
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if !path[0].Equal(start) {
		return fmt.Errorf("%w: step 0 is %v, want start %v", ErrInvalidPath, path[0], start)
	}
	if last := path[len(path)-1]; !last.Equal(target) {
		return fmt.Errorf("%w: last step is %v, want target %v", ErrInvalidPath, last, target)
	}
	for i, st := range path {
		if st.Len() != g.Order() {
			return fmt.Errorf("%w: step %d over %d vertices, graph has %d", ErrInvalidPath, i, st.Len(), g.Order())
		}
		if u, v, ok := g.Conflict(st); !ok {
			return fmt.Errorf("%w: step %d has adjacent tokens %d and %d", ErrInvalidPath, i, u, v)
		}
		if i == 0 {
			continue
		}
		if _, ok := MoveBetween(path[i-1], st); !ok {
			return fmt.Errorf("%w: steps %d and %d are not one jump apart", ErrInvalidPath, i-1, i)
		}
	}

	return nil
}
