// Package bfs provides tunable options and error definitions
// for breadth-first search over token configurations.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/reconf/bitset"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrUniverseMismatch is returned when a set is not over the graph's vertices.
	ErrUniverseMismatch = errors.New("bfs: set universe does not match graph")

	// ErrNotIndependent is returned when the start configuration has adjacent tokens.
	ErrNotIndependent = errors.New("bfs: start set is not independent")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrStateLimit is returned when the search discovers more than MaxStates configurations.
	ErrStateLimit = errors.New("bfs: state limit exceeded")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a configuration is dequeued. If it returns an
	// error, BFS aborts and propagates that error. The set must not be
	// retained or modified.
	OnVisit func(state *bitset.Set, depth int) error

	// MaxDepth, if > 0, stops expanding configurations at this depth.
	MaxDepth int

	// MaxStates, if > 0, bounds the number of discovered configurations.
	MaxStates int

	// Goal, if non-nil, stops the search once it is dequeued.
	Goal *bitset.Set

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with:
//   - Context.Background()
//   - no depth or state limit
//   - no goal (full exploration)
//   - a no-op OnVisit hook
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:     context.Background(),
		OnVisit: func(*bitset.Set, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(state *bitset.Set, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops expansion at the given depth.
//
//	d > 0: configurations at depth d are visited but not expanded
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithMaxStates bounds the number of discovered configurations.
// n == 0 disables the limit; n < 0 is an ErrOptionViolation.
func WithMaxStates(n int) Option {
	return func(o *BFSOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxStates = n
	}
}

// WithGoal stops the search as soon as goal is dequeued.
func WithGoal(goal *bitset.Set) Option {
	return func(o *BFSOptions) {
		o.Goal = goal
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: configuration keys, in visit sequence.
//   - Depth: key → number of jumps from the start.
//   - Parent: key → predecessor key in the BFS tree.
//   - States: key → configuration.
type BFSResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
	States map[string]*bitset.Set
}

// Distance returns the number of jumps from the start to s, if discovered.
func (r *BFSResult) Distance(s *bitset.Set) (int, bool) {
	d, ok := r.Depth[s.Key()]
	return d, ok
}

// PathTo reconstructs the configurations from the start to dest.
// Returns an error if dest was not reached.
func (r *BFSResult) PathTo(dest *bitset.Set) ([]*bitset.Set, error) {
	key := dest.Key()
	if _, ok := r.Depth[key]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	// build reversed path
	path := []*bitset.Set{}
	for cur := key; ; {
		path = append(path, r.States[cur])
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
