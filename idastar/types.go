package idastar

import (
	"context"
	"errors"

	"github.com/katalvlaran/reconf/bitset"
)

// Sentinel errors for input validation.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("idastar: graph is nil")

	// ErrVertexOutOfRange is returned when a vertex id lies outside [0, n).
	ErrVertexOutOfRange = errors.New("idastar: vertex out of range")

	// ErrDuplicateVertex is returned when S or T lists a vertex twice.
	ErrDuplicateVertex = errors.New("idastar: duplicate vertex")

	// ErrUniverseMismatch is returned when a set's universe is not the graph order.
	ErrUniverseMismatch = errors.New("idastar: set universe does not match graph")

	// ErrSizeMismatch is returned when |S| != |T|.
	ErrSizeMismatch = errors.New("idastar: |S| != |T|")

	// ErrNotIndependent is returned when S or T is not an independent set.
	ErrNotIndependent = errors.New("idastar: set is not independent")

	// ErrInvalidPath is returned by CheckPath for a path that is not a legal
	// token-jumping sequence between the given endpoints.
	ErrInvalidPath = errors.New("idastar: invalid path")
)

// Option configures Solve via functional arguments.
type Option func(*Options)

// Options holds the tunables of one solve.
type Options struct {
	// Ctx allows cancellation and deadlines; polled every 1024 frames.
	Ctx context.Context

	// OnIteration is called before each bounded pass with the pass bound
	// and the number of frames expanded so far.
	OnIteration func(bound int, nodes uint64)
}

// DefaultOptions returns Options with a background context and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		OnIteration: func(int, uint64) {},
	}
}

// WithContext sets a custom context for cancellation.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnIteration registers a callback run before every bounded pass.
func WithOnIteration(fn func(bound int, nodes uint64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnIteration = fn
		}
	}
}

// Move relocates one token from From to To.
type Move struct {
	From int
	To   int
}

// Reverse returns the move that undoes m.
func (m Move) Reverse() Move { return Move{From: m.To, To: m.From} }

// Stats reports search effort.
type Stats struct {
	// Nodes counts search frames entered across all passes.
	Nodes uint64

	// Iterations counts bounded depth-first passes.
	Iterations int

	// Bound is the f-bound of the last pass.
	Bound int
}

// Result is the outcome of a completed search.
//
// Path is nil unless Solvable; when set, Path[0] equals Start, the last
// entry equals Target, and consecutive entries differ by one legal jump.
// Every entry is an independent copy.
type Result struct {
	Solvable bool
	Start    *bitset.Set
	Target   *bitset.Set
	Path     []*bitset.Set
	Stats    Stats
}

// Length returns the number of moves on the path, or -1 when unsolvable.
func (r *Result) Length() int {
	if !r.Solvable {
		return -1
	}

	return len(r.Path) - 1
}

// Moves returns the jump sequence encoded by Path.
func (r *Result) Moves() []Move {
	if len(r.Path) < 2 {
		return nil
	}
	moves := make([]Move, 0, len(r.Path)-1)
	for i := 1; i < len(r.Path); i++ {
		m, _ := MoveBetween(r.Path[i-1], r.Path[i])
		moves = append(moves, m)
	}

	return moves
}
