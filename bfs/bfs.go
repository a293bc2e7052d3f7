// Package bfs provides breadth-first search over token configurations,
// returning exact jump distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"

	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/core"
)

// queueItem pairs a configuration key with its BFS depth.
type queueItem struct {
	key   string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph *core.Graph
	opts  BFSOptions
	ctx   context.Context
	queue *linkedlistqueue.Queue
	goal  string
	res   *BFSResult
}

// BFS explores every configuration reachable from start by token jumps,
// applying any number of functional Options.
// Returns ErrGraphNil, ErrUniverseMismatch or ErrNotIndependent for invalid
// input, ErrOptionViolation for bad options, ErrStateLimit when MaxStates is
// exceeded, or any context or hook error. The partial result is returned
// alongside ErrStateLimit and abort errors.
func BFS(g *core.Graph, start *bitset.Set, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if start == nil || start.Len() != g.Order() {
		return nil, ErrUniverseMismatch
	}
	if o.Goal != nil && o.Goal.Len() != g.Order() {
		return nil, ErrUniverseMismatch
	}
	if !g.IsIndependent(start) {
		return nil, ErrNotIndependent
	}

	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: linkedlistqueue.New(),
		res: &BFSResult{
			Order:  make([]string, 0, 64),
			Depth:  make(map[string]int, 64),
			Parent: make(map[string]string, 64),
			States: make(map[string]*bitset.Set, 64),
		},
	}
	if o.Goal != nil {
		w.goal = o.Goal.Key()
	}

	// Seed queue with the start configuration (no parent)
	if err := w.enqueue(start.Clone(), 0, ""); err != nil {
		return w.res, err
	}

	return w.res, w.loop()
}

// ShortestPath returns a shortest jump sequence from start to target, or
// reachable == false when target is not reachable. Options other than
// WithGoal apply as for BFS.
func ShortestPath(g *core.Graph, start, target *bitset.Set, opts ...Option) (path []*bitset.Set, reachable bool, err error) {
	if target == nil {
		return nil, false, ErrUniverseMismatch
	}
	res, err := BFS(g, start, append(opts, WithGoal(target))...)
	if err != nil {
		return nil, false, err
	}
	if _, ok := res.Distance(target); !ok {
		return nil, false, nil
	}
	path, err = res.PathTo(target)
	if err != nil {
		return nil, false, err
	}

	return path, true, nil
}

// enqueue records s at depth d under parent and adds it to the queue.
func (w *walker) enqueue(s *bitset.Set, d int, parent string) error {
	key := s.Key()
	if w.opts.MaxStates > 0 && len(w.res.States) >= w.opts.MaxStates {
		return fmt.Errorf("%w: more than %d configurations", ErrStateLimit, w.opts.MaxStates)
	}
	w.res.Depth[key] = d
	w.res.States[key] = s
	if parent != "" {
		w.res.Parent[key] = parent
	}
	w.queue.Enqueue(queueItem{key: key, depth: d})

	return nil
}

// loop processes the queue until empty, goal, error, or cancellation.
func (w *walker) loop() error {
	for !w.queue.Empty() {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		v, _ := w.queue.Dequeue()
		item := v.(queueItem)
		if err := w.visit(item); err != nil {
			return err
		}
		if w.goal != "" && item.key == w.goal {
			return nil
		}
		if w.opts.MaxDepth > 0 && item.depth >= w.opts.MaxDepth {
			continue
		}
		if err := w.enqueueSuccessors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the configuration in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.key)
	if err := w.opts.OnVisit(w.res.States[item.key], item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", w.res.States[item.key], err)
	}

	return nil
}

// enqueueSuccessors enqueues each unseen configuration one jump away.
func (w *walker) enqueueSuccessors(item queueItem) error {
	for _, next := range Successors(w.graph, w.res.States[item.key]) {
		if _, seen := w.res.Depth[next.Key()]; seen {
			continue
		}
		if err := w.enqueue(next, item.depth+1, item.key); err != nil {
			return err
		}
	}

	return nil
}

// Successors returns every configuration reachable from s by one jump,
// ordered by source token ascending, then destination ascending.
// s must be independent; it is not modified.
func Successors(g *core.Graph, s *bitset.Set) []*bitset.Set {
	var out []*bitset.Set
	rest := s.Clone()
	s.ForEach(func(x int) {
		rest.Clear(x)
		for y := 0; y < g.Order(); y++ {
			if y == x || rest.Test(y) {
				continue
			}
			if g.Neighbors(y).Intersects(rest) {
				continue
			}
			next := rest.Clone()
			next.Set(y)
			out = append(out, next)
		}
		rest.Set(x)
	})

	return out
}
