package bfs_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/katalvlaran/reconf/bfs"
	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/core"
)

// pathGraph builds the path 0-1-...-(n-1).
func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		if err := g.AddEdge(i-1, i); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, bitset.New(1)); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := pathGraph(t, 3)
	if _, err := bfs.BFS(g, bitset.New(4)); !errors.Is(err, bfs.ErrUniverseMismatch) {
		t.Errorf("universe: want ErrUniverseMismatch, got %v", err)
	}
	if _, err := bfs.BFS(g, nil); !errors.Is(err, bfs.ErrUniverseMismatch) {
		t.Errorf("nil start: want ErrUniverseMismatch, got %v", err)
	}
	if _, err := bfs.BFS(g, bitset.Of(3, 0, 1)); !errors.Is(err, bfs.ErrNotIndependent) {
		t.Errorf("dependent start: want ErrNotIndependent, got %v", err)
	}
	if _, err := bfs.BFS(g, bitset.Of(3, 0), bfs.WithMaxDepth(-1)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative depth: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.BFS(g, bitset.Of(3, 0), bfs.WithMaxStates(-2)); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("negative states: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_SingleToken covers one token on a path: every vertex is one jump away.
func TestBFS_SingleToken(t *testing.T) {
	g := pathGraph(t, 4)
	res, err := bfs.BFS(g, bitset.Of(4, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := len(res.Order); got != 4 {
		t.Fatalf("visited %d configurations; want 4", got)
	}
	for v := 1; v < 4; v++ {
		if d, ok := res.Distance(bitset.Of(4, v)); !ok || d != 1 {
			t.Errorf("Distance({%d}) = %d, %v; want 1, true", v, d, ok)
		}
	}
	if d, _ := res.Distance(bitset.Of(4, 0)); d != 0 {
		t.Errorf("Distance(start) = %d; want 0", d)
	}
}

// TestBFS_FrozenCycle checks that the maximum independent sets of C4 are isolated.
func TestBFS_FrozenCycle(t *testing.T) {
	g := core.NewGraph(4)
	for i := 0; i < 4; i++ {
		_ = g.AddEdge(i, (i+1)%4)
	}
	res, err := bfs.BFS(g, bitset.Of(4, 0, 2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Order) != 1 {
		t.Errorf("Order = %d entries; want 1", len(res.Order))
	}
	path, reachable, err := bfs.ShortestPath(g, bitset.Of(4, 0, 2), bitset.Of(4, 1, 3))
	if err != nil || reachable || path != nil {
		t.Errorf("ShortestPath = %v, %v, %v; want nil, false, nil", path, reachable, err)
	}
}

// TestShortestPath_TwoTokens checks an exact distance and path legality.
func TestShortestPath_TwoTokens(t *testing.T) {
	g := pathGraph(t, 5)
	start, target := bitset.Of(5, 0, 2), bitset.Of(5, 2, 4)
	path, reachable, err := bfs.ShortestPath(g, start, target)
	if err != nil || !reachable {
		t.Fatalf("ShortestPath: reachable=%v err=%v", reachable, err)
	}
	if len(path) != 2 {
		t.Fatalf("len(path) = %d; want 2", len(path))
	}
	if !path[0].Equal(start) || !path[1].Equal(target) {
		t.Errorf("path = %v; want [%v %v]", path, start, target)
	}
}

// TestSuccessors_Order checks source-then-destination ordering.
func TestSuccessors_Order(t *testing.T) {
	g := pathGraph(t, 4)
	var got [][]int
	for _, s := range bfs.Successors(g, bitset.Of(4, 0, 3)) {
		got = append(got, s.Members())
	}
	// Token 0 may only land on 1; token 3 may only land on 2.
	want := [][]int{{1, 3}, {0, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Successors = %v; want %v", got, want)
	}
}

// TestBFS_MaxDepthAndStates verifies the traversal limits.
func TestBFS_MaxDepthAndStates(t *testing.T) {
	g := core.NewGraph(6)
	res, err := bfs.BFS(g, bitset.Of(6, 0, 1), bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for key, d := range res.Depth {
		if d > 1 {
			t.Errorf("state %v at depth %d beyond limit", res.States[key], d)
		}
	}
	// 1 start + 2 sources × 4 free destinations.
	if len(res.Order) != 9 {
		t.Errorf("visited %d; want 9", len(res.Order))
	}

	_, err = bfs.BFS(g, bitset.Of(6, 0, 1), bfs.WithMaxStates(3))
	if !errors.Is(err, bfs.ErrStateLimit) {
		t.Errorf("want ErrStateLimit, got %v", err)
	}
}

// TestBFS_OnVisitAndCancel covers hook errors and cancellation.
func TestBFS_OnVisitAndCancel(t *testing.T) {
	g := pathGraph(t, 5)
	stop := errors.New("stop")
	_, err := bfs.BFS(g, bitset.Of(5, 0), bfs.WithOnVisit(func(_ *bitset.Set, d int) error {
		if d == 1 {
			return stop
		}
		return nil
	}))
	if !errors.Is(err, stop) {
		t.Errorf("want hook error, got %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, bitset.Of(5, 0), bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}

// TestPathTo_Unreached reports an error for undiscovered configurations.
func TestPathTo_Unreached(t *testing.T) {
	g := pathGraph(t, 3)
	res, err := bfs.BFS(g, bitset.Of(3, 0), bfs.WithMaxDepth(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := res.PathTo(bitset.Of(3, 0, 2)); err == nil {
		t.Error("PathTo unreached: want error")
	}
}
