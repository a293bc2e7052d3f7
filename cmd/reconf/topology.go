package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/reconf/builder"
)

var errTopology = errors.New("bad topology")

// parseTopology turns a description such as "grid:3x4" or
// "complete:3+cycle:4" into builder constructors. Components joined by '+'
// become disjoint parts of one graph.
//
//	path:N  cycle:N  complete:N  star:N  wheel:N  isolated:N
//	grid:RxC  bipartite:AxB  random:N:P
func parseTopology(desc string) ([]builder.Constructor, error) {
	if strings.TrimSpace(desc) == "" {
		return nil, fmt.Errorf("%w: empty", errTopology)
	}

	var cons []builder.Constructor
	for _, part := range strings.Split(desc, "+") {
		c, err := parseComponent(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		cons = append(cons, c)
	}

	return cons, nil
}

func parseComponent(part string) (builder.Constructor, error) {
	kind, args, _ := strings.Cut(part, ":")
	switch kind {
	case "path", "cycle", "complete", "star", "wheel", "isolated":
		n, err := atoi(part, args)
		if err != nil {
			return nil, err
		}
		return unary(kind, n), nil
	case "grid", "bipartite":
		a, b, ok := strings.Cut(args, "x")
		if !ok {
			return nil, fmt.Errorf("%w: %q wants %s:AxB", errTopology, part, kind)
		}
		x, err := atoi(part, a)
		if err != nil {
			return nil, err
		}
		y, err := atoi(part, b)
		if err != nil {
			return nil, err
		}
		if kind == "grid" {
			return builder.Grid(x, y), nil
		}
		return builder.CompleteBipartite(x, y), nil
	case "random":
		ns, ps, ok := strings.Cut(args, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q wants random:N:P", errTopology, part)
		}
		n, err := atoi(part, ns)
		if err != nil {
			return nil, err
		}
		p, err := strconv.ParseFloat(ps, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", errTopology, part, err)
		}
		return builder.RandomSparse(n, p), nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", errTopology, kind)
	}
}

func unary(kind string, n int) builder.Constructor {
	switch kind {
	case "path":
		return builder.Path(n)
	case "cycle":
		return builder.Cycle(n)
	case "complete":
		return builder.Complete(n)
	case "star":
		return builder.Star(n)
	case "wheel":
		return builder.Wheel(n)
	default:
		return builder.Isolated(n)
	}
}

func atoi(part, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", errTopology, part, err)
	}

	return n, nil
}
