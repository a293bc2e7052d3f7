package dimacs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/reconf/core"
)

// ParseCol reads a .col graph. A later "p" line replaces an earlier one.
func ParseCol(r io.Reader) (*Col, error) {
	doc, err := parse("col", r)
	if err != nil {
		return nil, err
	}

	col := &Col{}
	for _, l := range doc.Lines {
		switch l.Key {
		case keyProblem:
			if len(l.Values) < 1 || len(l.Values) > 2 {
				return nil, malformed(l, "[kind] <n> [<m>]")
			}
			col.Kind = l.Word
			col.Order = l.Values[0]
			col.Declared = 0
			if len(l.Values) == 2 {
				col.Declared = l.Values[1]
			}
		case keyEdge:
			if l.Word != "" || len(l.Values) != 2 {
				return nil, malformed(l, "<u> <v>")
			}
			col.Edges = append(col.Edges, [2]int{l.Values[0], l.Values[1]})
		default:
			return nil, unexpected(l, "col")
		}
	}
	if col.Order <= 0 {
		return nil, ErrNoProblemLine
	}

	return col, nil
}

// Graph builds the 0-based core.Graph of c. Edges with an endpoint outside
// [1, Order] are skipped and counted; self loops are dropped by core.
func (c *Col) Graph() (g *core.Graph, skipped int) {
	g = core.NewGraph(c.Order)
	for _, e := range c.Edges {
		u, v := e[0]-1, e[1]-1
		if !g.Has(u) || !g.Has(v) {
			skipped++
			continue
		}
		// Both endpoints are in range, so AddEdge cannot fail.
		_ = g.AddEdge(u, v)
	}

	return g, skipped
}

// WriteCol writes g as a .col file with a "p edge n m" header.
func WriteCol(w io.Writer, g *core.Graph) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "p edge %d %d\n", g.Order(), g.Size())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "e %d %d\n", e[0]+1, e[1]+1)
	}

	return bw.Flush()
}
