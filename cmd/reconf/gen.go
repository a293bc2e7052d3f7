package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/katalvlaran/reconf/builder"
	"github.com/katalvlaran/reconf/dimacs"
)

func cmdGen(args []string) (int, error) {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	topology := fs.String("topology", "", "graph description, e.g. grid:4x4 or complete:3+cycle:4")
	k := fs.Int("k", 2, "tokens per configuration")
	seed := fs.Int64("seed", 0, "random seed (0 uses the clock)")
	out := fs.String("out", "", "output prefix; writes PREFIX.col and PREFIX.dat")
	if err := fs.Parse(args); err != nil {
		return exitUsage, err
	}
	if *topology == "" || *out == "" {
		fs.Usage()
		return exitUsage, errUsage
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := generate(*topology, *k, *seed, *out); err != nil {
		return exitFailure, err
	}
	fmt.Fprintf(os.Stderr, "wrote %s%s and %s%s (seed %d)\n", *out, extCol, *out, extDat, *seed)

	return exitOK, nil
}

// generate builds the described graph, samples a start and target of k
// tokens and writes both files under prefix.
func generate(topology string, k int, seed int64, prefix string) error {
	cons, err := parseTopology(topology)
	if err != nil {
		return err
	}
	opts := []builder.BuilderOption{builder.WithSeed(seed)}

	g, err := builder.BuildGraph(opts, cons...)
	if err != nil {
		return err
	}
	start, target, err := builder.RandomInstance(g, k, opts...)
	if err != nil {
		return err
	}

	if err := writeFile(prefix+extCol, func(w io.Writer) error { return dimacs.WriteCol(w, g) }); err != nil {
		return err
	}

	return writeFile(prefix+extDat, func(w io.Writer) error { return dimacs.WriteDat(w, start, target) })
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
