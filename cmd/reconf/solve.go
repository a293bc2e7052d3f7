package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/reconf/dimacs"
	"github.com/katalvlaran/reconf/internal/config"
	"github.com/katalvlaran/reconf/internal/runner"
)

func cmdSolve(ctx context.Context, cfg *config.Config, args []string) (int, error) {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	colPath := fs.String("col", "", "graph file (.col)")
	datPath := fs.String("dat", "", "instance file (.dat)")
	outPath := fs.String("out", "", "answer file (default stdout)")
	addRunFlags(fs, cfg)
	if err := fs.Parse(args); err != nil {
		return exitUsage, err
	}
	if *colPath == "" || *datPath == "" {
		fs.Usage()
		return exitUsage, errUsage
	}

	r, _, shutdown, err := newRunner(cfg)
	if err != nil {
		return exitFailure, err
	}
	defer shutdown()

	rep := r.Run(ctx, runner.LoadJob(*colPath, *datPath))
	if err := writeReport(rep, *outPath, os.Stdout); err != nil {
		return exitFailure, err
	}

	return exitFor(rep.Outcome), rep.Err
}

// writeReport writes the answer of a YES/NO report to path, or to stdout
// when path is empty. Other outcomes produce no answer.
func writeReport(rep runner.Report, path string, stdout io.Writer) error {
	if rep.Outcome != runner.OutcomeYes && rep.Outcome != runner.OutcomeNo {
		return nil
	}
	if path == "" {
		return dimacs.WriteOutput(stdout, rep.Output)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create answer: %w", err)
	}
	if err := dimacs.WriteOutput(f, rep.Output); err != nil {
		f.Close()
		return fmt.Errorf("write answer: %w", err)
	}

	return f.Close()
}
