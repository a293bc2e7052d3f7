package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/reconf/internal/config"
	"github.com/katalvlaran/reconf/internal/runner"
)

const (
	extCol    = ".col"
	extDat    = ".dat"
	extAnswer = ".out"
)

var errNoGraph = errors.New("no matching .col file")

func cmdBatch(ctx context.Context, cfg *config.Config, args []string) (int, error) {
	fset := flag.NewFlagSet("batch", flag.ContinueOnError)
	dir := fset.String("dir", "", "directory searched recursively for .dat instances")
	outDir := fset.String("out", "", "directory for answer files (mirrors -dir)")
	fset.IntVar(&cfg.Workers, "workers", cfg.Workers, "instances solved concurrently")
	addRunFlags(fset, cfg)
	if err := fset.Parse(args); err != nil {
		return exitUsage, err
	}
	if *dir == "" {
		fset.Usage()
		return exitUsage, errUsage
	}

	pairs, err := findInstances(*dir)
	if err != nil {
		return exitFailure, err
	}

	r, log, shutdown, err := newRunner(cfg)
	if err != nil {
		return exitFailure, err
	}
	defer shutdown()

	jobs := make([]runner.Job, len(pairs))
	for i, p := range pairs {
		if p.col == "" {
			jobs[i] = runner.Job{Name: p.dat, LoadErr: fmt.Errorf("%s: %w", p.dat, errNoGraph)}
			continue
		}
		jobs[i] = runner.LoadJob(p.col, p.dat)
	}
	log.Info().Int("instances", len(jobs)).Int("workers", cfg.Workers).Msg("batch started")

	reports, runErr := r.RunBatch(ctx, jobs)

	code := exitOK
	for i, rep := range reports {
		if c := exitFor(rep.Outcome); c > code {
			code = c
		}
		if *outDir == "" {
			continue
		}
		path, err := answerPath(*dir, *outDir, pairs[i].dat)
		if err != nil {
			return exitFailure, err
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return exitFailure, err
		}
		if err := writeReport(rep, path, nil); err != nil {
			return exitFailure, err
		}
	}

	if err := writeSummary(os.Stdout, reports); err != nil {
		return exitFailure, err
	}

	return code, runErr
}

// instance pairs a .dat file with the graph it refers to. col is empty when
// no graph could be matched.
type instance struct {
	col string
	dat string
}

// findInstances walks root and pairs every .dat with its .col. Results are
// sorted by .dat path.
func findInstances(root string) ([]instance, error) {
	var dats []string
	cols := make(map[string][]string)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		switch filepath.Ext(path) {
		case extDat:
			dats = append(dats, path)
		case extCol:
			dir := filepath.Dir(path)
			cols[dir] = append(cols[dir], path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", root, err)
	}
	sort.Strings(dats)

	out := make([]instance, len(dats))
	for i, dat := range dats {
		out[i] = instance{col: matchCol(dat, cols[filepath.Dir(dat)]), dat: dat}
	}

	return out, nil
}

// matchCol picks the graph for dat among the .col files of its directory.
// "grid_3x3_07.dat" tries grid_3x3_07.col, grid_3x3.col, then grid.col; a
// directory with a single .col matches everything in it.
func matchCol(dat string, cols []string) string {
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c] = true
	}

	base := filepath.Base(dat)
	prefix := dat[:len(dat)-len(base)]
	stem := strings.TrimSuffix(base, extDat)
	for {
		if c := prefix + stem + extCol; have[c] {
			return c
		}
		i := strings.LastIndexAny(stem, "_-.")
		if i <= 0 {
			break
		}
		stem = stem[:i]
	}
	if len(cols) == 1 {
		return cols[0]
	}

	return ""
}

// answerPath maps dat under root onto an answer file under outDir.
func answerPath(root, outDir, dat string) (string, error) {
	rel, err := filepath.Rel(root, dat)
	if err != nil {
		return "", err
	}

	return filepath.Join(outDir, strings.TrimSuffix(rel, extDat)+extAnswer), nil
}

func writeSummary(w io.Writer, reports []runner.Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "INSTANCE\tOUTCOME\tMOVES\tDURATION")
	for _, rep := range reports {
		moves := "-"
		if rep.Outcome == runner.OutcomeYes {
			moves = fmt.Sprint(rep.Result.Length())
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rep.Job, rep.Outcome, moves, rep.Duration.Round(time.Millisecond))
	}

	return tw.Flush()
}
