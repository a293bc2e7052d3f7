package runner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/reconf/core"
	"github.com/katalvlaran/reconf/dimacs"
)

// Job is one instance to solve. Start and Target are 0-based vertex ids.
type Job struct {
	Name   string
	Graph  *core.Graph
	Start  []int
	Target []int

	// SkippedEdges counts .col edges dropped for out-of-range endpoints.
	SkippedEdges int

	// LoadErr marks a job whose input could not be read; Run reports it
	// as invalid without solving.
	LoadErr error
}

// LoadJob reads a .col graph and a .dat instance. Failures are recorded in
// Job.LoadErr rather than returned, so a batch keeps going.
func LoadJob(colPath, datPath string) Job {
	job := Job{Name: jobName(colPath, datPath)}

	col, err := readWith(colPath, dimacs.ParseCol)
	if err != nil {
		job.LoadErr = err
		return job
	}
	dat, err := readWith(datPath, dimacs.ParseDat)
	if err != nil {
		job.LoadErr = err
		return job
	}

	job.Graph, job.SkippedEdges = col.Graph()
	job.Start, job.Target = dat.Vertices()

	return job
}

// readWith opens path and hands it to parse, tagging errors with the path.
func readWith[T any](path string, parse func(io.Reader) (*T, error)) (*T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("runner: open: %w", err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("runner: %s: %w", path, err)
	}

	return v, nil
}

// jobName derives a label from the instance file, e.g. "grid/3x3_01".
func jobName(colPath, datPath string) string {
	base := strings.TrimSuffix(filepath.Base(datPath), filepath.Ext(datPath))
	dir := filepath.Base(filepath.Dir(colPath))

	return dir + "/" + base
}
