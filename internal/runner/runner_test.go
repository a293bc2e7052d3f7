package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reconf/builder"
	"github.com/katalvlaran/reconf/core"
	"github.com/katalvlaran/reconf/dimacs"
	"github.com/katalvlaran/reconf/idastar"
	"github.com/katalvlaran/reconf/internal/config"
	"github.com/katalvlaran/reconf/internal/metrics"
	"github.com/katalvlaran/reconf/internal/runner"
)

func testConfig(timeout time.Duration) *config.Config {
	return &config.Config{
		Timeout:         timeout,
		Workers:         2,
		LogLevel:        "debug",
		LogFormat:       "json",
		Verify:          true,
		VerifyMaxStates: 10000,
	}
}

func mustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, cons...)
	require.NoError(t, err)
	return g
}

func TestRun_Outcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	r := runner.New(testConfig(time.Second), zerolog.Nop(), m)

	star := mustBuild(t, builder.Star(5))
	frozen := mustBuild(t, builder.Cycle(4))

	yes := r.Run(context.Background(), runner.Job{Name: "star", Graph: star, Start: []int{1, 2}, Target: []int{3, 4}})
	assert.Equal(t, runner.OutcomeYes, yes.Outcome)
	assert.NoError(t, yes.Err)
	assert.Equal(t, idastar.AnswerYes, yes.Output.Answer)
	require.NotNil(t, yes.Verification)
	assert.True(t, yes.Verification.Complete)
	assert.True(t, yes.Verification.Agrees)
	assert.Equal(t, 2, yes.Verification.Distance)

	no := r.Run(context.Background(), runner.Job{Name: "c4", Graph: frozen, Start: []int{0, 2}, Target: []int{1, 3}})
	assert.Equal(t, runner.OutcomeNo, no.Outcome)
	assert.Equal(t, idastar.AnswerNo, no.Output.Answer)
	require.NotNil(t, no.Verification)
	assert.True(t, no.Verification.Agrees)

	bad := r.Run(context.Background(), runner.Job{Name: "bad", Graph: frozen, Start: []int{0, 1}, Target: []int{1, 3}})
	assert.Equal(t, runner.OutcomeInvalid, bad.Outcome)
	assert.ErrorIs(t, bad.Err, idastar.ErrNotIndependent)
	assert.Nil(t, bad.Verification)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues("yes")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues("no")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SolvesTotal.WithLabelValues("invalid")))
}

func TestRun_TimeoutIsIndeterminate(t *testing.T) {
	r := runner.New(testConfig(30*time.Millisecond), zerolog.Nop(), nil)

	// A token circling the triangle keeps IDA* escalating forever; the
	// target pattern on the 4-cycle is unreachable.
	g := mustBuild(t, builder.Complete(3), builder.Cycle(4))
	rep := r.Run(context.Background(), runner.Job{Name: "loop", Graph: g, Start: []int{0, 3, 5}, Target: []int{0, 4, 6}})

	assert.Equal(t, runner.OutcomeIndeterminate, rep.Outcome)
	assert.ErrorIs(t, rep.Err, context.DeadlineExceeded)
	assert.Empty(t, rep.Output.Answer)
	assert.Nil(t, rep.Verification)
}

func TestRun_LoadErrorIsInvalid(t *testing.T) {
	r := runner.New(testConfig(time.Second), zerolog.Nop(), nil)

	job := runner.LoadJob(filepath.Join(t.TempDir(), "missing.col"), "missing.dat")
	require.Error(t, job.LoadErr)

	rep := r.Run(context.Background(), job)
	assert.Equal(t, runner.OutcomeInvalid, rep.Outcome)
	assert.ErrorIs(t, rep.Err, os.ErrNotExist)
}

func TestLoadJob_FromFiles(t *testing.T) {
	dir := t.TempDir()
	colPath := filepath.Join(dir, "p3.col")
	datPath := filepath.Join(dir, "p3_01.dat")
	require.NoError(t, os.WriteFile(colPath, []byte("c path\np edge 3 3\ne 1 2\ne 2 3\ne 3 7\n"), 0o600))
	require.NoError(t, os.WriteFile(datPath, []byte("s 1\nt 3\n"), 0o600))

	job := runner.LoadJob(colPath, datPath)
	require.NoError(t, job.LoadErr)
	assert.Equal(t, filepath.Base(dir)+"/p3_01", job.Name)
	assert.Equal(t, 1, job.SkippedEdges)
	assert.Equal(t, []int{0}, job.Start)
	assert.Equal(t, []int{2}, job.Target)

	rep := runner.New(testConfig(time.Second), zerolog.Nop(), nil).Run(context.Background(), job)
	assert.Equal(t, runner.OutcomeYes, rep.Outcome)
	assert.Equal(t, [][]int{{1}, {3}}, rep.Output.Steps)
}

func TestLoadJob_ParseError(t *testing.T) {
	dir := t.TempDir()
	colPath := filepath.Join(dir, "g.col")
	datPath := filepath.Join(dir, "g.dat")
	require.NoError(t, os.WriteFile(colPath, []byte("p edge 3 0\n"), 0o600))
	require.NoError(t, os.WriteFile(datPath, []byte("s 1\n"), 0o600))

	job := runner.LoadJob(colPath, datPath)
	assert.ErrorIs(t, job.LoadErr, dimacs.ErrMissingTarget)
}

func TestRunBatch_PreservesOrder(t *testing.T) {
	r := runner.New(testConfig(time.Second), zerolog.Nop(), nil)

	g := mustBuild(t, builder.Grid(3, 3))
	var jobs []runner.Job
	for seed := int64(0); seed < 8; seed++ {
		s, tg, err := builder.RandomInstance(g, 2, builder.WithSeed(seed))
		require.NoError(t, err)
		jobs = append(jobs, runner.Job{
			Name:   string(rune('a' + seed)),
			Graph:  g,
			Start:  s.Members(),
			Target: tg.Members(),
		})
	}

	reports, err := r.RunBatch(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, reports, len(jobs))
	for i, rep := range reports {
		assert.Equal(t, jobs[i].Name, rep.Job)
		// Two tokens on a 3x3 grid always reach each other.
		assert.Equal(t, runner.OutcomeYes, rep.Outcome, rep.Job)
		require.NotNil(t, rep.Verification)
		assert.True(t, rep.Verification.Agrees, rep.Job)
	}
}

func TestRunBatch_CancelledParent(t *testing.T) {
	r := runner.New(testConfig(time.Second), zerolog.Nop(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g := mustBuild(t, builder.Complete(3), builder.Cycle(4))
	reports, err := r.RunBatch(ctx, []runner.Job{{Name: "loop", Graph: g, Start: []int{0, 3, 5}, Target: []int{0, 4, 6}}})
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, reports, 1)
	assert.Equal(t, runner.OutcomeIndeterminate, reports[0].Outcome)
}
