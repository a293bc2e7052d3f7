// Package runner hosts solves: each job runs on its own goroutine under a
// deadline, results are classified into outcomes, logged and counted, and
// batches run with bounded concurrency.
package runner

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/reconf/idastar"
	"github.com/katalvlaran/reconf/internal/config"
	"github.com/katalvlaran/reconf/internal/metrics"
)

// Outcome classifies a finished job.
type Outcome string

const (
	OutcomeYes           Outcome = "yes"
	OutcomeNo            Outcome = "no"
	OutcomeInvalid       Outcome = "invalid"
	OutcomeIndeterminate Outcome = "indeterminate"
)

// Report is the result of one job.
type Report struct {
	Job      string
	Outcome  Outcome
	Result   *idastar.Result
	Output   idastar.Output
	Err      error
	Duration time.Duration

	// Verification is set when the config enables oracle checks.
	Verification *Verification
}

// solveFunc is the solver entry point; tests substitute it.
type solveFunc func(ctx context.Context, job Job) (*idastar.Result, error)

// Runner executes jobs with the configured deadline and concurrency.
type Runner struct {
	cfg     *config.Config
	log     zerolog.Logger
	metrics *metrics.Metrics
	solve   solveFunc
}

// New returns a Runner. m may be nil to disable metrics.
func New(cfg *config.Config, log zerolog.Logger, m *metrics.Metrics) *Runner {
	return &Runner{cfg: cfg, log: log, metrics: m, solve: solveIDAStar}
}

func solveIDAStar(ctx context.Context, job Job) (*idastar.Result, error) {
	return idastar.Solve(job.Graph, job.Start, job.Target, idastar.WithContext(ctx))
}

type solveResult struct {
	res *idastar.Result
	err error
}

// Run solves job on a separate goroutine and waits for it or the deadline.
// A job still running at the deadline is reported indeterminate; its
// goroutine observes the cancelled context and exits on its next poll.
func (r *Runner) Run(ctx context.Context, job Job) Report {
	started := time.Now()
	rep := Report{Job: job.Name}

	log := r.log.With().Str("job", job.Name).Logger()
	if job.SkippedEdges > 0 {
		log.Warn().Int("skipped_edges", job.SkippedEdges).Msg("edges with out-of-range endpoints ignored")
	}

	if job.LoadErr != nil {
		rep.Outcome, rep.Err = OutcomeInvalid, job.LoadErr
		r.finish(&rep, started, log)
		return rep
	}

	if job.Graph != nil {
		log.Debug().Int("vertices", job.Graph.Order()).Int("edges", job.Graph.Size()).
			Int("tokens", len(job.Start)).Msg("solve started")
	}

	solveCtx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	done := make(chan solveResult, 1)
	go func() {
		res, err := r.solve(solveCtx, job)
		done <- solveResult{res: res, err: err}
	}()

	select {
	case sr := <-done:
		rep.Result, rep.Err = sr.res, sr.err
		rep.Outcome = classify(sr.res, sr.err)
	case <-solveCtx.Done():
		rep.Outcome, rep.Err = OutcomeIndeterminate, solveCtx.Err()
	}

	if rep.Outcome == OutcomeYes || rep.Outcome == OutcomeNo {
		rep.Output = idastar.Format(rep.Result)
		if r.cfg.Verify {
			rep.Verification = r.verify(ctx, job, rep.Result)
		}
	}

	r.finish(&rep, started, log)

	return rep
}

// classify maps a solver return onto an Outcome.
func classify(res *idastar.Result, err error) Outcome {
	switch {
	case err == nil && res.Solvable:
		return OutcomeYes
	case err == nil:
		return OutcomeNo
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return OutcomeIndeterminate
	default:
		return OutcomeInvalid
	}
}

// finish stamps the duration, logs the report and records metrics.
func (r *Runner) finish(rep *Report, started time.Time, log zerolog.Logger) {
	rep.Duration = time.Since(started)

	ev := log.Info()
	if rep.Outcome == OutcomeInvalid {
		ev = log.Error().Err(rep.Err)
	} else if rep.Outcome == OutcomeIndeterminate {
		ev = log.Warn().Err(rep.Err)
	}
	ev = ev.Str("outcome", string(rep.Outcome)).Dur("duration", rep.Duration)
	if rep.Result != nil {
		ev = ev.Uint64("nodes", rep.Result.Stats.Nodes).
			Int("iterations", rep.Result.Stats.Iterations).
			Int("moves", rep.Result.Length())
	}
	if v := rep.Verification; v != nil {
		ev = ev.Bool("verified", v.Agrees).Bool("oracle_complete", v.Complete)
	}
	ev.Msg("solve finished")

	r.record(rep)
}

func (r *Runner) record(rep *Report) {
	if r.metrics == nil {
		return
	}
	r.metrics.SolvesTotal.WithLabelValues(string(rep.Outcome)).Inc()
	r.metrics.SolveDuration.Observe(rep.Duration.Seconds())
	if rep.Result == nil {
		return
	}
	r.metrics.SearchNodesTotal.Add(float64(rep.Result.Stats.Nodes))
	r.metrics.SearchIterations.Observe(float64(rep.Result.Stats.Iterations))
	if rep.Outcome == OutcomeYes {
		r.metrics.PathMoves.Observe(float64(rep.Result.Length()))
	}
}

// RunBatch runs jobs with at most cfg.Workers in flight. Reports keep the
// order of jobs. The error is non-nil only when ctx ends first.
func (r *Runner) RunBatch(ctx context.Context, jobs []Job) ([]Report, error) {
	reports := make([]Report, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)
	for i, job := range jobs {
		g.Go(func() error {
			reports[i] = r.Run(gctx, job)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return reports, err
	}

	return reports, ctx.Err()
}
