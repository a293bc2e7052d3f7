package runner

import (
	"context"
	"errors"

	"github.com/katalvlaran/reconf/bfs"
	"github.com/katalvlaran/reconf/idastar"
)

// Verification is the breadth-first cross-check of one answer.
type Verification struct {
	// Complete is false when the oracle hit VerifyMaxStates or the deadline;
	// only the returned path is checked then.
	Complete bool
	// Reachable and Distance are the oracle's verdict when Complete.
	Reachable bool
	Distance  int
	// Agrees is false when the answer is refuted.
	Agrees bool
	// Err explains a refutation or an oracle failure.
	Err error
}

// ErrVerifyMismatch is recorded when the oracle contradicts an answer.
var ErrVerifyMismatch = errors.New("runner: answer contradicts breadth-first oracle")

// verify checks res against exhaustive BFS, bounded by the configured state
// limit and timeout.
func (r *Runner) verify(ctx context.Context, job Job, res *idastar.Result) *Verification {
	v := &Verification{Distance: -1, Agrees: true}

	if res.Solvable {
		if err := idastar.CheckPath(job.Graph, res.Start, res.Target, res.Path); err != nil {
			v.Agrees, v.Err = false, err
			return v
		}
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.Timeout)
	defer cancel()

	path, reachable, err := bfs.ShortestPath(job.Graph, res.Start, res.Target,
		bfs.WithMaxStates(r.cfg.VerifyMaxStates), bfs.WithContext(ctx))
	switch {
	case errors.Is(err, bfs.ErrStateLimit), errors.Is(err, context.DeadlineExceeded):
		return v
	case err != nil:
		v.Err = err
		return v
	}

	v.Complete, v.Reachable = true, reachable
	if reachable {
		v.Distance = len(path) - 1
	}
	if reachable != res.Solvable || v.Distance != res.Length() {
		v.Agrees, v.Err = false, ErrVerifyMismatch
	}

	return v
}
