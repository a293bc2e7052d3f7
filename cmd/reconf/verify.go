package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/reconf/bfs"
	"github.com/katalvlaran/reconf/bitset"
	"github.com/katalvlaran/reconf/dimacs"
	"github.com/katalvlaran/reconf/idastar"
	"github.com/katalvlaran/reconf/internal/config"
	"github.com/katalvlaran/reconf/internal/runner"
)

var (
	errAnswerInstance = errors.New("answer does not match instance")
	errAnswerVerdict  = errors.New("answer verdict contradicts oracle")
	errNotShortest    = errors.New("answer path is not shortest")
)

func cmdVerify(ctx context.Context, cfg *config.Config, args []string) (int, error) {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	colPath := fs.String("col", "", "graph file (.col)")
	datPath := fs.String("dat", "", "instance file (.dat)")
	answerPath := fs.String("answer", "", "answer file to check")
	oracle := fs.Bool("oracle", cfg.Verify, "also compare against breadth-first search")
	fs.IntVar(&cfg.VerifyMaxStates, "max-states", cfg.VerifyMaxStates, "oracle state limit")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "oracle time limit")
	if err := fs.Parse(args); err != nil {
		return exitUsage, err
	}
	if *colPath == "" || *datPath == "" || *answerPath == "" {
		fs.Usage()
		return exitUsage, errUsage
	}

	job := runner.LoadJob(*colPath, *datPath)
	if job.LoadErr != nil {
		return exitFailure, job.LoadErr
	}
	f, err := os.Open(*answerPath)
	if err != nil {
		return exitFailure, err
	}
	out, err := dimacs.ParseOutput(f)
	f.Close()
	if err != nil {
		return exitFailure, fmt.Errorf("%s: %w", *answerPath, err)
	}

	var opts []bfs.Option
	if *oracle {
		octx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
		opts = append(opts, bfs.WithContext(octx), bfs.WithMaxStates(cfg.VerifyMaxStates))
	}

	msg, err := checkAnswer(job, out, *oracle, opts...)
	if err != nil {
		return exitFailure, err
	}
	fmt.Fprintln(os.Stdout, "ok:", msg)

	return exitOK, nil
}

// checkAnswer validates out against job: the instance lines must match, a
// YES path must be legal and, with oracle set, the verdict and path length
// must agree with breadth-first search. The message summarizes what was
// established.
func checkAnswer(job runner.Job, out *idastar.Output, oracle bool, opts ...bfs.Option) (string, error) {
	n := job.Graph.Order()
	start, err := toSet(n, job.Start, 0)
	if err != nil {
		return "", err
	}
	target, err := toSet(n, job.Target, 0)
	if err != nil {
		return "", err
	}
	if err := sameSet(n, out.Start, start, "start"); err != nil {
		return "", err
	}
	if err := sameSet(n, out.Target, target, "target"); err != nil {
		return "", err
	}

	msg := idastar.AnswerNo
	if out.Answer == idastar.AnswerYes {
		path := make([]*bitset.Set, len(out.Steps))
		for i, step := range out.Steps {
			if path[i], err = toSet(n, step, 1); err != nil {
				return "", fmt.Errorf("step %d: %w", i, err)
			}
		}
		if err := idastar.CheckPath(job.Graph, start, target, path); err != nil {
			return "", err
		}
		msg = fmt.Sprintf("%s in %d moves", idastar.AnswerYes, len(path)-1)
	}
	if !oracle {
		return msg + ", oracle skipped", nil
	}

	shortest, reachable, err := bfs.ShortestPath(job.Graph, start, target, opts...)
	switch {
	case errors.Is(err, bfs.ErrStateLimit), errors.Is(err, context.DeadlineExceeded):
		return msg + ", oracle inconclusive", nil
	case err != nil:
		return "", err
	}

	yes := out.Answer == idastar.AnswerYes
	if reachable != yes {
		return "", fmt.Errorf("%w: answer %s, oracle reachable=%t", errAnswerVerdict, out.Answer, reachable)
	}
	if yes && len(out.Steps) != len(shortest) {
		return "", fmt.Errorf("%w: %d moves, oracle %d", errNotShortest, len(out.Steps)-1, len(shortest)-1)
	}

	return msg + ", oracle agrees", nil
}

func sameSet(n int, ids []int, want *bitset.Set, what string) error {
	got, err := toSet(n, ids, 1)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if !got.Equal(want) {
		return fmt.Errorf("%w: %s is %v, instance has %v", errAnswerInstance, what, ids, idastar.OneBased(want))
	}

	return nil
}

// toSet converts ids numbered from base into a Set over n vertices.
func toSet(n int, ids []int, base int) (*bitset.Set, error) {
	s := bitset.New(n)
	for _, id := range ids {
		v := id - base
		if v < 0 || v >= n {
			return nil, fmt.Errorf("vertex %d out of range %d..%d", id, base, n-1+base)
		}
		s.Set(v)
	}

	return s, nil
}
