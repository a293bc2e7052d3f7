// Command reconf solves Independent Set Reconfiguration instances under the
// token jumping rule.
//
// Usage:
//
//	reconf solve  -col graph.col -dat instance.dat [-out answer.txt]
//	reconf batch  -dir instances/ [-out answers/]
//	reconf gen    -topology grid:4x4 -k 3 -seed 7 -out grid44
//	reconf verify -col graph.col -dat instance.dat -answer answer.txt
//
// Settings come from RECONF_* environment variables and an optional .env
// file; flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/katalvlaran/reconf/internal/config"
	"github.com/katalvlaran/reconf/internal/logging"
	"github.com/katalvlaran/reconf/internal/metrics"
	"github.com/katalvlaran/reconf/internal/runner"
)

// Exit codes.
const (
	exitOK            = 0
	exitFailure       = 1
	exitUsage         = 2
	exitIndeterminate = 3
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return exitUsage
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, "reconf:", err)
		return exitFailure
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var code int
	switch cmd, rest := args[0], args[1:]; cmd {
	case "solve":
		code, err = cmdSolve(ctx, cfg, rest)
	case "batch":
		code, err = cmdBatch(ctx, cfg, rest)
	case "gen":
		code, err = cmdGen(rest)
	case "verify":
		code, err = cmdVerify(ctx, cfg, rest)
	case "-h", "--help", "help":
		usage()
		return exitOK
	default:
		fmt.Fprintf(os.Stderr, "reconf: unknown command %q\n", cmd)
		usage()
		return exitUsage
	}

	if errors.Is(err, errUsage) || errors.Is(err, flag.ErrHelp) {
		return exitUsage
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "reconf:", err)
	}

	return code
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: reconf <command> [flags]

commands:
  solve   solve one .col/.dat instance and print the answer
  batch   solve every instance under a directory
  gen     generate a random instance
  verify  check an answer file against its instance
`)
}

// addRunFlags binds the flags shared by solve and batch onto cfg.
func addRunFlags(fs *flag.FlagSet, cfg *config.Config) {
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "per-instance time limit")
	fs.BoolVar(&cfg.Verify, "verify", cfg.Verify, "cross-check answers with the breadth-first oracle")
	fs.IntVar(&cfg.VerifyMaxStates, "verify-max-states", cfg.VerifyMaxStates, "oracle state limit")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console or json")
	fs.StringVar(&cfg.MetricsAddr, "metrics-addr", cfg.MetricsAddr, "serve Prometheus metrics on this address")
}

// newRunner builds the logger, the metrics registry and, when configured,
// the metrics endpoint. The returned func shuts the endpoint down.
func newRunner(cfg *config.Config) (*runner.Runner, zerolog.Logger, func(), error) {
	if err := config.Validate(cfg); err != nil {
		return nil, zerolog.Nop(), nil, err
	}
	log := logging.New(cfg)

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	shutdown := func() {}
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
		srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			log.Info().Str("address", cfg.MetricsAddr).Msg("starting metrics server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error().Err(err).Msg("metrics server failed")
			}
		}()
		shutdown = func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			_ = srv.Shutdown(ctx)
		}
	}

	return runner.New(cfg, log, m), log, shutdown, nil
}

// exitFor maps an outcome to the process exit code.
func exitFor(o runner.Outcome) int {
	switch o {
	case runner.OutcomeYes, runner.OutcomeNo:
		return exitOK
	case runner.OutcomeIndeterminate:
		return exitIndeterminate
	default:
		return exitFailure
	}
}
