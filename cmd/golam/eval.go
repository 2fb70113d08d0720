package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/vic/golam/pkg/eval"
	"github.com/vic/golam/pkg/lambda"
)

func (cfg *EvalConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: eval takes at most one file", cli.ErrUsage)
	}
	if cfg.Gops {
		defer startAgent(newLogger(os.Stderr, cfg.Verbose))()
	}
	term, err := readTerm(cc.In, args)
	if err != nil {
		return err
	}
	ctx, cancel := interruptible()
	defer cancel()
	return runEval(ctx, cfg, cc.Out, os.Stderr, term)
}

var listenAgent = agent.Listen

// startAgent starts a gops agent and returns the func that stops it. A
// failure to listen is logged and evaluation goes ahead without one.
func startAgent(logger *slog.Logger) func() {
	if err := listenAgent(agent.Options{}); err != nil {
		logger.Warn("gops agent failed", "err", err)
		return func() {}
	}
	return agent.Close
}

func (cfg *EvalConfig) options(errOut io.Writer) ([]eval.Option, error) {
	if cfg.MaxSteps < 0 {
		return nil, fmt.Errorf("%w: -max-steps must not be negative", cli.ErrUsage)
	}
	opts := []eval.Option{
		eval.WithLogger(newLogger(errOut, cfg.Verbose)),
		eval.WithMaxSteps(uint64(cfg.MaxSteps)),
	}
	if cfg.Budget != "" {
		b, err := eval.CompileBudget(cfg.Budget)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		opts = append(opts, eval.WithBudget(b))
	}
	return opts, nil
}

// runEval prints the last term reached even when evaluation is cut short,
// then reports why.
func runEval(ctx context.Context, cfg *EvalConfig, out, errOut io.Writer, term lambda.Term) error {
	opts, err := cfg.options(errOut)
	if err != nil {
		return err
	}
	res, err := eval.New(opts...).Run(ctx, term)
	if res == nil {
		return err
	}
	fmt.Fprintln(out, cfg.printer(out).Sprint(res.Term))
	if cfg.Stats {
		printStats(errOut, res)
	}
	return err
}

func printStats(w io.Writer, res *eval.Result) {
	stats := res.Stats
	seconds := stats.Elapsed.Seconds()

	fmt.Fprintf(w, "\nStats:\n")
	fmt.Fprintf(w, "Outcome: %s\n", res.Outcome)
	fmt.Fprintf(w, "Time: %v\n", stats.Elapsed)
	fmt.Fprintf(w, "Total Reductions: %d", stats.Steps)
	if seconds > 0 {
		fmt.Fprintf(w, " (%.2f ops/sec)", float64(stats.Steps)/seconds)
	}
	fmt.Fprintf(w, "\n")
	fmt.Fprintf(w, "Peak Size:  %6d\n", stats.PeakSize)
	fmt.Fprintf(w, "Peak Depth: %6d\n", stats.PeakDepth)
}
