package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/vic/golam/pkg/eval"
	"github.com/vic/golam/pkg/lambda"
	"github.com/vic/golam/pkg/render"
)

func (cfg *StepConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: step takes at most one file", cli.ErrUsage)
	}
	term, err := readTerm(cc.In, args)
	if err != nil {
		return err
	}
	ctx, cancel := interruptible()
	defer cancel()
	return runStep(ctx, cfg, cc.Out, os.Stderr, term)
}

func runStep(ctx context.Context, cfg *StepConfig, out, errOut io.Writer, term lambda.Term) error {
	if cfg.MaxSteps < 0 {
		return fmt.Errorf("%w: -max-steps must not be negative", cli.ErrUsage)
	}
	colors := cfg.colors(out)
	printer := &render.Printer{Colors: colors}
	plain := &render.Printer{}

	var prev string
	show := func(step uint64, t lambda.Term) {
		cur := plain.Sprint(t)
		line := printer.Sprint(t)
		if cfg.Diff && step > 0 {
			line = render.Diff(prev, cur, colors)
		}
		prev = cur
		fmt.Fprintf(out, "%4d  %s\n", step, line)
	}

	ev := eval.New(
		eval.WithLogger(newLogger(errOut, cfg.Verbose)),
		eval.WithMaxSteps(uint64(cfg.MaxSteps)),
		eval.WithObserver(show),
	)
	res, err := ev.Run(ctx, term)
	fmt.Fprintf(out, "-- %s after %d steps\n", res.Outcome, res.Stats.Steps)
	return err
}
