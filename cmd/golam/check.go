package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/vic/golam/pkg/eval"
	"github.com/vic/golam/pkg/render"
	"github.com/vic/golam/pkg/suite"
)

func (cfg *CheckConfig) run(cc *cli.Context, args []string) error {
	args, err := cfg.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check needs at least one suite file", cli.ErrUsage)
	}
	ctx, cancel := interruptible()
	defer cancel()
	return runCheck(ctx, cfg, cc.Out, os.Stderr, args)
}

func runCheck(ctx context.Context, cfg *CheckConfig, out, errOut io.Writer, files []string) error {
	colors := cfg.colors(out)
	logger := newLogger(errOut, cfg.Verbose)

	total, failed := 0, 0
	for _, file := range files {
		s, err := suite.LoadFile(file)
		if err != nil {
			return err
		}
		results := s.Run(ctx, eval.WithLogger(logger.With("suite", file)))
		for _, r := range results {
			if r.Pass {
				if !cfg.Quiet {
					fmt.Fprintf(out, "%s %s\n", colors.Color(render.PassColor, "PASS"), r.Case.Name)
				}
				continue
			}
			fmt.Fprintf(out, "%s %s: %s\n", colors.Color(render.FailColor, "FAIL"), r.Case.Name, r.Reason)
		}
		p, f := suite.Summarize(results)
		fmt.Fprintf(out, "%s: %d passed, %d failed\n", file, p, f)
		total += p + f
		failed += f
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d cases failed", failed, total)
	}
	return nil
}
