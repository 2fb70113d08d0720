package main

import (
	"github.com/scott-cotton/cli"
)

const description = `golam evaluates untyped lambda calculus terms by call-by-value,
left-to-right small-step reduction.

Terms are written x: body, \x. body or λx. body; application is
juxtaposition; let x = M; in B binds x to M in B; # starts a comment.`

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "golam").
		WithSynopsis("golam [opts] command [opts]").
		WithDescription(description).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return golamMain(cfg, cc, args)
		}).
		WithSubs(
			EvalCommand(cfg),
			StepCommand(cfg),
			CheckCommand(cfg))
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "eval").
		WithAliases("e").
		WithSynopsis("eval [-max-steps n] [-budget expr] [-stats] [-gops] [file|-]").
		WithDescription("Reduce a term to its normal form and print it.").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func StepCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StepConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "step").
		WithAliases("s").
		WithSynopsis("step [-max-steps n] [-diff] [file|-]").
		WithDescription("Print every term in the reduction sequence.").
		WithOpts(opts...).
		WithRun(cfg.run)
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "check").
		WithSynopsis("check [-q] suite.yaml...").
		WithDescription("Run YAML suites of reduction cases.").
		WithOpts(opts...).
		WithRun(cfg.run)
}
