package suite

import (
	"context"
	"errors"
	"fmt"

	"github.com/vic/golam/pkg/eval"
	"github.com/vic/golam/pkg/lambda"
	"github.com/vic/golam/pkg/render"
)

type CaseResult struct {
	Case   *Case
	Pass   bool
	Reason string
	Result *eval.Result
	Err    error
}

// Run evaluates every case with an evaluator built from opts plus the
// case's step limit. Cases run in order; a cancelled ctx fails the rest.
func (s *Suite) Run(ctx context.Context, opts ...eval.Option) []CaseResult {
	results := make([]CaseResult, 0, len(s.Cases))
	for _, c := range s.Cases {
		if c.input == nil {
			if err := c.parse(); err != nil {
				results = append(results, CaseResult{Case: c, Reason: err.Error(), Err: err})
				continue
			}
		}
		ev := eval.New(append(opts[:len(opts):len(opts)], eval.WithMaxSteps(s.limit(c)))...)
		res, err := ev.Run(ctx, c.input)
		cr := CaseResult{Case: c, Result: res, Err: err}
		cr.Pass, cr.Reason = check(c, res, err)
		results = append(results, cr)
	}
	return results
}

func check(c *Case, res *eval.Result, err error) (bool, string) {
	if errors.Is(err, eval.ErrStepLimit) {
		if c.Outcome == ExpectDiverges {
			return true, ""
		}
		return false, fmt.Sprintf("no normal form within %d steps", res.Stats.Steps)
	}
	if err != nil {
		return false, err.Error()
	}
	if c.Outcome == ExpectDiverges {
		return false, fmt.Sprintf("reached %s %s after %d steps", res.Outcome, render.Plain(res.Term), res.Stats.Steps)
	}
	if c.Outcome != ExpectAny && string(c.Outcome) != res.Outcome.String() {
		return false, fmt.Sprintf("expected %s, got %s %s", c.Outcome, res.Outcome, render.Plain(res.Term))
	}
	if c.output != nil && !lambda.AlphaEqual(c.output, res.Term) {
		return false, fmt.Sprintf("expected %s, got %s", render.Plain(c.output), render.Plain(res.Term))
	}
	if c.Steps != nil && *c.Steps != res.Stats.Steps {
		return false, fmt.Sprintf("expected %d steps, took %d", *c.Steps, res.Stats.Steps)
	}
	return true, ""
}

// Summarize counts passing and failing results.
func Summarize(results []CaseResult) (passed, failed int) {
	for _, r := range results {
		if r.Pass {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}
