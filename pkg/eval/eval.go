// Package eval drives lambda.Reduce to a normal form. The core reducer takes
// exactly one step per call; this package owns the loop, the step limit,
// budgets, cancellation and statistics.
package eval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/vic/golam/pkg/lambda"
)

var (
	ErrStepLimit      = errors.New("step limit reached")
	ErrBudgetExceeded = errors.New("budget exceeded")
)

// Outcome classifies how an evaluation ended.
type Outcome int

const (
	// OutcomeValue means the term reached an abstraction.
	OutcomeValue Outcome = iota
	// OutcomeStuck means no step applies but the term is not a value,
	// e.g. a free variable in function position.
	OutcomeStuck
	// OutcomeHalted means evaluation was stopped before a normal form.
	OutcomeHalted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeValue:
		return "value"
	case OutcomeStuck:
		return "stuck"
	case OutcomeHalted:
		return "halted"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Stats holds reduction statistics.
type Stats struct {
	Steps     uint64
	PeakSize  int
	PeakDepth int
	Elapsed   time.Duration
}

// Result is the last term an evaluation produced.
type Result struct {
	Term    lambda.Term
	Outcome Outcome
	Stats   Stats
}

// Observer is called with the initial term (step 0) and after every step.
type Observer func(step uint64, t lambda.Term)

type Option func(*Evaluator)

// WithMaxSteps bounds the number of steps Run takes; 0 means unbounded.
func WithMaxSteps(n uint64) Option {
	return func(e *Evaluator) { e.maxSteps = n }
}

// WithBudget stops evaluation as soon as b no longer holds.
func WithBudget(b *Budget) Option {
	return func(e *Evaluator) { e.budget = b }
}

// WithTrace keeps the last capacity terms of each run.
func WithTrace(capacity int) Option {
	return func(e *Evaluator) { e.EnableTrace(capacity) }
}

func WithLogger(l *slog.Logger) Option {
	return func(e *Evaluator) { e.logger = l }
}

func WithObserver(fn Observer) Option {
	return func(e *Evaluator) { e.observer = fn }
}

// Evaluator repeatedly reduces a term. It is not safe for concurrent use;
// create one per goroutine.
type Evaluator struct {
	maxSteps uint64
	budget   *Budget
	logger   *slog.Logger
	observer Observer
	trace    *traceRing
	stats    Stats
}

func New(opts ...Option) *Evaluator {
	e := &Evaluator{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run reduces t until no step applies. When a step limit, budget or ctx
// stops it first, Run returns the term reached so far together with an
// error wrapping ErrStepLimit, ErrBudgetExceeded or ctx.Err().
func (e *Evaluator) Run(ctx context.Context, t lambda.Term) (*Result, error) {
	start := time.Now()
	e.stats = Stats{}
	if e.trace != nil {
		e.trace.reset()
	}
	e.logger.Debug("evaluating", "term", t)

	cur := t
	if err := e.observe(cur); err != nil {
		return e.result(cur, OutcomeHalted, start), err
	}
	for {
		if err := ctx.Err(); err != nil {
			return e.result(cur, OutcomeHalted, start), fmt.Errorf("evaluation cancelled after %d steps: %w", e.stats.Steps, err)
		}
		next, ok := lambda.Reduce(cur)
		if !ok {
			outcome := OutcomeStuck
			if lambda.IsValue(cur) {
				outcome = OutcomeValue
			}
			res := e.result(cur, outcome, start)
			e.logger.Info("normal form", "outcome", outcome, "steps", res.Stats.Steps, "elapsed", res.Stats.Elapsed)
			return res, nil
		}
		if e.maxSteps > 0 && e.stats.Steps >= e.maxSteps {
			return e.result(cur, OutcomeHalted, start), fmt.Errorf("%w: %d steps", ErrStepLimit, e.maxSteps)
		}
		cur = next
		e.stats.Steps++
		if err := e.observe(cur); err != nil {
			return e.result(cur, OutcomeHalted, start), err
		}
	}
}

// observe records statistics for the current term and checks the budget.
func (e *Evaluator) observe(t lambda.Term) error {
	size, depth := lambda.Size(t), lambda.Depth(t)
	e.stats.PeakSize = max(e.stats.PeakSize, size)
	e.stats.PeakDepth = max(e.stats.PeakDepth, depth)
	if e.trace != nil {
		e.trace.record(TraceEvent{Step: e.stats.Steps, Term: t, Size: size})
	}
	if e.stats.Steps > 0 {
		e.logger.Debug("step", "n", e.stats.Steps, "size", size, "depth", depth)
	}
	if e.observer != nil {
		e.observer(e.stats.Steps, t)
	}
	if e.budget == nil {
		return nil
	}
	ok, err := e.budget.Allow(BudgetEnv{Steps: e.stats.Steps, Size: size, Depth: depth})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %s (steps=%d size=%d depth=%d)", ErrBudgetExceeded, e.budget, e.stats.Steps, size, depth)
	}
	return nil
}

func (e *Evaluator) result(t lambda.Term, o Outcome, start time.Time) *Result {
	e.stats.Elapsed = time.Since(start)
	return &Result{Term: t, Outcome: o, Stats: e.stats}
}

// GetStats returns the statistics of the most recent run.
func (e *Evaluator) GetStats() Stats {
	return e.stats
}
