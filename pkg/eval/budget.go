package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// BudgetEnv is the environment a budget expression sees after each step.
type BudgetEnv struct {
	Steps uint64 `expr:"steps"`
	Size  int    `expr:"size"`
	Depth int    `expr:"depth"`
}

// Budget is a boolean expression over BudgetEnv, for instance
// `steps < 10000 && size < 1e6`. Evaluation continues while it holds.
type Budget struct {
	src     string
	program *vm.Program
}

func CompileBudget(src string) (*Budget, error) {
	program, err := expr.Compile(src, expr.Env(BudgetEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid budget %q: %w", src, err)
	}
	return &Budget{src: src, program: program}, nil
}

func (b *Budget) Allow(env BudgetEnv) (bool, error) {
	out, err := expr.Run(b.program, env)
	if err != nil {
		return false, fmt.Errorf("evaluating budget %q: %w", b.src, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

func (b *Budget) String() string { return b.src }
