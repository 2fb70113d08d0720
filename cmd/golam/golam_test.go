package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vic/golam/pkg/eval"
	"github.com/vic/golam/pkg/lambda"
)

func TestReadTerm(t *testing.T) {
	term, err := readTerm(strings.NewReader("(x: x) y"), nil)
	require.NoError(t, err)
	assert.Equal(t, lambda.MustParse("(x: x) y"), term)

	path := filepath.Join(t.TempDir(), "id.lam")
	require.NoError(t, os.WriteFile(path, []byte("# identity\n\\x. x\n"), 0644))
	term, err = readTerm(nil, []string{path})
	require.NoError(t, err)
	assert.Equal(t, lambda.MustParse("x: x"), term)

	_, err = readTerm(strings.NewReader("(x"), []string{"-"})
	require.ErrorIs(t, err, lambda.ErrSyntax)
	assert.Contains(t, err.Error(), "<stdin>")

	_, err = readTerm(nil, []string{filepath.Join(t.TempDir(), "missing.lam")})
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunEval(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := &EvalConfig{MainConfig: &MainConfig{}, Stats: true}
	err := runEval(context.Background(), cfg, &out, &errOut, lambda.MustParse("(x: x) (y: y)"))
	require.NoError(t, err)
	assert.Equal(t, "λy. y\n", out.String())
	assert.Contains(t, errOut.String(), "Total Reductions: 1")
	assert.Contains(t, errOut.String(), "Outcome: value")
}

func TestRunEvalStepLimit(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := &EvalConfig{MainConfig: &MainConfig{}, MaxSteps: 3}
	err := runEval(context.Background(), cfg, &out, &errOut, lambda.MustParse("(x: x x) (x: x x)"))
	require.ErrorIs(t, err, eval.ErrStepLimit)
	assert.Equal(t, "(λx. x x) (λx. x x)\n", out.String())
}

func TestRunEvalUsageErrors(t *testing.T) {
	var out, errOut bytes.Buffer
	term := lambda.MustParse("x")

	cfg := &EvalConfig{MainConfig: &MainConfig{}, Budget: "steps +"}
	require.ErrorIs(t, runEval(context.Background(), cfg, &out, &errOut, term), cli.ErrUsage)

	cfg = &EvalConfig{MainConfig: &MainConfig{}, MaxSteps: -1}
	require.ErrorIs(t, runEval(context.Background(), cfg, &out, &errOut, term), cli.ErrUsage)
}

func TestRunEvalBudget(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := &EvalConfig{MainConfig: &MainConfig{}, Budget: "steps < 2"}
	err := runEval(context.Background(), cfg, &out, &errOut, lambda.MustParse("(x: x x) (x: x x)"))
	require.ErrorIs(t, err, eval.ErrBudgetExceeded)
}

func TestRunEvalVerbose(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := &EvalConfig{MainConfig: &MainConfig{Verbose: true}}
	require.NoError(t, runEval(context.Background(), cfg, &out, &errOut, lambda.MustParse("(x: x) (y: y)")))
	assert.Contains(t, errOut.String(), "level=DEBUG msg=step")
	assert.NotContains(t, errOut.String(), "time=")
	assert.Contains(t, errOut.String(), `msg="normal form"`)
	assert.NotContains(t, errOut.String(), "level=INFO")
}

func TestRunStep(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := &StepConfig{MainConfig: &MainConfig{}}
	err := runStep(context.Background(), cfg, &out, &errOut, lambda.MustParse("(x: x) ((y: y) (z: z))"))
	require.NoError(t, err)
	want := "" +
		"   0  (λx. x) ((λy. y) (λz. z))\n" +
		"   1  (λx. x) (λz. z)\n" +
		"   2  λz. z\n" +
		"-- value after 2 steps\n"
	assert.Equal(t, want, out.String())
}

func TestRunStepDiff(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := &StepConfig{MainConfig: &MainConfig{}, Diff: true, MaxSteps: 5}
	err := runStep(context.Background(), cfg, &out, &errOut, lambda.MustParse("(x: x) y"))
	require.NoError(t, err)
	assert.Equal(t, "   0  (λx. x) y\n-- stuck after 0 steps\n", out.String())

	out.Reset()
	err = runStep(context.Background(), cfg, &out, &errOut, lambda.MustParse("(x: x x) (x: x x)"))
	require.ErrorIs(t, err, eval.ErrStepLimit)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 7)
	// omega steps to itself, so every diff is empty of changes
	assert.Equal(t, "   1  (λx. x x) (λx. x x)", lines[1])
	assert.Equal(t, "-- halted after 5 steps", lines[6])
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, []byte(`
cases:
  - name: id_id
    input: "(x: x) (y: y)"
    output: "y: y"
    outcome: value
`), 0644))
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte(`
cases:
  - name: wrong
    input: "x"
    outcome: value
`), 0644))

	var out, errOut bytes.Buffer
	cfg := &CheckConfig{MainConfig: &MainConfig{}}
	require.NoError(t, runCheck(context.Background(), cfg, &out, &errOut, []string{good}))
	assert.Contains(t, out.String(), "PASS id_id")
	assert.Contains(t, out.String(), good+": 1 passed, 0 failed")

	out.Reset()
	cfg.Quiet = true
	err := runCheck(context.Background(), cfg, &out, &errOut, []string{good, bad})
	require.EqualError(t, err, "1 of 2 cases failed")
	assert.NotContains(t, out.String(), "PASS")
	assert.Contains(t, out.String(), "FAIL wrong: expected value, got stuck x")
}

func TestRunCheckBundledSuite(t *testing.T) {
	var out, errOut bytes.Buffer
	cfg := &CheckConfig{MainConfig: &MainConfig{}, Quiet: true}
	err := runCheck(context.Background(), cfg, &out, &errOut, []string{"../../pkg/suite/testdata/cbv.yaml"})
	require.NoError(t, err, out.String())
}

func TestColorsForced(t *testing.T) {
	cfg := &MainConfig{Color: true}
	assert.NotNil(t, cfg.colors(&bytes.Buffer{}))
	cfg.Color = false
	assert.Nil(t, cfg.colors(&bytes.Buffer{}))
}

func TestStartAgentFailureIsLogged(t *testing.T) {
	saved := listenAgent
	t.Cleanup(func() { listenAgent = saved })
	listenAgent = func(agent.Options) error { return errors.New("address in use") }

	var errOut bytes.Buffer
	stop := startAgent(newLogger(&errOut, false))
	require.NotNil(t, stop)
	stop()
	assert.Equal(t, "level=WARN msg=\"gops agent failed\" err=\"address in use\"\n", errOut.String())
}
