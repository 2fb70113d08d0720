// Command gentests writes the bundled call-by-value reduction suite.
//
//	go run ./cmd/gentests [path]
//
// The default path is pkg/suite/testdata/cbv.yaml.
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vic/golam/pkg/lambda"
	"github.com/vic/golam/pkg/suite"
)

type TestCase struct {
	Name    string
	Input   string
	Output  string
	Outcome suite.Expect
	Steps   int // -1 leaves the step count unchecked
}

const header = "# Code generated by cmd/gentests; DO NOT EDIT.\n"

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", "x: x", "y: y", suite.ExpectValue, 0},
		{"002_id_id", "(x: x) (y: y)", "z: z", suite.ExpectValue, 1},

		// K Combinator
		{"003_k_values", "(x: y: x) (a: a) (b: b)", "a: a", suite.ExpectValue, 2},
		{"004_k_second", "(x: y: y) (a: a) (b: b)", "b: b", suite.ExpectValue, 2},
		{"005_k_free_args", "(x: y: x) a b", "(x: y: x) a b", suite.ExpectStuck, 0},

		// Evaluation order
		{"010_arg_first", "(x: x) ((y: y) (z: z))", "z: z", suite.ExpectValue, 2},
		{"011_no_reduction_under_lambda", "x: (y: y) x", "x: (y: y) x", suite.ExpectValue, 0},
		{"012_self_app_id", "(x: x x) (y: y)", "y: y", suite.ExpectValue, 2},
		{"013_church_two_id", "(f: x: f (f x)) (y: y) (z: z)", "z: z", suite.ExpectValue, 4},

		// Logic
		{"020_not_true", "(b: b (x: y: y) (x: y: x)) (x: y: x)", "x: y: y", suite.ExpectValue, 3},
		{"021_and_true_false", "(p: q: p q p) (x: y: x) (x: y: y)", "x: y: y", suite.ExpectValue, 4},

		// Pairs
		{"030_pair_fst", "(p: p (x: y: x)) ((x: y: f: f x y) (a: a) (b: b))", "a: a", suite.ExpectValue, 6},

		// Let bindings
		{"040_let_free", "let x = a; in x", "(x: x) a", suite.ExpectStuck, 0},
		{"041_let_id", "let i = x: x; in i (a: a)", "a: a", suite.ExpectValue, 2},

		// Capture avoidance
		{"050_capture", "(x: y: x) (z: y)", "w: z: y", suite.ExpectValue, 1},

		// Stuck terms
		{"060_share_app", "(f: f (f x)) (y: y)", "(y: y) ((y: y) x)", suite.ExpectStuck, 1},
		{"061_stuck_arg", "(x: x) (y z)", "(x: x) (y z)", suite.ExpectStuck, 0},
		{"090_free_1", "x", "x", suite.ExpectStuck, 0},
		{"091_free_app", "x y", "x y", suite.ExpectStuck, 0},

		// Divergence
		{"100_omega", "(x: x x) (x: x x)", "", suite.ExpectDiverges, -1},
		{"101_diverging_arg", "(x: y: y) ((x: x x) (x: x x))", "", suite.ExpectDiverges, -1},
	}

	path := "pkg/suite/testdata/cbv.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	s := &suite.Suite{MaxSteps: 100}
	for _, tc := range tests {
		// Normalize Input and Output
		inTerm, err := lambda.Parse(tc.Input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing input for %s: %v\n", tc.Name, err)
			os.Exit(1)
		}
		c := &suite.Case{
			Name:    tc.Name,
			Input:   inTerm.String(),
			Outcome: tc.Outcome,
		}
		if tc.Output != "" {
			outTerm, err := lambda.Parse(tc.Output)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error parsing output for %s: %v\n", tc.Name, err)
				os.Exit(1)
			}
			c.Output = outTerm.String()
		}
		if tc.Steps >= 0 {
			steps := uint64(tc.Steps)
			c.Steps = &steps
		}
		s.Cases = append(s.Cases, c)
	}
	if err := s.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	if err := suite.Write(&buf, s); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding suite: %v\n", err)
		os.Exit(1)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}

	fmt.Printf("Generated %d tests\n", len(tests))
}
