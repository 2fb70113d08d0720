// Package suite runs YAML files of reduction cases against the evaluator.
//
// A suite file looks like
//
//	max_steps: 1000
//	cases:
//	  - name: id_id
//	    input: "(x: x) (y: y)"
//	    output: "z: z"
//	    outcome: value
//	    steps: 1
//
// Outputs are compared up to the names of bound variables.
package suite

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/vic/golam/pkg/lambda"
)

// DefaultMaxSteps applies when neither the suite nor a case sets a limit.
const DefaultMaxSteps = 10000

var ErrInvalidSuite = errors.New("invalid suite")

// Expect names the outcome a case must end with.
type Expect string

const (
	// ExpectAny accepts any normal form, value or stuck.
	ExpectAny      Expect = ""
	ExpectValue    Expect = "value"
	ExpectStuck    Expect = "stuck"
	ExpectDiverges Expect = "diverges"
)

type Suite struct {
	MaxSteps uint64  `yaml:"max_steps,omitempty"`
	Cases    []*Case `yaml:"cases"`
}

type Case struct {
	Name     string  `yaml:"name"`
	Input    string  `yaml:"input"`
	Output   string  `yaml:"output,omitempty"`
	Outcome  Expect  `yaml:"outcome,omitempty"`
	Steps    *uint64 `yaml:"steps,omitempty"`
	MaxSteps uint64  `yaml:"max_steps,omitempty"`

	input  lambda.Term
	output lambda.Term
}

// Load decodes and validates a suite. Unknown keys are rejected.
func Load(r io.Reader) (*Suite, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading suite: %w", err)
	}
	s := &Suite{}
	if err := yaml.UnmarshalWithOptions(data, s, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSuite, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func LoadFile(path string) (*Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Write encodes s as YAML.
func Write(w io.Writer, s *Suite) error {
	return yaml.NewEncoder(w).Encode(s)
}

// Validate parses every case's terms and checks the case is
// self-consistent. Load calls it. Run parses the terms of cases that were
// never validated.
func (s *Suite) Validate() error {
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c == nil {
			return fmt.Errorf("%w: case %d is empty", ErrInvalidSuite, i)
		}
		if c.Name == "" {
			return fmt.Errorf("%w: case %d has no name", ErrInvalidSuite, i)
		}
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate case %q", ErrInvalidSuite, c.Name)
		}
		seen[c.Name] = true

		if err := c.parse(); err != nil {
			return err
		}

		switch c.Outcome {
		case ExpectAny, ExpectValue, ExpectStuck:
		case ExpectDiverges:
			if c.Output != "" || c.Steps != nil {
				return fmt.Errorf("%w: case %q diverges but sets output or steps", ErrInvalidSuite, c.Name)
			}
		default:
			return fmt.Errorf("%w: case %q has unknown outcome %q", ErrInvalidSuite, c.Name, c.Outcome)
		}
	}
	return nil
}

// parse fills in the parsed input and output terms of c.
func (c *Case) parse() error {
	in, err := lambda.Parse(c.Input)
	if err != nil {
		return fmt.Errorf("%w: case %q input: %w", ErrInvalidSuite, c.Name, err)
	}
	c.input = in
	c.output = nil
	if c.Output != "" {
		out, err := lambda.Parse(c.Output)
		if err != nil {
			return fmt.Errorf("%w: case %q output: %w", ErrInvalidSuite, c.Name, err)
		}
		c.output = out
	}
	return nil
}

// limit is the step limit in force for c.
func (s *Suite) limit(c *Case) uint64 {
	switch {
	case c.MaxSteps > 0:
		return c.MaxSteps
	case s.MaxSteps > 0:
		return s.MaxSteps
	}
	return DefaultMaxSteps
}
