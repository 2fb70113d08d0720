package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/vic/golam/pkg/lambda"
)

// readTerm parses the term in the named file, or in r when no file or "-"
// is given.
func readTerm(r io.Reader, args []string) (lambda.Term, error) {
	var (
		name = "<stdin>"
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(r)
	} else {
		name = args[0]
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", name, err)
	}
	term, err := lambda.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return term, nil
}

// interruptible returns a context cancelled by ^C, so a diverging term can
// be stopped while still printing where it got to.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}
