// Package lambda implements the untyped lambda calculus under a small-step,
// call-by-value, left-to-right evaluation strategy.
//
// Terms are immutable trees. Subst, FreeVars and the printers recurse over
// the structure of a term, so their stack usage grows with term depth and a
// pathologically deep term exhausts the goroutine stack (a fatal error, not
// a recoverable one). Reduce walks the evaluation spine with an explicit
// stack and has no such limit of its own.
package lambda

import "fmt"

// Term represents a lambda calculus term. The only implementations are Var,
// Abs and App.
type Term interface {
	String() string
	term()
}

// Var represents a variable usage.
type Var struct {
	Name string
}

func (Var) term() {}

func (v Var) String() string {
	return v.Name
}

// Abs represents an abstraction (lambda).
type Abs struct {
	Arg  string
	Body Term
}

func (Abs) term() {}

func (a Abs) String() string {
	return fmt.Sprintf("(%s: %s)", a.Arg, a.Body)
}

// App represents an application.
type App struct {
	Fun Term
	Arg Term
}

func (App) term() {}

func (a App) String() string {
	return fmt.Sprintf("(%s %s)", a.Fun, a.Arg)
}

// Size returns the number of nodes in t.
func Size(t Term) int {
	switch v := t.(type) {
	case Abs:
		return 1 + Size(v.Body)
	case App:
		return 1 + Size(v.Fun) + Size(v.Arg)
	default:
		return 1
	}
}

// Depth returns the height of t; a variable has depth 1.
func Depth(t Term) int {
	switch v := t.(type) {
	case Abs:
		return 1 + Depth(v.Body)
	case App:
		return 1 + max(Depth(v.Fun), Depth(v.Arg))
	default:
		return 1
	}
}
