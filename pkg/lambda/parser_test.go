package lambda

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	id := lam("x", v("x"))
	tests := []struct {
		input string
		want  Term
	}{
		{"x", v("x")},
		{"x: x", id},
		{`\x. x`, id},
		{"λx. x", id},
		{"(x: x)", id},
		{"f a b", app(app(v("f"), v("a")), v("b"))},
		{"f (a b)", app(v("f"), app(v("a"), v("b")))},
		{`\x y. x`, lam("x", lam("y", v("x")))},
		{"x: y: x y", lam("x", lam("y", app(v("x"), v("y"))))},
		{"f x: x y", app(v("f"), lam("x", app(v("x"), v("y"))))},
		{`f \x. x`, app(v("f"), id)},
		{"(x: x) (y: y)", app(id, lam("y", v("y")))},
		{"let x = a; in x", app(id, v("a"))},
		{"let x = a in x", app(id, v("a"))},
		{"let x = a; y = b; in x y", app(lam("x", app(lam("y", app(v("x"), v("y"))), v("b"))), v("a"))},
		{"x1 x_2", app(v("x1"), v("x_2"))},
		{"+ a", app(v("+"), v("a"))},
		{"# identity\nx: x # trailing\n", id},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		pos   int
	}{
		{"", 0},
		{"(x: x", 5},
		{"x)", 1},
		{`\. x`, 1},
		{`\x x`, 4},
		{"let = a in x", 4},
		{"let x a in x", 6},
		{"let x = a x", 11},
		{"x .", 2},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", tt.input)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("Parse(%q) error %v does not wrap ErrSyntax", tt.input, err)
			}
			var serr *SyntaxError
			if !errors.As(err, &serr) {
				t.Fatalf("Parse(%q) error %T is not a *SyntaxError", tt.input, err)
			}
			if serr.Pos != tt.pos {
				t.Errorf("Parse(%q) error at %d, want %d (%v)", tt.input, serr.Pos, tt.pos, err)
			}
		})
	}
}

// TestStringRoundTrip: the printed form of a term parses back to the same
// term.
func TestStringRoundTrip(t *testing.T) {
	inputs := []string{
		"x",
		"x: x",
		"(x: x x) (x: x x)",
		"f (g x) y",
		"x: y: z: x z (y z)",
		"let i = x: x; in i i",
	}
	terms := make([]Term, 0, len(inputs)+1)
	for _, in := range inputs {
		terms = append(terms, MustParse(in))
	}
	// the step renames binder + so it does not capture the free +
	stepped, ok := Reduce(MustParse("(x: +: x) (y: +)"))
	if !ok {
		t.Fatal("expected a step")
	}
	terms = append(terms, stepped)

	for _, term := range terms {
		again, err := Parse(term.String())
		if err != nil {
			t.Fatalf("Parse(%q): %v", term.String(), err)
		}
		if diff := cmp.Diff(term, again); diff != "" {
			t.Errorf("%q round trip mismatch (-want +got):\n%s", term, diff)
		}
	}
}

func TestSizeAndDepth(t *testing.T) {
	term := MustParse("(x: x x) (y: y)")
	if got := Size(term); got != 7 {
		t.Errorf("Size(%v) = %d, want 7", term, got)
	}
	if got := Depth(term); got != 4 {
		t.Errorf("Depth(%v) = %d, want 4", term, got)
	}
}
