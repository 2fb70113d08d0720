// Package render formats lambda terms for people: minimal parentheses,
// optional colour, and character diffs between successive reduction steps.
package render

import (
	"strings"

	"github.com/vic/golam/pkg/lambda"
)

type position int

const (
	ctxTop position = iota // body of a lambda or the whole term
	ctxFun                 // function position of an application
	ctxArg                 // argument position of an application
)

// Printer writes terms in `λx y. body` notation. Applications are
// parenthesised only in argument position. An abstraction is wrapped
// unless it is the whole term or a lambda body, so a trailing argument
// prints as `f (λx. x)`.
type Printer struct {
	Colors *Colors
	// ASCII selects `\` instead of `λ`.
	ASCII bool
}

// Sprint renders t.
func (p *Printer) Sprint(t lambda.Term) string {
	var b strings.Builder
	p.write(&b, t, ctxTop, map[string]int{})
	return b.String()
}

func (p *Printer) write(b *strings.Builder, t lambda.Term, ctx position, bound map[string]int) {
	switch v := t.(type) {
	case lambda.Var:
		attr := FreeVarColor
		if bound[v.Name] > 0 {
			attr = VarColor
		}
		b.WriteString(p.Colors.Color(attr, v.Name))
	case lambda.Abs:
		if ctx != ctxTop {
			b.WriteString(p.Colors.Color(PunctColor, "("))
		}
		lam := "λ"
		if p.ASCII {
			lam = `\`
		}
		b.WriteString(p.Colors.Color(PunctColor, lam))
		var args []string
		var body lambda.Term = v
		for {
			abs, ok := body.(lambda.Abs)
			if !ok {
				break
			}
			if len(args) > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(p.Colors.Color(BinderColor, abs.Arg))
			bound[abs.Arg]++
			args = append(args, abs.Arg)
			body = abs.Body
		}
		b.WriteString(p.Colors.Color(PunctColor, "."))
		b.WriteByte(' ')
		p.write(b, body, ctxTop, bound)
		for _, arg := range args {
			bound[arg]--
		}
		if ctx != ctxTop {
			b.WriteString(p.Colors.Color(PunctColor, ")"))
		}
	case lambda.App:
		if ctx == ctxArg {
			b.WriteString(p.Colors.Color(PunctColor, "("))
		}
		p.write(b, v.Fun, ctxFun, bound)
		b.WriteByte(' ')
		p.write(b, v.Arg, ctxArg, bound)
		if ctx == ctxArg {
			b.WriteString(p.Colors.Color(PunctColor, ")"))
		}
	}
}

// Plain renders t without colour using ASCII lambdas.
func Plain(t lambda.Term) string {
	p := Printer{ASCII: true}
	return p.Sprint(t)
}
