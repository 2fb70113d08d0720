package lambda

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

type TokenType int

const (
	TokenEOF TokenType = iota
	TokenIdent
	TokenColon
	TokenEqual
	TokenSemicolon
	TokenLParen
	TokenRParen
	TokenLet
	TokenIn
	TokenLambda
	TokenDot
)

var tokenNames = [...]string{
	TokenEOF:       "end of input",
	TokenIdent:     "identifier",
	TokenColon:     "':'",
	TokenEqual:     "'='",
	TokenSemicolon: "';'",
	TokenLParen:    "'('",
	TokenRParen:    "')'",
	TokenLet:       "'let'",
	TokenIn:        "'in'",
	TokenLambda:    "lambda",
	TokenDot:       "'.'",
}

func (t TokenType) String() string {
	if int(t) < len(tokenNames) {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

type Token struct {
	Type    TokenType
	Literal string
	Pos     int
}

func (t Token) String() string {
	if t.Type == TokenIdent {
		return fmt.Sprintf("identifier %q", t.Literal)
	}
	return t.Type.String()
}

// ErrSyntax is wrapped by every error Parse returns.
var ErrSyntax = errors.New("syntax error")

// SyntaxError describes malformed input. Pos is a byte offset into the
// source.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }

type Parser struct {
	input   string
	pos     int
	current Token
}

func NewParser(input string) *Parser {
	p := &Parser{input: input}
	p.next()
	return p
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: p.current.Pos, Msg: fmt.Sprintf(format, args...)}
}

func (p *Parser) next() {
	p.skipSpaceAndComments()
	start := p.pos
	if p.pos >= len(p.input) {
		p.current = Token{Type: TokenEOF, Pos: start}
		return
	}

	ch := p.input[p.pos]
	switch {
	case isLetter(ch):
		for p.pos < len(p.input) && (isLetter(p.input[p.pos]) || isDigit(p.input[p.pos])) {
			p.pos++
		}
		lit := p.input[start:p.pos]
		switch lit {
		case "let":
			p.current = Token{Type: TokenLet, Literal: lit, Pos: start}
		case "in":
			p.current = Token{Type: TokenIn, Literal: lit, Pos: start}
		default:
			p.current = Token{Type: TokenIdent, Literal: lit, Pos: start}
		}
	case ch == '\\':
		p.current = Token{Type: TokenLambda, Literal: `\`, Pos: start}
		p.pos++
	case strings.HasPrefix(p.input[p.pos:], "λ"):
		p.current = Token{Type: TokenLambda, Literal: "λ", Pos: start}
		p.pos += len("λ")
	case ch == '.':
		p.current = Token{Type: TokenDot, Literal: ".", Pos: start}
		p.pos++
	case ch == ':':
		p.current = Token{Type: TokenColon, Literal: ":", Pos: start}
		p.pos++
	case ch == '=':
		p.current = Token{Type: TokenEqual, Literal: "=", Pos: start}
		p.pos++
	case ch == ';':
		p.current = Token{Type: TokenSemicolon, Literal: ";", Pos: start}
		p.pos++
	case ch == '(':
		p.current = Token{Type: TokenLParen, Literal: "(", Pos: start}
		p.pos++
	case ch == ')':
		p.current = Token{Type: TokenRParen, Literal: ")", Pos: start}
		p.pos++
	default:
		// Any other symbol (e.g. +) is a one-rune identifier.
		_, size := utf8.DecodeRuneInString(p.input[p.pos:])
		p.pos += size
		p.current = Token{Type: TokenIdent, Literal: p.input[start:p.pos], Pos: start}
	}
}

func (p *Parser) skipSpaceAndComments() {
	for p.pos < len(p.input) {
		r, size := utf8.DecodeRuneInString(p.input[p.pos:])
		switch {
		case unicode.IsSpace(r):
			p.pos += size
		case r == '#':
			for p.pos < len(p.input) && p.input[p.pos] != '\n' {
				p.pos++
			}
		default:
			return
		}
	}
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// Parse reads exactly one term; trailing input is an error.
func (p *Parser) Parse() (Term, error) {
	term, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEOF {
		return nil, p.errorf("unexpected %s after term", p.current)
	}
	return term, nil
}

// Term ::= Let | Lambda | Ident ':' Term | App
func (p *Parser) parseTerm() (Term, error) {
	switch p.current.Type {
	case TokenLet:
		return p.parseLet()
	case TokenLambda:
		return p.parseLambda()
	}

	if abs, ok, err := p.tryColonAbs(); ok || err != nil {
		return abs, err
	}
	return p.parseApp()
}

// tryColonAbs parses `x: body` when the current identifier is followed by a
// colon, and otherwise backtracks.
func (p *Parser) tryColonAbs() (Term, bool, error) {
	if p.current.Type != TokenIdent {
		return nil, false, nil
	}
	savePos := p.pos
	saveTok := p.current

	p.next()
	if p.current.Type != TokenColon {
		p.pos = savePos
		p.current = saveTok
		return nil, false, nil
	}
	p.next() // consume colon
	body, err := p.parseTerm()
	if err != nil {
		return nil, true, err
	}
	return Abs{Arg: saveTok.Literal, Body: body}, true, nil
}

// Lambda ::= ('\' | 'λ') Ident+ '.' Term
func (p *Parser) parseLambda() (Term, error) {
	p.next() // consume lambda
	var args []string
	for p.current.Type == TokenIdent {
		args = append(args, p.current.Literal)
		p.next()
	}
	if len(args) == 0 {
		return nil, p.errorf("expected identifier after lambda, got %s", p.current)
	}
	if p.current.Type != TokenDot {
		return nil, p.errorf("expected '.' after lambda parameters, got %s", p.current)
	}
	p.next()

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	term := body
	for i := len(args) - 1; i >= 0; i-- {
		term = Abs{Arg: args[i], Body: term}
	}
	return term, nil
}

// App ::= Atom { Atom } [ Lambda | Let ]
//
// A lambda or let in argument position extends as far right as possible,
// so `f x: x y` parses as `f (x: (x y))`.
func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseAtom()
	if err != nil {
		return nil, err
	}

	for {
		switch p.current.Type {
		case TokenEOF, TokenRParen, TokenSemicolon, TokenIn:
			return left, nil
		case TokenLambda, TokenLet:
			arg, err := p.parseTerm()
			if err != nil {
				return nil, err
			}
			return App{Fun: left, Arg: arg}, nil
		}

		if abs, ok, err := p.tryColonAbs(); err != nil {
			return nil, err
		} else if ok {
			return App{Fun: left, Arg: abs}, nil
		}

		right, err := p.parseAtom()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
}

// Atom ::= Ident | '(' Term ')'
func (p *Parser) parseAtom() (Term, error) {
	switch p.current.Type {
	case TokenIdent:
		name := p.current.Literal
		p.next()
		return Var{Name: name}, nil
	case TokenLParen:
		p.next()
		term, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, p.errorf("expected ')', got %s", p.current)
		}
		p.next()
		return term, nil
	default:
		return nil, p.errorf("unexpected %s", p.current)
	}
}

// Let ::= 'let' { Ident '=' Term ';' } 'in' Term
//
// let x = M; y = N; in B desugars to (x: (y: B) N) M.
func (p *Parser) parseLet() (Term, error) {
	p.next() // consume 'let'

	type binding struct {
		name string
		val  Term
	}
	var bindings []binding

	for {
		if p.current.Type != TokenIdent {
			return nil, p.errorf("expected identifier in let binding, got %s", p.current)
		}
		name := p.current.Literal
		p.next()

		if p.current.Type != TokenEqual {
			return nil, p.errorf("expected '=', got %s", p.current)
		}
		p.next()

		val, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, binding{name, val})

		if p.current.Type == TokenSemicolon {
			p.next()
			if p.current.Type == TokenIn {
				p.next()
				break
			}
		} else if p.current.Type == TokenIn {
			p.next()
			break
		} else {
			return nil, p.errorf("expected ';' or 'in', got %s", p.current)
		}
	}

	body, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	term := body
	for i := len(bindings) - 1; i >= 0; i-- {
		b := bindings[i]
		term = App{
			Fun: Abs{Arg: b.name, Body: term},
			Arg: b.val,
		}
	}
	return term, nil
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	p := NewParser(input)
	return p.Parse()
}

// MustParse is like Parse but panics on malformed input. It is meant for
// terms written into source code.
func MustParse(input string) Term {
	t, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}
