package render

import (
	"strings"

	"github.com/fatih/color"
)

type ColorAttr int

const (
	BinderColor ColorAttr = iota
	VarColor
	FreeVarColor
	PunctColor
	InsertColor
	DeleteColor
	PassColor
	FailColor
)

// Colors maps the syntactic role of a piece of output to a formatting
// function. A nil *Colors prints plain text.
type Colors struct {
	Default func(string, ...any) string
	Map     map[ColorAttr]func(string, ...any) string
}

// NewColors returns the default palette. Colours are emitted even when
// stdout is not a terminal; callers decide whether to use a palette at all.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[ColorAttr]func(string, ...any) string{
			BinderColor:  forced(color.RGB(196, 96, 16)),
			VarColor:     forced(color.RGB(128, 216, 236)),
			FreeVarColor: forced(color.New(color.FgMagenta, color.Bold)),
			PunctColor:   forced(color.RGB(96, 96, 96)),
			InsertColor:  forced(color.New(color.FgGreen, color.Bold)),
			DeleteColor:  forced(color.New(color.FgRed, color.CrossedOut)),
			PassColor:    forced(color.New(color.FgGreen)),
			FailColor:    forced(color.New(color.FgRed, color.Bold)),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func forced(c *color.Color) func(string, ...any) string {
	c.EnableColor()
	return c.SprintfFunc()
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(a ColorAttr, s string) string {
	return c.Get(a)(s)
}

func (c *Colors) Get(a ColorAttr) func(string, ...any) string {
	if c == nil {
		return colorDefault
	}
	f := c.Map[a]
	if f == nil {
		if c.Default == nil {
			return colorDefault
		}
		return c.Default
	}
	return f
}
