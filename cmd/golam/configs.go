package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/vic/golam/pkg/render"
)

type MainConfig struct {
	Color   bool `cli:"name=color desc='colour output (default: when stdout is a terminal)'"`
	Verbose bool `cli:"name=v aliases=verbose desc='log every step to stderr'"`

	Main *cli.Command
}

type EvalConfig struct {
	*MainConfig
	*cli.Command

	MaxSteps int    `cli:"name=max-steps desc='stop after this many steps (0: no limit)'"`
	Budget   string `cli:"name=budget desc='keep going while this expression over steps, size and depth holds'"`
	Stats    bool   `cli:"name=stats desc='print statistics to stderr'"`
	Gops     bool   `cli:"name=gops desc='start a gops diagnostics agent'"`
}

type StepConfig struct {
	*MainConfig
	*cli.Command

	MaxSteps int  `cli:"name=max-steps desc='stop after this many steps (0: no limit)'"`
	Diff     bool `cli:"name=diff desc='show each step as a diff against the previous term'"`
}

type CheckConfig struct {
	*MainConfig
	*cli.Command

	Quiet bool `cli:"name=q aliases=quiet desc='only report failures'"`
}

// colors mirrors `o`: an explicit -color wins, otherwise colour is used
// when w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) *render.Colors {
	if cfg.Color {
		return render.NewColors()
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return nil
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return render.NewColors()
	}
	return nil
}

func (cfg *MainConfig) printer(w io.Writer) *render.Printer {
	return &render.Printer{Colors: cfg.colors(w)}
}
