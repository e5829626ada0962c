package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
	"github.com/signadot/treeconv/convert"
	"github.com/signadot/treeconv/format"
)

type MainConfig struct {
	Check  bool `cli:"name=check desc='report lossy conversions on stderr'"`
	Color  bool `cli:"name=color desc='color error messages'"`
	Indent int  `cli:"name=indent desc='output indentation (default 4 for json, 2 otherwise)'"`

	InFormat, OutFormat *format.Format

	Convert *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) convertOpts(errOut io.Writer) []convert.Option {
	res := []convert.Option{convert.Indent(cfg.Indent)}
	if cfg.InFormat != nil {
		res = append(res, convert.InFormat(*cfg.InFormat))
	}
	if cfg.OutFormat != nil {
		res = append(res, convert.OutFormat(*cfg.OutFormat))
	}
	if cfg.Check {
		res = append(res, convert.CheckRoundTrip(errOut))
	}
	return res
}

func (cfg *MainConfig) errorPrefix(w io.Writer) string {
	const prefix = "Error:"
	if !cfg.useColor(w) {
		return prefix
	}
	c := color.New(color.FgRed, color.Bold)
	c.EnableColor()
	return c.Sprint(prefix)
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
