package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/signadot/treeconv/convert"
)

func convertMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		cfg.Convert.Usage(cc, fmt.Errorf("%w: expected <input-path> <output-path>", cli.ErrUsage))
		return cli.ExitCodeErr(1)
	}
	if code := run(cfg, cc.Out, os.Stderr, args[0], args[1]); code != 0 {
		return cli.ExitCodeErr(code)
	}
	return nil
}

// run converts in to out, reporting on w and errW, and returns the exit code.
func run(cfg *MainConfig, w, errW io.Writer, in, out string) int {
	if err := convert.Convert(in, out, cfg.convertOpts(errW)...); err != nil {
		fmt.Fprintf(errW, "%s %v\n", cfg.errorPrefix(errW), err)
		return 1
	}
	fmt.Fprintf(w, "Converted %s to %s\n", in, out)
	return 0
}
