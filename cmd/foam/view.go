package main

import (
	"github.com/scott-cotton/cli"

	"github.com/foam-tools/foamedit/encode"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		cfg.View.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	for i, file := range args {
		f, err := loadArg(cc, file)
		if err != nil {
			return err
		}
		if i > 0 {
			cc.Out.Write([]byte("\n"))
		}
		if err := encode.Encode(f.Get(""), cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
