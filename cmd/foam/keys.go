package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: keys requires a route ('.' for the top level)", cli.ErrUsage)
	}
	route := normRoute(args[0])
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		f, err := loadArg(cc, file)
		if err != nil {
			return err
		}
		ks := f.Keys(route)
		if ks == nil {
			return fmt.Errorf("%s: no block at %q", file, route)
		}
		for _, k := range ks {
			fmt.Fprintln(cc.Out, k)
		}
	}
	return nil
}
