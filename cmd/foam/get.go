package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/foam-tools/foamedit/encode"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires a route", cli.ErrUsage)
	}
	route := normRoute(args[0])
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	opts := cfg.encOpts(cc.Out)
	for _, file := range files {
		f, err := loadArg(cc, file)
		if err != nil {
			return err
		}
		v := f.Get(route)
		if v == nil {
			return fmt.Errorf("%s: route %q not found", file, route)
		}
		if err := encode.Encode(v, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}
