package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/foam-tools/foamedit"
)

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: rm requires a route and a file", cli.ErrUsage)
	}
	route := args[0]
	f, err := foamedit.Load(args[1])
	if err != nil {
		return err
	}
	if !f.Delete(route) {
		return fmt.Errorf("%s: route %q not found", args[1], route)
	}
	return writeBack(cfg.MainConfig, cc, f)
}
