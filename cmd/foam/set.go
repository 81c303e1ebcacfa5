package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/foam-tools/foamedit"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires a route, a value, and a file", cli.ErrUsage)
	}
	route := args[0]
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}
	f, err := foamedit.Load(args[2])
	if err != nil {
		return err
	}
	if !f.Set(route, v) {
		return fmt.Errorf("%s: cannot set %q", args[2], route)
	}
	return writeBack(cfg.MainConfig, cc, f)
}
