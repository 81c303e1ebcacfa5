package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/foam-tools/foamedit"
)

func insert(cfg *InsertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Insert.Parse(cc, args)
	if err != nil {
		cfg.Insert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: insert requires a route, a value, and a file", cli.ErrUsage)
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
	opts := foamedit.InsertOptions{
		Anchor:    cfg.Anchor,
		Before:    cfg.Before,
		Top:       cfg.Top,
		Multiline: cfg.Multiline,
	}
	if !f.Insert(route, v, opts) {
		return fmt.Errorf("%s: cannot insert at %q", args[2], route)
	}
	return writeBack(cfg.MainConfig, cc, f)
}
