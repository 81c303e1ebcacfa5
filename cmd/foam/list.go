package main

import (
	"fmt"

	"github.com/expr-lang/expr/vm"
	"github.com/scott-cotton/cli"

	"github.com/foam-tools/foamedit/query"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var prog *vm.Program
	if cfg.Where != "" {
		prog, err = query.Compile(cfg.Where)
		if err != nil {
			return fmt.Errorf("bad -where expression: %w", err)
		}
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		f, err := loadArg(cc, file)
		if err != nil {
			return err
		}
		ns, err := query.Select(f.Root(), prog)
		if err != nil {
			return err
		}
		for _, n := range ns {
			fmt.Fprintf(cc.Out, "%s:%d: %s (%s)\n",
				file, n.LineStart+1, n.Route(), n.Value.Type)
		}
	}
	return nil
}
