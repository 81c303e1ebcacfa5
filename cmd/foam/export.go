package main

import (
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func export(cfg *ExportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Export.Parse(cc, args)
	if err != nil {
		cfg.Export.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	route := ""
	var file string
	switch len(args) {
	case 1:
		file = args[0]
	case 2:
		route = normRoute(args[0])
		file = args[1]
	default:
		return fmt.Errorf("%w: export takes an optional route and a file", cli.ErrUsage)
	}
	f, err := loadArg(cc, file)
	if err != nil {
		return err
	}
	v := f.Get(route)
	if v == nil {
		return fmt.Errorf("%s: route %q not found", file, route)
	}
	var out []byte
	if cfg.JSON {
		out, err = json.MarshalIndent(v.Interface(), "", "    ")
		out = append(out, '\n')
	} else {
		out, err = yaml.Marshal(v.Interface())
	}
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(out)
	return err
}
