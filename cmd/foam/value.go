package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/scott-cotton/cli"

	"github.com/foam-tools/foamedit"
	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/parse"
	"github.com/foam-tools/foamedit/token"
)

// parseValue reads a value argument the way it would appear in a
// file: scalars verbatim, "( 0 1 2 )" as a vector, "( a b )" as a
// list, "{ k v; }" as a block.
func parseValue(text string) (*ir.Value, error) {
	body := strings.TrimSpace(text)
	src := "x " + body
	if !strings.HasSuffix(body, ";") && !strings.HasSuffix(body, "}") {
		src += ";"
	}
	toks, _, truncated := token.Tokenize(nil, []byte(src))
	if err := parse.Check(toks, truncated); err != nil {
		return nil, fmt.Errorf("bad value %q: %w", text, err)
	}
	v := parse.Extract(toks).Field("x")
	if v == nil {
		return nil, fmt.Errorf("bad value %q", text)
	}
	return v, nil
}

// normRoute maps the "." spelling of the top level to the empty
// route.
func normRoute(r string) string {
	if r == "." {
		return ""
	}
	return r
}

// loadArg opens a file argument, with "-" meaning stdin.
func loadArg(cc *cli.Context, file string) (*foamedit.File, error) {
	if file != "-" {
		return foamedit.Load(file)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return foamedit.Parse(string(d))
}

// writeBack saves the file in place with -w, and prints the edited
// buffer otherwise.
func writeBack(cfg *MainConfig, cc *cli.Context, f *foamedit.File) error {
	if cfg.W && f.Path() != "" {
		return f.Save("")
	}
	_, err := io.WriteString(cc.Out, f.Render())
	return err
}
