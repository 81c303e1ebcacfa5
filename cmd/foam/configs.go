package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"github.com/mattn/go-isatty"

	"github.com/foam-tools/foamedit/encode"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='render values in color'"`
	W     bool `cli:"name=w aliases=write desc='write changes back to the file'"`

	Main *cli.Command
}

// encOpts enables colors when asked for, or when writing to a
// terminal.
func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	if cfg.Color {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return []encode.EncodeOption{encode.EncodeColors(encode.NewColors())}
	}
	return nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type SetConfig struct {
	*MainConfig

	Set *cli.Command
}

type InsertConfig struct {
	*MainConfig

	Anchor    string `cli:"name=anchor desc='sibling key to place the entry next to'"`
	Before    bool   `cli:"name=before desc='place before the anchor instead of after'"`
	Top       bool   `cli:"name=top desc='place at the top of the block'"`
	Multiline bool   `cli:"name=ml aliases=multiline desc='render list values one element per line'"`

	Insert *cli.Command
}

type RmConfig struct {
	*MainConfig

	Rm *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type ListConfig struct {
	*MainConfig

	Where string `cli:"name=where desc='filter expression over route, key, kind, value, line, depth'"`

	List *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ExportConfig struct {
	*MainConfig

	JSON bool `cli:"name=json desc='emit JSON instead of YAML'"`

	Export *cli.Command
}
