// Package foamedit reads and edits OpenFOAM-style dictionary files,
// keeping the human-authored formatting of everything an edit does
// not touch.
//
// A File holds the text as a mutable line buffer plus a node tree
// derived from it. Reads address values by dotted routes such as
// "solvers.U.smoother" or "boundary[2].type". Mutations edit the line
// buffer directly and mark the file dirty; the next structural read
// rebuilds the tree, so the tree is never observed stale.
package foamedit

import (
	"errors"
	"fmt"
	"os"

	"github.com/foam-tools/foamedit/debug"
	"github.com/foam-tools/foamedit/edit"
	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
	"github.com/foam-tools/foamedit/parse"
	"github.com/foam-tools/foamedit/token"
)

// InsertOptions steer placement and rendering of inserted entries.
type InsertOptions = edit.InsertOptions

// File is one open dictionary file. It assumes a single writer;
// callers needing concurrent access serialize externally.
type File struct {
	buf    *lines.Buffer
	root   *ir.Node
	finder parse.Finder
	state  State
	path   string
}

type Option func(*File)

// WithFinder selects the key-lookup strategy used when building the
// node tree.
func WithFinder(f parse.Finder) Option {
	return func(ff *File) {
		ff.finder = f
	}
}

// Parse builds a File from text. Structurally malformed input, such
// as an unterminated block or comment, fails here; no partial tree is
// ever exposed.
func Parse(text string, opts ...Option) (*File, error) {
	f := &File{finder: parse.NewCachingFinder(parse.NewLinearFinder())}
	for _, o := range opts {
		o(f)
	}
	toks, _, truncated := token.Tokenize(nil, []byte(text))
	if debug.Tokenize() {
		debug.Logf("foamedit: tokenize: %d bytes, %d tokens, truncated=%v",
			len(text), len(toks), truncated)
		counts := make(map[string]int)
		for i := range toks {
			counts[toks[i].Type.String()]++
		}
		debug.LogAny(counts)
	}
	if err := parse.Check(toks, truncated); err != nil {
		return nil, err
	}
	f.buf = lines.New(text)
	f.root = parse.Build(parse.Extract(toks), f.buf, f.finder)
	f.state = Clean
	return f, nil
}

// Load reads and parses the file at path.
func Load(path string, opts ...Option) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(string(d), opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	f.path = path
	return f, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) State() State {
	return f.state
}

// Render serializes the current buffer.
func (f *File) Render() string {
	if f.state == Unloaded {
		return ""
	}
	return f.buf.Text()
}

// Save writes the buffer to path, or back to the load path when path
// is empty. The write goes through a temp file in the same directory.
func (f *File) Save(path string) error {
	if f.state == Unloaded {
		return errors.New("save: no file loaded")
	}
	if path == "" {
		path = f.path
	}
	if path == "" {
		return errors.New("save: no path")
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(f.buf.Text()), 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	f.path = path
	f.sync()
	return nil
}

// sync rebuilds the node tree when the buffer has been mutated since
// the last build.
func (f *File) sync() {
	if f.state != Dirty {
		return
	}
	if debug.Build() {
		debug.Logf("foamedit: rebuilding node tree for %q", f.path)
	}
	toks, _, _ := token.Tokenize(nil, []byte(f.buf.Text()))
	f.root = parse.Build(parse.Extract(toks), f.buf, f.finder)
	f.buf.ClearDirty()
	f.state = Clean
}

// Root returns the positioned node tree, rebuilt if stale.
func (f *File) Root() *ir.Node {
	if f.state == Unloaded {
		return nil
	}
	f.sync()
	return f.root
}

// Node resolves route to a positioned node, or nil.
func (f *File) Node(route string) *ir.Node {
	root := f.Root()
	if root == nil {
		return nil
	}
	return edit.Find(root, route)
}

// Get resolves route to its value, or nil. Routes the node tree
// cannot address at line granularity, such as fields of a map written
// on one line, fall back to the extracted value tree.
func (f *File) Get(route string) *ir.Value {
	root := f.Root()
	if root == nil {
		return nil
	}
	return edit.Resolve(root, route)
}

// GetString returns the scalar at route.
func (f *File) GetString(route string) (string, bool) {
	v := f.Get(route)
	if v == nil || v.Type != ir.ScalarType {
		return "", false
	}
	return v.Scalar, true
}

// Keys lists the field names of the map at route, in declaration
// order. An empty route lists the top level.
func (f *File) Keys(route string) []string {
	v := f.Get(route)
	if v == nil {
		return nil
	}
	return v.Keys()
}

func (f *File) mutate(name, route string, op func() bool) bool {
	if f.state == Unloaded {
		return false
	}
	f.sync()
	ok := op()
	if debug.Edit() {
		debug.Logf("foamedit: %s %q ok=%v", name, route, ok)
	}
	if !ok {
		return false
	}
	f.state = Dirty
	return true
}

// Set replaces the value at route. The route must resolve; Set never
// creates path segments.
func (f *File) Set(route string, value any) bool {
	return f.mutate("set", route, func() bool {
		return edit.Set(f.buf, f.root, route, ir.From(value))
	})
}

// Insert adds value at route, creating missing intermediate blocks.
// An occupied route is left untouched and reported as success.
func (f *File) Insert(route string, value any, opts ...InsertOptions) bool {
	var o InsertOptions
	if len(opts) > 0 {
		o = opts[0]
	}
	return f.mutate("insert", route, func() bool {
		return edit.Insert(f.buf, f.root, route, ir.From(value), o)
	})
}

// InsertListItem appends a map entry to the paren list at route.
func (f *File) InsertListItem(route string, item any) bool {
	return f.mutate("insertListItem", route, func() bool {
		return edit.InsertListItem(f.buf, f.root, route, ir.From(item))
	})
}

// Delete removes the entry, block, or list item at route.
func (f *File) Delete(route string) bool {
	return f.mutate("delete", route, func() bool {
		return edit.Delete(f.buf, f.root, route)
	})
}

// Rename changes the key at route, keeping the value column.
func (f *File) Rename(route, newKey string) bool {
	return f.mutate("rename", route, func() bool {
		return edit.Rename(f.buf, f.root, route, newKey)
	})
}

// Clear empties the block or list at route, keeping its delimiters.
func (f *File) Clear(route string) bool {
	return f.mutate("clear", route, func() bool {
		return edit.Clear(f.buf, f.root, route)
	})
}
