package edit

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
	"github.com/foam-tools/foamedit/parse"
	"github.com/foam-tools/foamedit/token"
)

func setup(t *testing.T, src string) (*lines.Buffer, *ir.Node) {
	t.Helper()
	b := lines.New(src)
	return b, reparse(t, b)
}

func reparse(t *testing.T, b *lines.Buffer) *ir.Node {
	t.Helper()
	toks, _, truncated := token.Tokenize(nil, []byte(b.Text()))
	if err := parse.Check(toks, truncated); err != nil {
		t.Fatal(err)
	}
	root := parse.Build(parse.Extract(toks), b, parse.NewLinearFinder())
	b.ClearDirty()
	return root
}

const solverDoc = `solver
{
    tolerance       1e-6;
}
`

func TestInsertAligned(t *testing.T) {
	b, root := setup(t, solverDoc)
	if !Insert(b, root, "solver.relTol", ir.Scalar("0.01"), InsertOptions{}) {
		t.Fatal("insert failed")
	}
	want := `solver
{
    tolerance       1e-6;
    relTol          0.01;
}
`
	if diff := cmp.Diff(want, b.Text()); diff != "" {
		t.Errorf("buffer (-want +got):\n%s", diff)
	}
	if !b.Dirty() {
		t.Error("buffer not marked dirty")
	}
}

func TestInsertVivifiesPath(t *testing.T) {
	b, root := setup(t, "")
	if !Insert(b, root, "boundary.inlet.type", ir.Scalar("wall"), InsertOptions{}) {
		t.Fatal("insert failed")
	}
	want := `boundary
{
    inlet
    {
        type    wall;
    }
}
`
	if diff := cmp.Diff(want, b.Text()); diff != "" {
		t.Errorf("buffer (-want +got):\n%s", diff)
	}
}

func TestInsertIndexedInlineItem(t *testing.T) {
	src := "boundary ( {name A; type wall;} {name B; type wall;} );\n"
	b, root := setup(t, src)
	if !Insert(b, root, "boundary[1].value", ir.Scalar("uniform 0"), InsertOptions{}) {
		t.Fatal("insert failed")
	}
	want := "boundary ( {name A; type wall;} {name B; type wall; value uniform 0;} );\n"
	if got := b.Text(); got != want {
		t.Errorf("buffer:\n got %q\nwant %q", got, want)
	}
}

func TestInsertIdempotent(t *testing.T) {
	for _, tt := range []struct {
		name  string
		src   string
		route string
		val   *ir.Value
	}{
		{name: "scalar", src: solverDoc, route: "solver.relTol", val: ir.Scalar("0.01")},
		{name: "vivified", src: "", route: "boundary.inlet.type", val: ir.Scalar("wall")},
		{
			name:  "inline item field",
			src:   "boundary ( {name A; type wall;} {name B; type wall;} );\n",
			route: "boundary[1].value",
			val:   ir.Scalar("uniform 0"),
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, root := setup(t, tt.src)
			if !Insert(b, root, tt.route, tt.val, InsertOptions{}) {
				t.Fatal("first insert failed")
			}
			once := b.Text()
			root = reparse(t, b)
			if !Insert(b, root, tt.route, tt.val, InsertOptions{}) {
				t.Fatal("second insert failed")
			}
			if got := b.Text(); got != once {
				t.Errorf("second insert changed buffer:\n got %q\nwant %q", got, once)
			}
		})
	}
}

func TestInsertBounds(t *testing.T) {
	src := "boundary ( {name A; type wall;} {name B; type wall;} );\n"
	for _, route := range []string{
		"boundary[2].value",
		"boundary[17].value",
		"boundary[-1].value",
	} {
		b, root := setup(t, src)
		if Insert(b, root, route, ir.Scalar("x"), InsertOptions{}) {
			t.Errorf("%s: insert succeeded", route)
		}
		if got := b.Text(); got != src {
			t.Errorf("%s: buffer changed: %q", route, got)
		}
		if b.Dirty() {
			t.Errorf("%s: buffer marked dirty", route)
		}
	}
}

func TestInsertPlacement(t *testing.T) {
	src := `ctrl
{
    a           1;
    b           2;
}
`
	for _, tt := range []struct {
		name string
		opts InsertOptions
		want string
	}{
		{
			name: "bottom",
			opts: InsertOptions{},
			want: "ctrl\n{\n    a           1;\n    b           2;\n    c           3;\n}\n",
		},
		{
			name: "top",
			opts: InsertOptions{Top: true},
			want: "ctrl\n{\n    c           3;\n    a           1;\n    b           2;\n}\n",
		},
		{
			name: "after anchor",
			opts: InsertOptions{Anchor: "a"},
			want: "ctrl\n{\n    a           1;\n    c           3;\n    b           2;\n}\n",
		},
		{
			name: "before anchor",
			opts: InsertOptions{Anchor: "b", Before: true},
			want: "ctrl\n{\n    a           1;\n    c           3;\n    b           2;\n}\n",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			b, root := setup(t, src)
			if !Insert(b, root, "ctrl.c", ir.Scalar("3"), tt.opts) {
				t.Fatal("insert failed")
			}
			if diff := cmp.Diff(tt.want, b.Text()); diff != "" {
				t.Errorf("buffer (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsertMultilineList(t *testing.T) {
	b, root := setup(t, "")
	v := ir.List(ir.Vector(0, 0, 0), ir.Vector(1, 0, 0))
	if !Insert(b, root, "vertices", v, InsertOptions{Multiline: true}) {
		t.Fatal("insert failed")
	}
	want := `vertices
(
    ( 0 0 0 )
    ( 1 0 0 )
);
`
	if diff := cmp.Diff(want, b.Text()); diff != "" {
		t.Errorf("buffer (-want +got):\n%s", diff)
	}
}

func TestInsertConflictingScalar(t *testing.T) {
	src := "key     value;\n"
	b, root := setup(t, src)
	if Insert(b, root, "key.sub", ir.Scalar("x"), InsertOptions{}) {
		t.Error("insert under a scalar succeeded")
	}
	if got := b.Text(); got != src {
		t.Errorf("buffer changed: %q", got)
	}
}

func TestInsertListItem(t *testing.T) {
	src := `actions
(
    {
        name        action1;
    }
    {
        name        action2;
    }
);
`
	b, root := setup(t, src)
	item := ir.Map()
	item.SetField("name", ir.Scalar("action3"))
	if !InsertListItem(b, root, "actions", item) {
		t.Fatal("insert failed")
	}
	want := `actions
(
    {
        name        action1;
    }
    {
        name        action2;
    }
    {
        name        action3;
    }
);
`
	if diff := cmp.Diff(want, b.Text()); diff != "" {
		t.Errorf("buffer (-want +got):\n%s", diff)
	}
}
