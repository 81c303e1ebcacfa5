package parse

import (
	"testing"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/lines"
	"github.com/foam-tools/foamedit/token"
)

const nodeDoc = `// header
solver
{
    tolerance   1e-6;
    relTol      0.01;
}

vertices
(
    ( 0 0 0 )
    ( 1 0 0 )
);

actions
(
    {
        name        action1;
    }
    {
        name        action2;
    }
);
`

func buildDoc(t *testing.T, src string, f Finder) (*ir.Node, *lines.Buffer) {
	t.Helper()
	toks, _, truncated := token.Tokenize(nil, []byte(src))
	if err := Check(toks, truncated); err != nil {
		t.Fatal(err)
	}
	v := Extract(toks)
	b := lines.New(src)
	return Build(v, b, f), b
}

func TestBuildPositions(t *testing.T) {
	for _, f := range []Finder{NewLinearFinder(), NewCachingFinder(NewLinearFinder())} {
		root, _ := buildDoc(t, nodeDoc, f)

		solver := root.Find("solver")
		if solver == nil {
			t.Fatal("solver not found")
		}
		if solver.LineStart != 1 || solver.BlockEndLine != 5 {
			t.Errorf("solver span: lines %d..%d", solver.LineStart, solver.BlockEndLine)
		}

		tol := root.Find("solver.tolerance")
		if tol == nil {
			t.Fatal("tolerance not found")
		}
		if tol.LineStart != 3 {
			t.Errorf("tolerance line: %d", tol.LineStart)
		}
		if tol.ValueColStart != 16 || tol.ValueColEnd != 20 {
			t.Errorf("tolerance value cols: %d..%d", tol.ValueColStart, tol.ValueColEnd)
		}

		verts := root.Find("vertices")
		if verts == nil || verts.BlockEndLine != 11 {
			t.Fatalf("vertices: %+v", verts)
		}
		if len(verts.Items()) != 2 {
			t.Errorf("vertices items: %d", len(verts.Items()))
		}
		if verts.Items()[1].LineStart != 10 {
			t.Errorf("vertices[1] line: %d", verts.Items()[1].LineStart)
		}

		a1 := root.Find("actions[1].name")
		if a1 == nil {
			t.Fatal("actions[1].name not found")
		}
		if a1.Value.Scalar != "action2" {
			t.Errorf("actions[1].name: %q", a1.Value.Scalar)
		}
	}
}

func TestBuildChildContainment(t *testing.T) {
	root, _ := buildDoc(t, nodeDoc, NewLinearFinder())
	root.Walk(func(n *ir.Node) bool {
		if n.Parent == nil {
			return true
		}
		p := n.Parent
		last := p.LineEnd
		if p.BlockEndLine >= 0 {
			last = p.BlockEndLine
		}
		if n.LineStart < p.LineStart || n.LineEnd > last {
			t.Errorf("node %q lines %d..%d outside parent %q %d..%d",
				n.Key, n.LineStart, n.LineEnd, p.Key, p.LineStart, last)
		}
		return true
	})
}

func TestBuildRepeatedKeys(t *testing.T) {
	src := "patch\n{\n    name inlet;\n}\npatch\n{\n    name outlet;\n}\n"
	root, _ := buildDoc(t, src, NewLinearFinder())
	lst := root.ChildMap["patch"]
	if len(lst) != 2 {
		t.Fatalf("patch nodes: %d", len(lst))
	}
	if lst[0].LineStart != 0 || lst[1].LineStart != 4 {
		t.Errorf("patch lines: %d, %d", lst[0].LineStart, lst[1].LineStart)
	}
	if n := root.Find("patch[1].name"); n == nil || n.Value.Scalar != "outlet" {
		t.Errorf("patch[1].name: %+v", n)
	}
}

func TestBuildRoute(t *testing.T) {
	root, _ := buildDoc(t, nodeDoc, NewLinearFinder())
	n := root.Find("solver.relTol")
	if n == nil {
		t.Fatal("relTol not found")
	}
	if got := n.Route(); got != "solver.relTol" {
		t.Errorf("route: %q", got)
	}
}

func TestFinderWindowFallback(t *testing.T) {
	// push a key beyond the bounded window to exercise the full scan
	src := "first a;\n"
	for i := 0; i < keyWindow+10; i++ {
		src += "\n"
	}
	src += "last z;\n"
	root, _ := buildDoc(t, src, NewLinearFinder())
	if n := root.Find("last"); n == nil || n.Value.Scalar != "z" {
		t.Errorf("last: %+v", n)
	}
}
