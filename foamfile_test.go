package foamedit

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/parse"
)

const caseDoc = `/*--------------------------------*- C++ -*----------------------------------*\
| =========                 |                                                 |
\*---------------------------------------------------------------------------*/

solvers
{
    p
    {
        solver          PCG;
        preconditioner  DIC;
        tolerance       1e-06;
        relTol          0.05;
    }

    U
    {
        solver          smoothSolver;
        smoother        symGaussSeidel;
    }
}

PISO
{
    nCorrectors     2;
    nNonOrthogonalCorrectors 0;
}
`

func mustParse(t *testing.T, text string) *File {
	t.Helper()
	f, err := Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestRoundTrip(t *testing.T) {
	for _, src := range []string{
		caseDoc,
		"",
		"key     value; // note\n",
		"vertices\n(\n    ( 0 0 0 )\n    ( 1 0 0 )\n);\n",
	} {
		f := mustParse(t, src)
		if got := f.Render(); got != src {
			t.Errorf("round trip:\n got %q\nwant %q", got, src)
		}
	}
}

func TestGet(t *testing.T) {
	f := mustParse(t, caseDoc)
	for _, tt := range []struct {
		route string
		want  string
	}{
		{route: "solvers.U.smoother", want: "symGaussSeidel"},
		{route: "solvers.p.solver", want: "PCG"},
		{route: "PISO.nCorrectors", want: "2"},
	} {
		got, ok := f.GetString(tt.route)
		if !ok || got != tt.want {
			t.Errorf("%s: got %q, %v", tt.route, got, ok)
		}
	}
	if v := f.Get("solvers.missing"); v != nil {
		t.Errorf("missing route: got %v", v)
	}
}

func TestKeys(t *testing.T) {
	f := mustParse(t, caseDoc)
	if diff := cmp.Diff([]string{"solvers", "PISO"}, f.Keys("")); diff != "" {
		t.Errorf("top-level keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"p", "U"}, f.Keys("solvers")); diff != "" {
		t.Errorf("solvers keys (-want +got):\n%s", diff)
	}
}

func TestSetReadAfterWrite(t *testing.T) {
	f := mustParse(t, caseDoc)
	if !f.Set("solvers.p.relTol", 0.1) {
		t.Fatal("set failed")
	}
	if f.State() != Dirty {
		t.Errorf("state after set: %s", f.State())
	}
	if got, _ := f.GetString("solvers.p.relTol"); got != "0.1" {
		t.Errorf("relTol after set: %q", got)
	}
	if f.State() != Clean {
		t.Errorf("state after read: %s", f.State())
	}
}

func TestInsertAlignsWithSiblings(t *testing.T) {
	f := mustParse(t, caseDoc)
	if !f.Insert("PISO.pRefCell", 0) {
		t.Fatal("insert failed")
	}
	if !strings.Contains(f.Render(), "\n    pRefCell        0;\n") {
		t.Errorf("inserted line misaligned:\n%s", f.Render())
	}
	if got, _ := f.GetString("PISO.pRefCell"); got != "0" {
		t.Errorf("pRefCell: %q", got)
	}
}

func TestInsertVector(t *testing.T) {
	f := mustParse(t, "")
	if !f.Insert("location", [3]float64{0, 1.5, -2}) {
		t.Fatal("insert failed")
	}
	if got := f.Render(); got != "location        ( 0 1.5 -2 );\n" {
		t.Errorf("render: %q", got)
	}
	v := f.Get("location")
	if v == nil || v.Type != ir.VectorType || v.Vector != [3]float64{0, 1.5, -2} {
		t.Errorf("location: %v", v)
	}
}

func TestNamedItemRoute(t *testing.T) {
	f := mustParse(t, "boundary ( {name inlet; type wall;} {name outlet; type patch;} );\n")
	if got, _ := f.GetString("boundary.outlet.type"); got != "patch" {
		t.Errorf("boundary.outlet.type: %q", got)
	}
	if !f.Set("boundary.inlet.type", "patch") {
		t.Fatal("set failed")
	}
	if got, _ := f.GetString("boundary.inlet.type"); got != "patch" {
		t.Errorf("boundary.inlet.type after set: %q", got)
	}
}

func TestParseMalformed(t *testing.T) {
	for _, src := range []string{
		"solver\n{\n    tolerance 1;\n",
		"v ( 0 0 0 };\n",
		"/* open",
	} {
		f, err := Parse(src)
		if err == nil {
			t.Errorf("%q: parse succeeded", src)
			continue
		}
		if f != nil {
			t.Errorf("%q: partial file exposed", src)
		}
		if !errors.Is(err, ir.ErrStructure) && !errors.Is(err, parse.ErrParse) {
			t.Errorf("%q: unexpected error %v", src, err)
		}
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fvSolution")
	if err := os.WriteFile(path, []byte(caseDoc), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !f.Delete("PISO.nNonOrthogonalCorrectors") {
		t.Fatal("delete failed")
	}
	if err := f.Save(""); err != nil {
		t.Fatal(err)
	}
	if f.State() != Clean {
		t.Errorf("state after save: %s", f.State())
	}
	g, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if g.Get("PISO.nNonOrthogonalCorrectors") != nil {
		t.Error("deleted key survived save")
	}
	if diff := cmp.Diff(f.Render(), g.Render()); diff != "" {
		t.Errorf("render after reload (-want +got):\n%s", diff)
	}
}

func TestFinderOption(t *testing.T) {
	f, err := Parse(caseDoc, WithFinder(parse.NewLinearFinder()))
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := f.GetString("solvers.U.solver"); got != "smoothSolver" {
		t.Errorf("solvers.U.solver: %q", got)
	}
}
