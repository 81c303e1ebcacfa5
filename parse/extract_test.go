package parse

import (
	"strings"
	"testing"

	"github.com/foam-tools/foamedit/ir"
	"github.com/foam-tools/foamedit/token"
)

func extract(t *testing.T, src string) *ir.Value {
	t.Helper()
	toks, _, truncated := token.Tokenize(nil, []byte(src))
	if truncated {
		t.Fatalf("unexpected truncation for %q", src)
	}
	return Extract(toks)
}

func TestExtractScalar(t *testing.T) {
	v := extract(t, "startFrom       startTime;\nstopAt endTime;\n")
	if got := v.Resolve("startFrom"); got == nil || got.Scalar != "startTime" {
		t.Errorf("startFrom: got %v", got)
	}
	if got := v.Resolve("stopAt"); got == nil || got.Scalar != "endTime" {
		t.Errorf("stopAt: got %v", got)
	}
}

func TestExtractNestedBlocks(t *testing.T) {
	v := extract(t, `
outlet
{
    type        patch;
    maxY
    {
        name    fluid;
    }
}
`)
	if got := v.Resolve("outlet.type"); got == nil || got.Scalar != "patch" {
		t.Errorf("outlet.type: got %v", got)
	}
	if got := v.Resolve("outlet.maxY.name"); got == nil || got.Scalar != "fluid" {
		t.Errorf("outlet.maxY.name: got %v", got)
	}
}

func TestExtractVector(t *testing.T) {
	v := extract(t, "location ( 0 1.5 -2 );\n")
	got := v.Resolve("location")
	if got == nil || got.Type != ir.VectorType {
		t.Fatalf("location: got %v", got)
	}
	if got.Vector != [3]float64{0, 1.5, -2} {
		t.Errorf("location: got %v", got.Vector)
	}
}

func TestExtractVectorList(t *testing.T) {
	v := extract(t, "vertices\n(\n    ( 0 0 0 )\n    ( 1 0 0 )\n    ( 1 1 0 )\n);\n")
	got := v.Resolve("vertices")
	if got == nil || got.Type != ir.ListType {
		t.Fatalf("vertices: got %v", got)
	}
	if len(got.Elems) != 3 {
		t.Fatalf("vertices: %d elems", len(got.Elems))
	}
	for i, e := range got.Elems {
		if e.Type != ir.VectorType {
			t.Errorf("vertices[%d]: %s", i, e.Type)
		}
	}
}

func TestExtractWordList(t *testing.T) {
	v := extract(t, "libs ( utilityFunctionObjects fieldFunctionObjects );\n")
	got := v.Resolve("libs")
	if got == nil || got.Type != ir.ListType || len(got.Elems) != 2 {
		t.Fatalf("libs: got %v", got)
	}
	if got.Elems[1].Scalar != "fieldFunctionObjects" {
		t.Errorf("libs[1]: got %q", got.Elems[1].Scalar)
	}
}

func TestExtractListOfDicts(t *testing.T) {
	v := extract(t, `
actions
(
    {
        name        action1;
        type        faceZoneSet;
    }
    {
        name        action2;
        type        cellZoneSet;
    }
);
`)
	if got := v.Resolve("actions[1].type"); got == nil || got.Scalar != "cellZoneSet" {
		t.Errorf("actions[1].type: got %v", got)
	}
	if got := v.Resolve("actions[2]"); got != nil {
		t.Errorf("actions[2]: expected nil")
	}
}

func TestExtractRepeatedKeys(t *testing.T) {
	v := extract(t, `
patch { name inlet; }
patch { name outlet; }
other  x;
`)
	got := v.Resolve("patch")
	if got == nil || got.Type != ir.ListType || len(got.Elems) != 2 {
		t.Fatalf("patch: got %v", got)
	}
	if n := v.Resolve("patch[1].name"); n == nil || n.Scalar != "outlet" {
		t.Errorf("patch[1].name: got %v", n)
	}
}

func TestExtractCompositeScalar(t *testing.T) {
	v := extract(t, "inGroups 2(wall patch);\n")
	got := v.Resolve("inGroups")
	if got == nil || got.Type != ir.ScalarType {
		t.Fatalf("inGroups: got %v", got)
	}
	if got.Scalar != "2(wall patch)" {
		t.Errorf("inGroups: got %q", got.Scalar)
	}
}

func TestExtractCommentsIgnored(t *testing.T) {
	v := extract(t, "// header\nkey value; // trailing\n/* block */\nother thing;\n")
	if got := v.Resolve("key"); got == nil || got.Scalar != "value" {
		t.Errorf("key: got %v", got)
	}
	if got := v.Resolve("other"); got == nil || got.Scalar != "thing" {
		t.Errorf("other: got %v", got)
	}
}

func TestCheck(t *testing.T) {
	for _, tt := range []struct {
		in string
		ok bool
	}{
		{in: "a b;\nc { d e; }\n", ok: true},
		{in: "c {\n d e;\n", ok: false},
		{in: "c )\n", ok: false},
		{in: "v ( 0 0 0 };\n", ok: false},
		{in: "/* open", ok: false},
	} {
		toks, _, truncated := token.Tokenize(nil, []byte(tt.in))
		err := Check(toks, truncated)
		if (err == nil) != tt.ok {
			t.Errorf("%q: err=%v, want ok=%v", tt.in, err, tt.ok)
		}
	}
}

func TestCheckErrorPositionAfterBanner(t *testing.T) {
	in := "/* banner\nline two */\nkey {\n"
	toks, _, truncated := token.Tokenize(nil, []byte(in))
	err := Check(toks, truncated)
	if err == nil {
		t.Fatal("unmatched brace not reported")
	}
	if !strings.Contains(err.Error(), "line=2, col=4") {
		t.Errorf("error %q does not point at line=2, col=4", err)
	}
}
