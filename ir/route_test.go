package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

type routeTest struct {
	in   string
	segs []Seg
	err  bool
}

var routeTests = []routeTest{
	{in: "", segs: nil},
	{in: "solver", segs: []Seg{{Key: "solver", Index: -1}}},
	{
		in:   "solvers.U.smoother",
		segs: []Seg{{Key: "solvers", Index: -1}, {Key: "U", Index: -1}, {Key: "smoother", Index: -1}},
	},
	{
		in:   "boundary[2].type",
		segs: []Seg{{Key: "boundary", Index: 2}, {Key: "type", Index: -1}},
	},
	{in: "a..b", err: true},
	{in: "a[x]", err: true},
	{in: "a[-1]", err: true},
	{in: "a[2", err: true},
}

func TestParseRoute(t *testing.T) {
	for _, tt := range routeTests {
		segs, err := ParseRoute(tt.in)
		if tt.err {
			if err == nil {
				t.Errorf("%q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if d := cmp.Diff(tt.segs, segs); d != "" {
			t.Errorf("%q: (-want +got)\n%s", tt.in, d)
		}
		if tt.in != RouteString(segs) {
			t.Errorf("%q: round trip got %q", tt.in, RouteString(segs))
		}
	}
}

func TestValueResolve(t *testing.T) {
	inlet := Map()
	inlet.SetField("type", Scalar("wall"))
	boundary := Map()
	boundary.SetField("inlet", inlet)
	root := Map()
	root.SetField("boundary", boundary)
	root.SetField("vertices", List(Vector(0, 0, 0), Vector(1, 0, 0)))

	if got := root.Resolve("boundary.inlet.type"); got == nil || got.Scalar != "wall" {
		t.Errorf("boundary.inlet.type: got %v", got)
	}
	if got := root.Resolve("vertices[1]"); got == nil || got.Type != VectorType {
		t.Errorf("vertices[1]: got %v", got)
	}
	if got := root.Resolve("vertices[2]"); got != nil {
		t.Errorf("vertices[2]: expected nil, got %v", got)
	}
	if got := root.Resolve("missing.key"); got != nil {
		t.Errorf("missing.key: expected nil, got %v", got)
	}
}
