package lines

import "testing"

type alignTest struct {
	name       string
	text       string
	start, end int
	col        int
}

var alignTests = []alignTest{
	{
		name: "uniform",
		text: "    tolerance   1e-6;\n    relTol      0.01;\n",
		col:  16,
	},
	{
		name: "majority wins",
		text: "    a       1;\n    b       2;\n    c 3;\n",
		col:  12,
	},
	{
		name: "shallowest indent only",
		text: "    a       1;\n        deep        9;\n    b       2;\n",
		col:  12,
	},
	{
		name: "comments and braces skipped",
		text: "{\n    // note\n    a       1;\n}\n",
		col:  12,
	},
	{
		name: "tabs expanded",
		text: "\ta\t1;\n",
		col:  8,
	},
	{
		name: "empty span",
		text: "\n",
		col:  -1,
	},
}

func TestInferAlignmentColumn(t *testing.T) {
	for _, tt := range alignTests {
		b := New(tt.text)
		end := tt.end
		if end == 0 {
			end = b.Len()
		}
		if got := InferAlignmentColumn(b, tt.start, end); got != tt.col {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.col)
		}
	}
}
