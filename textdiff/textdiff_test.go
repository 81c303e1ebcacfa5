package textdiff

import "testing"

func TestLinesEqual(t *testing.T) {
	src := "a\nb\nc\n"
	out, changed := Lines(src, src)
	if changed {
		t.Fatalf("equal inputs reported changed")
	}
	want := "  a\n  b\n  c\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestLinesChanged(t *testing.T) {
	from := "solver\n{\n    relTol 0;\n}\n"
	to := "solver\n{\n    relTol 0.01;\n}\n"
	out, changed := Lines(from, to)
	if !changed {
		t.Fatalf("differing inputs reported unchanged")
	}
	want := "" +
		"  solver\n" +
		"  {\n" +
		"-     relTol 0;\n" +
		"+     relTol 0.01;\n" +
		"  }\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestLinesInsertOnly(t *testing.T) {
	out, changed := Lines("a\n", "a\nb\n")
	if !changed {
		t.Fatalf("insertion reported unchanged")
	}
	want := "  a\n+ b\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}
