package settings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetGet(t *testing.T) {
	s := New()
	if !s.Set("viewer.background", "gray") {
		t.Fatal("set failed")
	}
	if !s.Set("viewer.camera[1].pos", []any{0.0, 1.0, 2.0}) {
		t.Fatal("indexed set failed")
	}
	if got := s.GetString("viewer.background"); got != "gray" {
		t.Errorf("background: %q", got)
	}
	v, ok := s.Get("viewer.camera[1].pos")
	if !ok {
		t.Fatal("camera pos missing")
	}
	if diff := cmp.Diff([]any{0.0, 1.0, 2.0}, v); diff != "" {
		t.Errorf("pos (-want +got):\n%s", diff)
	}
	if _, ok := s.Get("viewer.missing"); ok {
		t.Error("missing path resolved")
	}
}

func TestAdd(t *testing.T) {
	s := New()

	// missing path behaves like set
	if !s.Add("recent", "a") {
		t.Fatal("add failed")
	}
	// scalar promotes to an array
	if !s.Add("recent", "b") {
		t.Fatal("second add failed")
	}
	// arrays append
	if !s.Add("recent", "c") {
		t.Fatal("third add failed")
	}
	v, _ := s.Get("recent")
	if diff := cmp.Diff([]any{"a", "b", "c"}, v); diff != "" {
		t.Errorf("recent (-want +got):\n%s", diff)
	}

	// objects merge key-wise
	s.Set("win.w", 800.0)
	if !s.Add("win", map[string]any{"h": 600.0}) {
		t.Fatal("object add failed")
	}
	if got := s.GetString("win.h"); got != "600" {
		t.Errorf("win.h: %q", got)
	}
	if got := s.GetString("win.w"); got != "800" {
		t.Errorf("win.w: %q", got)
	}
}

func TestRemove(t *testing.T) {
	s := New()
	s.Set("a.b", 1)
	if !s.Remove("a.b") {
		t.Fatal("remove failed")
	}
	if _, ok := s.Get("a.b"); ok {
		t.Error("removed path still resolves")
	}
	if s.Remove("a.b") {
		t.Error("removing a missing path succeeded")
	}
}

func TestMerge(t *testing.T) {
	s := New()
	s.Set("viewer.background", "gray")
	s.Set("viewer.axes", true)
	if err := s.Merge([]byte(`{"viewer":{"background":"black","axes":null}}`)); err != nil {
		t.Fatal(err)
	}
	if got := s.GetString("viewer.background"); got != "black" {
		t.Errorf("background: %q", got)
	}
	if _, ok := s.Get("viewer.axes"); ok {
		t.Error("null-patched key survived")
	}
}

func TestCheckReportsPosition(t *testing.T) {
	err := Check([]byte("{\n    \"viewer\": {\n        \"background\": \"gray\",\n    }\n}\n"))
	if err == nil {
		t.Fatal("trailing comma accepted")
	}
	var serr *SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("unexpected error type: %v", err)
	}
	if serr.Line != 4 {
		t.Errorf("line: %d", serr.Line)
	}
	if serr.KeyHint != "background" {
		t.Errorf("key hint: %q", serr.KeyHint)
	}
	if serr.Near == "" {
		t.Error("empty near context")
	}
}

func TestSaveAndOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	s, err := Create(path)
	if err != nil {
		t.Fatal(err)
	}
	s.Set("viewer.background", "gray")
	if err := s.Save(""); err != nil {
		t.Fatal(err)
	}
	g, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := g.GetString("viewer.background"); got != "gray" {
		t.Errorf("background after reload: %q", got)
	}
}

func TestOpenRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{ not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("invalid snapshot opened")
	}
}
