// Package settings persists tool state as JSON snapshots. It is a
// sibling subsystem to the dictionary editor and shares no types with
// it: the buffer here is raw JSON addressed by dotted paths such as
// "viewer.camera[2].pos".
package settings

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/foam-tools/foamedit/debug"
)

// Store is one settings snapshot. Like the dictionary editor it
// assumes a single writer.
type Store struct {
	path string
	buf  []byte
}

func New() *Store {
	return &Store{buf: []byte("{}")}
}

// Create writes an empty snapshot at path.
func Create(path string) (*Store, error) {
	s := &Store{path: path, buf: []byte("{}")}
	if err := s.Save(""); err != nil {
		return nil, err
	}
	return s, nil
}

// Open reads and validates the snapshot at path.
func Open(path string) (*Store, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := Check(d); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Store{path: path, buf: d}, nil
}

func (s *Store) Path() string {
	return s.path
}

func (s *Store) Bytes() []byte {
	return s.buf
}

// Save writes the snapshot, indented, to path or back to the source
// path when path is empty.
func (s *Store) Save(path string) error {
	if path == "" {
		path = s.path
	}
	if path == "" {
		return fmt.Errorf("save: no path")
	}
	var out bytes.Buffer
	if err := json.Indent(&out, s.buf, "", "    "); err != nil {
		return err
	}
	out.WriteByte('\n')
	if err := os.WriteFile(path, out.Bytes(), 0o644); err != nil {
		return err
	}
	s.path = path
	return nil
}

// Get resolves a dotted path. The second result is false when the
// path does not resolve.
func (s *Store) Get(path string) (any, bool) {
	r := gjson.GetBytes(s.buf, jsonPath(path))
	if !r.Exists() {
		return nil, false
	}
	return r.Value(), true
}

func (s *Store) GetString(path string) string {
	r := gjson.GetBytes(s.buf, jsonPath(path))
	return r.String()
}

// Set stores value at path, creating intermediate objects and array
// slots as needed.
func (s *Store) Set(path string, value any) bool {
	out, err := sjson.SetBytes(s.buf, jsonPath(path), value)
	if err != nil {
		if debug.Settings() {
			debug.Logf("settings: set %q: %v", path, err)
		}
		return false
	}
	s.buf = out
	return true
}

// Add merges value into path: appended for arrays, merged key-wise
// for objects, and an existing scalar is promoted to an array holding
// both. A missing path behaves like Set.
func (s *Store) Add(path string, value any) bool {
	jp := jsonPath(path)
	cur := gjson.GetBytes(s.buf, jp)
	switch {
	case !cur.Exists():
		return s.Set(path, value)
	case cur.IsArray():
		out, err := sjson.SetBytes(s.buf, jp+".-1", value)
		if err != nil {
			return false
		}
		s.buf = out
		return true
	case cur.IsObject():
		m, ok := value.(map[string]any)
		if !ok {
			return false
		}
		ok = true
		for k, v := range m {
			if !s.Set(path+"."+k, v) {
				ok = false
			}
		}
		return ok
	default:
		return s.Set(path, []any{cur.Value(), value})
	}
}

// Remove deletes the value at path. Removing a missing path reports
// false.
func (s *Store) Remove(path string) bool {
	jp := jsonPath(path)
	if !gjson.GetBytes(s.buf, jp).Exists() {
		return false
	}
	out, err := sjson.DeleteBytes(s.buf, jp)
	if err != nil {
		return false
	}
	s.buf = out
	return true
}

// Merge applies an RFC 7386 merge patch to the whole snapshot.
func (s *Store) Merge(patch []byte) error {
	out, err := jsonpatch.MergePatch(s.buf, patch)
	if err != nil {
		return err
	}
	s.buf = out
	return nil
}

// jsonPath converts "a.b[2].c" to the "a.b.2.c" form gjson and sjson
// address with.
func jsonPath(route string) string {
	r := strings.ReplaceAll(route, "[", ".")
	return strings.ReplaceAll(r, "]", "")
}
