package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Seg is one segment of a route. Index is -1 when the segment has no
// [i] suffix. A Seg may carry only an index when the route addresses
// a bare element, as in "blocks[0]".
type Seg struct {
	Key   string
	Index int
}

// ParseRoute splits a dotted route like "solvers.U.smoother" or
// "boundary[2].type" into segments.
func ParseRoute(route string) ([]Seg, error) {
	if route == "" {
		return nil, nil
	}
	parts := strings.Split(route, ".")
	segs := make([]Seg, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			return nil, fmt.Errorf("%w: empty segment in %q", ErrRoute, route)
		}
		seg := Seg{Index: -1}
		if i := strings.IndexByte(part, '['); i != -1 {
			if !strings.HasSuffix(part, "]") {
				return nil, fmt.Errorf("%w: malformed index in %q", ErrRoute, part)
			}
			idx, err := strconv.Atoi(part[i+1 : len(part)-1])
			if err != nil {
				return nil, fmt.Errorf("%w: bad index in %q", ErrRoute, part)
			}
			if idx < 0 {
				return nil, fmt.Errorf("%w: negative index in %q", ErrRoute, part)
			}
			seg.Key = part[:i]
			seg.Index = idx
		} else {
			seg.Key = part
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

func (s Seg) String() string {
	if s.Index < 0 {
		return s.Key
	}
	return s.Key + "[" + strconv.Itoa(s.Index) + "]"
}

// RouteString joins segments back into a route.
func RouteString(segs []Seg) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}
