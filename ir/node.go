package ir

import "strconv"

// Node binds a key/value to the text span where it was declared.
// LineStart is the line carrying the key; for composite values
// BlockEndLine is the line of the closing brace or paren, otherwise
// it is -1. Column spans are in bytes on LineStart. Children appear
// in declaration order; ChildMap groups them by key and a key maps to
// more than one node when the key repeats among siblings.
type Node struct {
	Key    string
	Value  *Value
	Parent *Node

	Children []*Node
	ChildMap map[string][]*Node

	LineStart, LineEnd         int
	KeyColStart, KeyColEnd     int
	ValueColStart, ValueColEnd int
	BlockEndLine               int
}

func NewNode(key string, value *Value) *Node {
	return &Node{
		Key:          key,
		Value:        value,
		ChildMap:     map[string][]*Node{},
		BlockEndLine: -1,
	}
}

func (n *Node) AddChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
	n.ChildMap[c.Key] = append(n.ChildMap[c.Key], c)
}

// Find resolves a route to a node. A plain key segment picks the
// first occurrence of a repeated key; an indexed segment key[i] picks
// the i-th. A nil return means the route does not resolve.
func (n *Node) Find(route string) *Node {
	if route == "" {
		return n
	}
	segs, err := ParseRoute(route)
	if err != nil {
		return nil
	}
	cur := n
	for _, seg := range segs {
		lst := cur.ChildMap[seg.Key]
		if len(lst) == 0 {
			return nil
		}
		if seg.Index < 0 {
			cur = lst[0]
			continue
		}
		// repeated sibling keys: one node per occurrence
		if len(lst) > 1 {
			if seg.Index >= len(lst) {
				return nil
			}
			cur = lst[seg.Index]
			continue
		}
		// single paren list: items hang off the list node unkeyed
		items := lst[0].ChildMap[""]
		if len(items) == 0 {
			return nil
		}
		if seg.Index >= len(items) {
			return nil
		}
		cur = items[seg.Index]
	}
	return cur
}

// Items returns the element nodes of a paren list node.
func (n *Node) Items() []*Node {
	return n.ChildMap[""]
}

// Route reports the dotted route addressing n from the root. A key
// repeated among siblings gets an index suffix so the route stays
// unambiguous.
func (n *Node) Route() string {
	if n.Parent == nil {
		return ""
	}
	prefix := n.Parent.Route()
	seg := n.Key
	if lst := n.Parent.ChildMap[n.Key]; len(lst) > 1 {
		for i, c := range lst {
			if c == n {
				seg += "[" + strconv.Itoa(i) + "]"
				break
			}
		}
	}
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}

// Walk visits n and its descendants in declaration order. Returning
// false from f prunes the subtree.
func (n *Node) Walk(f func(*Node) bool) {
	if !f(n) {
		return
	}
	for _, c := range n.Children {
		c.Walk(f)
	}
}

// SpanContains reports whether the given 0-based line/col falls inside
// the node's declared span.
func (n *Node) SpanContains(line, col int) bool {
	last := n.LineEnd
	if n.BlockEndLine >= 0 {
		last = n.BlockEndLine
	}
	if line < n.LineStart || line > last {
		return false
	}
	if line == n.LineStart && n.BlockEndLine < 0 {
		return col >= n.KeyColStart && col <= n.ValueColEnd
	}
	return true
}
