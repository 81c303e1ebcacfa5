package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"

	"github.com/foam-tools/foamedit/ir"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.file == nil {
		return nil, nil
	}

	pos := params.Position
	node := nodeAt(doc.file.Root(), int(pos.Line), int(pos.Character))
	if node == nil {
		return nil, nil
	}

	hoverText := buildHoverText(node)
	if hoverText == "" {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
	}, nil
}

// nodeAt picks the deepest node whose span covers the position.
func nodeAt(root *ir.Node, line, col int) *ir.Node {
	if root == nil {
		return nil
	}
	var best *ir.Node
	root.Walk(func(n *ir.Node) bool {
		if n.Parent == nil {
			return true
		}
		if !n.SpanContains(line, col) {
			return false
		}
		best = n
		return true
	})
	return best
}

func buildHoverText(node *ir.Node) string {
	if node == nil || node.Value == nil {
		return ""
	}

	var parts []string

	if route := node.Route(); route != "" {
		parts = append(parts, fmt.Sprintf("**Route:** `%s`", route))
	}
	parts = append(parts, fmt.Sprintf("**Kind:** %s", node.Value.Type))
	if valueInfo := getValueInfo(node.Value); valueInfo != "" {
		parts = append(parts, fmt.Sprintf("**Value:** %s", valueInfo))
	}

	return strings.Join(parts, "\n\n")
}

func getValueInfo(v *ir.Value) string {
	switch v.Type {
	case ir.ScalarType:
		val := v.Scalar
		if len(val) > 50 {
			val = val[:50] + "..."
		}
		return fmt.Sprintf("`%s`", val)
	case ir.VectorType:
		return fmt.Sprintf("`%s`", v.String())
	case ir.ListType:
		return fmt.Sprintf("list with %d elements", len(v.Elems))
	case ir.MapType:
		return fmt.Sprintf("block with %d keys", len(v.Fields))
	}
	return ""
}
